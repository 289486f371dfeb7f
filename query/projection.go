package query

// Project returns a new row holding only the entries of row whose column
// is projected by q. Projected columns missing from row are skipped, and a
// column projected twice appears once.
func Project(q *Query, row Row) Row {
	projected := make(Row, len(q.projections))
	for _, column := range q.projections {
		if value, exists := row[column]; exists {
			projected[column] = value
		}
	}
	return projected
}
