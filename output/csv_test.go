package output

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
)

func parseCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	return records
}

func TestCSVFormatter_WriteRow(t *testing.T) {
	tests := []struct {
		name      string
		rows      []map[string]interface{}
		wantLines int
	}{
		{
			name:      "empty rows",
			rows:      []map[string]interface{}{},
			wantLines: 0,
		},
		{
			name: "single row",
			rows: []map[string]interface{}{
				{"id": int64(1), "name": "alice", "age": int32(30)},
			},
			wantLines: 2,
		},
		{
			name: "multiple rows",
			rows: []map[string]interface{}{
				{"id": int64(1), "name": "alice", "age": int32(30)},
				{"id": int64(2), "name": "bob", "age": int32(25)},
			},
			wantLines: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeRows(t, NewCSVFormatter(&buf, []string{"id", "name"}), tt.rows)

			if tt.wantLines == 0 {
				if buf.Len() != 0 {
					t.Errorf("output = %q, want empty", buf.String())
				}
				return
			}

			records := parseCSV(t, buf.String())
			if len(records) != tt.wantLines {
				t.Errorf("produced %d lines, want %d", len(records), tt.wantLines)
			}
		})
	}
}

func TestCSVFormatter_ColumnOrder(t *testing.T) {
	row := map[string]interface{}{"z_last": "value1", "a_first": "value2", "m_middle": "value3"}

	t.Run("given columns", func(t *testing.T) {
		var buf bytes.Buffer
		writeRows(t, NewCSVFormatter(&buf, []string{"z_last", "a_first"}), []map[string]interface{}{row})

		records := parseCSV(t, buf.String())
		want := [][]string{{"z_last", "a_first"}, {"value1", "value2"}}
		if !reflect.DeepEqual(records, want) {
			t.Errorf("records = %v, want %v", records, want)
		}
	})

	t.Run("sorted when unspecified", func(t *testing.T) {
		var buf bytes.Buffer
		writeRows(t, NewCSVFormatter(&buf, nil), []map[string]interface{}{row})

		header := parseCSV(t, buf.String())[0]
		want := []string{"a_first", "m_middle", "z_last"}
		if !reflect.DeepEqual(header, want) {
			t.Errorf("header = %v, want %v", header, want)
		}
	})
}

func TestCSVFormatter_MissingColumn(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]interface{}{
		{"a": int64(1), "b": "x"},
		{"a": int64(2)},
	}
	writeRows(t, NewCSVFormatter(&buf, []string{"a", "b"}), rows)

	records := parseCSV(t, buf.String())
	if got := records[2]; got[0] != "2" || got[1] != "" {
		t.Errorf("row with missing column = %v, want [2 \"\"]", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "alice", "alice"},
		{"int", int64(42), "42"},
		{"negative int", int64(-7), "-7"},
		{"float", float64(3.14), "3.14"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"bytes", []byte("raw"), "raw"},
		{"formula", "=SUM(A1)", "'=SUM(A1)"},
		{"formula with quote", "=A1&'x'", "'=A1&''x''"},
		{"at sign", "@cmd", "'@cmd"},
		{"negative text", "-1+1", "'-1+1"},
		{"pipe", "|calc", "'|calc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.in); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCSVFormatter_SpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]interface{}{
		{"name": "Alice, Bob", "quote": `He said "hello"`, "newline": "line1\nline2"},
	}
	writeRows(t, NewCSVFormatter(&buf, []string{"name", "quote", "newline"}), rows)

	records := parseCSV(t, buf.String())
	want := []string{"Alice, Bob", `He said "hello"`, "line1\nline2"}
	if !reflect.DeepEqual(records[1], want) {
		t.Errorf("data row = %q, want %q", records[1], want)
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	formatter := NewCSVFormatter(&buf1, []string{"id"})
	row := map[string]interface{}{"id": int64(1)}

	writeRows(t, formatter, []map[string]interface{}{row})
	if buf1.String() != "id\n1\n" {
		t.Errorf("first buffer = %q, want header and row", buf1.String())
	}

	formatter.SetOutput(&buf2)
	writeRows(t, formatter, []map[string]interface{}{row})
	if buf2.String() != "1\n" {
		t.Errorf("second buffer = %q, want row only", buf2.String())
	}
}
