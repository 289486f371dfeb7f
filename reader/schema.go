package reader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// SchemaInfo describes one column of a data file
type SchemaInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type,omitempty"`
	LogicalType  string `json:"logical_type,omitempty"`
	Required     bool   `json:"required"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
}

// Map returns the fields of s keyed by their JSON names
func (s SchemaInfo) Map() map[string]interface{} {
	return map[string]interface{}{
		"name":          s.Name,
		"type":          s.Type,
		"physical_type": s.PhysicalType,
		"logical_type":  s.LogicalType,
		"required":      s.Required,
		"optional":      s.Optional,
		"repeated":      s.Repeated,
	}
}

// SchemaColumns is the column order of SchemaInfo.Map
var SchemaColumns = []string{"name", "type", "physical_type", "logical_type", "required", "optional", "repeated"}

// ResolveSchemaPath returns the file whose schema represents path. For a
// glob pattern that is the first match; matched is the number of matches.
func ResolveSchemaPath(path string) (file string, matched int, err error) {
	if !isGlob(path) {
		return path, 1, nil
	}
	matches, err := filepath.Glob(path)
	if err != nil {
		return "", 0, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("no files match pattern: %s", path)
	}
	return matches[0], len(matches), nil
}

// ExtractSchemaInfo returns column metadata for the file at path.
//
// Parquet files report their schema, with nested fields named in dot
// notation ("address.street"). CSV files report their header columns typed
// INT64 or STRING according to the first data row, as it would be read
// with opts.
func ExtractSchemaInfo(path string, opts Options) ([]SchemaInfo, error) {
	_, base := compressionOf(path)
	if strings.EqualFold(filepath.Ext(base), ".parquet") {
		return extractParquetSchema(path)
	}
	return extractCSVSchema(path, opts)
}

func extractParquetSchema(path string) ([]SchemaInfo, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var infos []SchemaInfo
	for _, field := range r.Schema().Fields() {
		infos = append(infos, extractFieldInfo(field, "", false)...)
	}
	return infos, nil
}

func extractCSVSchema(path string, opts Options) ([]SchemaInfo, error) {
	src, err := openFile(path, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	first, err := src.Next()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	columns := src.Columns()
	infos := make([]SchemaInfo, len(columns))
	for i, name := range columns {
		typ := "STRING"
		if _, isInt := first[name].(int64); isInt {
			typ = "INT64"
		}
		infos[i] = SchemaInfo{Name: name, Type: typ, Optional: true}
	}
	return infos, nil
}

// extractFieldInfo flattens a parquet field into leaf columns. Repetition
// of any ancestor group marks its leaves repeated.
func extractFieldInfo(field parquet.Field, prefix string, parentRepeated bool) []SchemaInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		var infos []SchemaInfo
		for _, child := range children {
			infos = append(infos, extractFieldInfo(child, name, repeated)...)
		}
		return infos
	}

	info := SchemaInfo{
		Name:         name,
		PhysicalType: physicalTypeName(field.Type().Kind()),
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     repeated,
	}
	if lt := field.Type().LogicalType(); lt != nil {
		info.LogicalType = lt.String()
	}
	info.Type = friendlyTypeName(info.LogicalType, field.Type().Kind())
	return []SchemaInfo{info}
}

// physicalTypeName returns the physical type name of a parquet column
func physicalTypeName(kind parquet.Kind) string {
	switch kind {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// friendlyTypeName prefers the logical type and falls back to the
// physical one, spelling floats by width
func friendlyTypeName(logical string, kind parquet.Kind) string {
	switch {
	case strings.HasPrefix(logical, "STRING"), strings.HasPrefix(logical, "UTF8"):
		return "STRING"
	case strings.HasPrefix(logical, "DATE"):
		return "DATE"
	case strings.HasPrefix(logical, "TIMESTAMP"):
		return "TIMESTAMP"
	case strings.HasPrefix(logical, "DECIMAL"):
		return "DECIMAL"
	case strings.HasPrefix(logical, "UUID"):
		return "UUID"
	case strings.HasPrefix(logical, "JSON"):
		return "JSON"
	}

	switch kind {
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	default:
		return physicalTypeName(kind)
	}
}
