package reader

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const peopleCSV = "name,age\nalice,30\nbob,25\n"

func compressWith(t *testing.T, codec string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch codec {
	case codecGzip:
		w = gzip.NewWriter(&buf)
	case codecZstd:
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatalf("zstd.NewWriter() error = %v", err)
		}
		w = enc
	case codecBrotli:
		w = brotli.NewWriter(&buf)
	case codecLZ4:
		w = lz4.NewWriter(&buf)
	default:
		t.Fatalf("unknown codec %q", codec)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compress write error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("compress close error = %v", err)
	}
	return buf.Bytes()
}

func TestCompressionOf(t *testing.T) {
	tests := []struct {
		path      string
		wantCodec string
		wantBase  string
	}{
		{"data.csv", "", "data.csv"},
		{"data.csv.gz", codecGzip, "data.csv"},
		{"data.csv.GZ", codecGzip, "data.csv"},
		{"data.csv.zst", codecZstd, "data.csv"},
		{"data.csv.br", codecBrotli, "data.csv"},
		{"data.csv.lz4", codecLZ4, "data.csv"},
		{"data.parquet", "", "data.parquet"},
		{"dir.gz/data.tsv", "", "dir.gz/data.tsv"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			codec, base := compressionOf(tt.path)
			if codec != tt.wantCodec || base != tt.wantBase {
				t.Errorf("compressionOf(%q) = %q, %q, want %q, %q", tt.path, codec, base, tt.wantCodec, tt.wantBase)
			}
		})
	}
}

func TestOpen_CompressedCSV(t *testing.T) {
	want := []map[string]interface{}{
		{"name": "alice", "age": int64(30)},
		{"name": "bob", "age": int64(25)},
	}
	exts := map[string]string{
		codecGzip:   ".gz",
		codecZstd:   ".zst",
		codecBrotli: ".br",
		codecLZ4:    ".lz4",
	}

	for codec, ext := range exts {
		t.Run(codec, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "people.csv"+ext, compressWith(t, codec, []byte(peopleCSV)))

			src, err := Open(path, Options{})
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			got := readAll(t, src)
			if err := src.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("rows = %v, want %v", got, want)
			}
		})
	}
}

func TestOpen_CorruptGzip(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv.gz", []byte("not gzip at all"))
	if _, err := Open(path, Options{}); err == nil {
		t.Error("Open() on corrupt gzip succeeded")
	}
}

func TestOpen_CompressedParquetRejected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.parquet.gz", []byte("x"))
	if _, err := Open(path, Options{}); err == nil {
		t.Error("Open() on compressed parquet succeeded")
	}
}
