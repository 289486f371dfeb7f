package reader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Supported compression codecs, keyed by file extension
const (
	codecGzip   = "gzip"
	codecZstd   = "zstd"
	codecBrotli = "brotli"
	codecLZ4    = "lz4"
)

var codecByExt = map[string]string{
	".gz":   codecGzip,
	".gzip": codecGzip,
	".zst":  codecZstd,
	".zstd": codecZstd,
	".br":   codecBrotli,
	".lz4":  codecLZ4,
}

// compressionOf returns the codec implied by path's extension and the path
// without that extension. The codec is empty for uncompressed files.
func compressionOf(path string) (codec, base string) {
	ext := strings.ToLower(filepath.Ext(path))
	if codec, ok := codecByExt[ext]; ok {
		return codec, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return "", path
}

// readCloser pairs a decoding reader with the closers it depends on
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// decompress wraps rc in a decoder for codec. Closing the result closes rc.
func decompress(rc io.ReadCloser, codec string) (io.ReadCloser, error) {
	switch codec {
	case codecGzip:
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close, rc.Close}}, nil
	case codecZstd:
		dec, err := zstd.NewReader(rc)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: dec, closers: []func() error{closeZstd(dec), rc.Close}}, nil
	case codecBrotli:
		return &readCloser{Reader: brotli.NewReader(rc), closers: []func() error{rc.Close}}, nil
	case codecLZ4:
		return &readCloser{Reader: lz4.NewReader(rc), closers: []func() error{rc.Close}}, nil
	default:
		return rc, nil
	}
}

func closeZstd(dec *zstd.Decoder) func() error {
	return func() error {
		dec.Close()
		return nil
	}
}
