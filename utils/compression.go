package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
)

// List of extensions + corresponding uncompression support
var compressionMethods = []struct {
	extension      string
	transformation func(io.Reader) (io.ReadCloser, error)
}{
	{
		extension:      ".gz",
		transformation: func(r io.Reader) (io.ReadCloser, error) { return pgzip.NewReader(r) },
	},
	{
		extension: ".zst",
		transformation: func(r io.Reader) (io.ReadCloser, error) {
			dec, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return dec.IOReadCloser(), nil
		},
	},
}

// Decompressor wraps reader with the decompressor matching the name's
// extension, returning the name with that extension stripped. Names
// without a supported extension pass through untouched.
func Decompressor(name string, r io.Reader) (string, io.ReadCloser, error) {
	for _, method := range compressionMethods {
		if !strings.HasSuffix(name, method.extension) {
			continue
		}

		wrapped, err := method.transformation(r)
		if err != nil {
			return name, nil, err
		}

		return strings.TrimSuffix(name, method.extension), wrapped, nil
	}

	return name, io.NopCloser(r), nil
}

// ReadFileMaybeCompressed reads whole file, transparently decompressing
// *.gz and *.zst input, and returns contents together with the name
// with the compression extension stripped.
func ReadFileMaybeCompressed(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = f.Close()
	}()

	name, r, err := Decompressor(path, f)
	if err != nil {
		return nil, "", fmt.Errorf("unable to decompress %s: %w", path, err)
	}
	defer func() {
		_ = r.Close()
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("unable to read %s: %w", path, err)
	}

	return data, name, nil
}
