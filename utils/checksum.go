package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
)

// ChecksumInfo represents checksums for a single file
type ChecksumInfo struct {
	Size   int64
	MD5    string
	SHA256 string
}

// ChecksumsForReader generates size, MD5 & SHA256 checksums for data from reader
func ChecksumsForReader(r io.Reader) (*ChecksumInfo, error) {
	result := &ChecksumInfo{}

	hashes := []hash.Hash{md5.New(), sha256.New()}

	buf := make([]byte, 8192)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			result.Size += int64(n)

			for _, h := range hashes {
				h.Write(buf[:n])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	result.MD5 = fmt.Sprintf("%x", hashes[0].Sum(nil))
	result.SHA256 = fmt.Sprintf("%x", hashes[1].Sum(nil))

	return result, nil
}

// ChecksumsForFile generates size, MD5 & SHA256 checksums for given file
func ChecksumsForFile(path string) (*ChecksumInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	return ChecksumsForReader(file)
}
