package utils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"

	. "gopkg.in/check.v1"
)

type CompressionSuite struct {
	tempdir string
}

var _ = Suite(&CompressionSuite{})

const testString = "Quick brown fox jumps over black dog and runs away... Really far away... who knows?"

func (s *CompressionSuite) SetUpTest(c *C) {
	s.tempdir = c.MkDir()
}

func (s *CompressionSuite) gzFile(c *C, name string) string {
	path := filepath.Join(s.tempdir, name)
	f, err := os.Create(path)
	c.Assert(err, IsNil)

	w := pgzip.NewWriter(f)
	_, err = w.Write([]byte(testString))
	c.Assert(err, IsNil)
	c.Assert(w.Close(), IsNil)
	c.Assert(f.Close(), IsNil)

	return path
}

func (s *CompressionSuite) zstFile(c *C, name string) string {
	path := filepath.Join(s.tempdir, name)

	enc, err := zstd.NewWriter(nil)
	c.Assert(err, IsNil)
	compressed := enc.EncodeAll([]byte(testString), nil)
	c.Assert(enc.Close(), IsNil)

	c.Assert(os.WriteFile(path, compressed, 0644), IsNil)
	return path
}

func (s *CompressionSuite) TestDecompressorGzip(c *C) {
	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	w.Write([]byte(testString))
	w.Close()

	name, r, err := Decompressor("shot.kg.gz", &buf)
	c.Assert(err, IsNil)
	defer r.Close()

	c.Check(name, Equals, "shot.kg")

	data, err := io.ReadAll(r)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, testString)
}

func (s *CompressionSuite) TestDecompressorRaw(c *C) {
	name, r, err := Decompressor("shot.kg", bytes.NewReader([]byte(testString)))
	c.Assert(err, IsNil)
	defer r.Close()

	c.Check(name, Equals, "shot.kg")

	data, err := io.ReadAll(r)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, testString)
}

func (s *CompressionSuite) TestReadFileMaybeCompressedGzip(c *C) {
	path := s.gzFile(c, "image.kg.gz")

	data, name, err := ReadFileMaybeCompressed(path)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, testString)
	c.Check(name, Equals, filepath.Join(s.tempdir, "image.kg"))
}

func (s *CompressionSuite) TestReadFileMaybeCompressedZstd(c *C) {
	path := s.zstFile(c, "image.kg.zst")

	data, name, err := ReadFileMaybeCompressed(path)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, testString)
	c.Check(name, Equals, filepath.Join(s.tempdir, "image.kg"))
}

func (s *CompressionSuite) TestReadFileMaybeCompressedRaw(c *C) {
	path := filepath.Join(s.tempdir, "image.kg")
	c.Assert(os.WriteFile(path, []byte(testString), 0644), IsNil)

	data, name, err := ReadFileMaybeCompressed(path)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, testString)
	c.Check(name, Equals, path)
}

func (s *CompressionSuite) TestReadFileMaybeCompressedCorrupt(c *C) {
	path := filepath.Join(s.tempdir, "image.kg.gz")
	c.Assert(os.WriteFile(path, []byte("not gzip at all"), 0644), IsNil)

	_, _, err := ReadFileMaybeCompressed(path)
	c.Assert(err, NotNil)
	c.Check(err, ErrorMatches, "unable to decompress .*")
}

func (s *CompressionSuite) TestReadFileMaybeCompressedMissing(c *C) {
	_, _, err := ReadFileMaybeCompressed(filepath.Join(s.tempdir, "nope.kg"))
	c.Assert(err, NotNil)
}
