package utils

import (
	"bytes"
	"os"
	"path/filepath"

	. "gopkg.in/check.v1"
)

type ChecksumSuite struct{}

var _ = Suite(&ChecksumSuite{})

func (s *ChecksumSuite) TestChecksumsForReader(c *C) {
	info, err := ChecksumsForReader(bytes.NewReader([]byte("The quick brown fox jumps over the lazy dog")))
	c.Assert(err, IsNil)
	c.Check(info.Size, Equals, int64(43))
	c.Check(info.MD5, Equals, "9e107d9d372bb6826bd81d3542a419d6")
	c.Check(info.SHA256, Equals, "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592")
}

func (s *ChecksumSuite) TestChecksumsForReaderEmpty(c *C) {
	info, err := ChecksumsForReader(bytes.NewReader(nil))
	c.Assert(err, IsNil)
	c.Check(info.Size, Equals, int64(0))
	c.Check(info.MD5, Equals, "d41d8cd98f00b204e9800998ecf8427e")
	c.Check(info.SHA256, Equals, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
}

func (s *ChecksumSuite) TestChecksumsForFile(c *C) {
	path := filepath.Join(c.MkDir(), "data.bin")
	c.Assert(os.WriteFile(path, []byte("The quick brown fox jumps over the lazy dog"), 0644), IsNil)

	info, err := ChecksumsForFile(path)
	c.Assert(err, IsNil)
	c.Check(info.Size, Equals, int64(43))
	c.Check(info.MD5, Equals, "9e107d9d372bb6826bd81d3542a419d6")
}

func (s *ChecksumSuite) TestChecksumsForFileMissing(c *C) {
	_, err := ChecksumsForFile("no/such/file.bin")
	c.Assert(err, NotNil)
}
