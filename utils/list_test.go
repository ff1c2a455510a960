package utils

import (
	. "gopkg.in/check.v1"
)

type ListSuite struct{}

var _ = Suite(&ListSuite{})

func (s *ListSuite) TestStrSliceHasItem(c *C) {
	c.Check(StrSliceHasItem([]string{"png", "raw"}, "png"), Equals, true)
	c.Check(StrSliceHasItem([]string{"png", "raw"}, "raw"), Equals, true)
	c.Check(StrSliceHasItem([]string{"png", "raw"}, "bmp"), Equals, false)
	c.Check(StrSliceHasItem(nil, "png"), Equals, false)
}
