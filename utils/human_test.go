package utils

import (
	. "gopkg.in/check.v1"
)

type HumanSuite struct{}

var _ = Suite(&HumanSuite{})

func (s *HumanSuite) TestHumanBytes(c *C) {
	c.Check(HumanBytes(0), Equals, "0 B")
	c.Check(HumanBytes(512), Equals, "512 B")
	c.Check(HumanBytes(513), Equals, "0.50 KiB")
	c.Check(HumanBytes(1024), Equals, "1.00 KiB")
	c.Check(HumanBytes(512*1024), Equals, "512.00 KiB")
	c.Check(HumanBytes(2*1024*1024), Equals, "2.00 MiB")
	c.Check(HumanBytes(3*1024*1024*1024), Equals, "3.00 GiB")
	c.Check(HumanBytes(5*1024*1024*1024*1024), Equals, "5.00 TiB")
}
