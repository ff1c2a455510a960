package kg

import (
	"bytes"

	"github.com/icza/bitio"

	. "gopkg.in/check.v1"
)

type LengthSuite struct{}

var _ = Suite(&LengthSuite{})

func encodeLength(v uint32) []byte {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeLength(w, v)
	w.Close()
	return buf.Bytes()
}

func (s *LengthSuite) TestRoundTrip(c *C) {
	values := []uint32{
		1, 2, 3, // 2-bit field
		4, 10, 18, // 4-bit field, biased by 3
		19, 100, 254, 255, // 8-bit field
		256, 1000, 40000, 65535, // 16-bit field
		65536, 1 << 20, 0xdeadbeef, 0xffffffff, // split 16+16
	}

	for _, v := range values {
		r := bitio.NewReader(bytes.NewReader(encodeLength(v)))
		c.Check(readLength(r), Equals, v, Commentf("value %d", v))
		c.Check(r.TryError, IsNil)
	}
}

func (s *LengthSuite) TestCanonicalWidths(c *C) {
	// Each branch pads to whole bytes on flush: 2, 6, 14, 30 and 62
	// bits respectively.
	c.Check(encodeLength(1), HasLen, 1)
	c.Check(encodeLength(3), HasLen, 1)
	c.Check(encodeLength(4), HasLen, 1)
	c.Check(encodeLength(18), HasLen, 1)
	c.Check(encodeLength(19), HasLen, 2)
	c.Check(encodeLength(255), HasLen, 2)
	c.Check(encodeLength(256), HasLen, 4)
	c.Check(encodeLength(65535), HasLen, 4)
	c.Check(encodeLength(65536), HasLen, 8)
}

func (s *LengthSuite) TestCanonicalBits(c *C) {
	// 1 is the two-bit field 01 at the top of the byte.
	c.Check(encodeLength(1), DeepEquals, []byte{0x40})
	// 19 escapes the 2- and 4-bit fields: 000000 00010011, zero-padded.
	c.Check(encodeLength(19), DeepEquals, []byte{0x00, 0x4c})
	// 255 is 000000 11111111.
	c.Check(encodeLength(255), DeepEquals, []byte{0x03, 0xfc})
}

func (s *LengthSuite) TestZeroDecodes(c *C) {
	// A zero length has no canonical encoding, but 62 zero bits decode
	// to it; the decoder treats such a run as a no-op.
	r := bitio.NewReader(bytes.NewReader(make([]byte, 8)))
	c.Check(readLength(r), Equals, uint32(0))
	c.Check(r.TryError, IsNil)
}

func (s *LengthSuite) TestTruncated(c *C) {
	// 000000 escapes to the 8-bit field, which isn't there.
	r := bitio.NewReader(bytes.NewReader([]byte{0x00}))
	readLength(r)
	c.Check(r.TryError, NotNil)
	c.Check(readError(r.TryError), Equals, ErrTruncatedStream)
}

func (s *LengthSuite) TestBitOrder(c *C) {
	// The stream is most significant bit first: a single 1 bit lands at
	// the top of the byte.
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.TryWriteBits(1, 1)
	w.Close()
	c.Check(buf.Bytes(), DeepEquals, []byte{0x80})
}
