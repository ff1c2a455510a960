package kg

import (
	"errors"

	. "gopkg.in/check.v1"
)

type DecodeSuite struct{}

var _ = Suite(&DecodeSuite{})

// Streams below are written out bit by bit in the comments; pixels are
// one byte each unless the test says otherwise.

func (s *DecodeSuite) TestCopyGeometries(c *C) {
	// 4x4 canvas exercising one copy from each previous-line geometry:
	//   01 00000011            pixel 3, literal
	//   01 00000100            pixel 4, literal
	//   1100 000001            previous line, 4 pixels
	//   1101 000001            up-right, 4 pixels
	//   1110 000001            up-left, 4 pixels
	data := []byte{0x01, 0x02, 0x40, 0xd0, 0x4c, 0x07, 0x41, 0xe0, 0x40}

	canvas, err := DecodePixels(data, 4, 4, 1)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{
		1, 2, 3, 4,
		1, 2, 3, 4,
		2, 3, 4, 2,
		4, 2, 3, 4,
	})
}

func (s *DecodeSuite) TestDictionarySlots(c *C) {
	// 00 101 resolves slot 5 of the freshly seeded row for reference
	// byte 1; 00 000 then hits slot 0 for reference byte 5.
	data := []byte{0x00, 0x01, 0x28, 0x00}

	canvas, err := DecodePixels(data, 4, 1, 1)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{0, 1, 5, 0})
}

func (s *DecodeSuite) TestOverlappingSmear(c *C) {
	// A copy from the previous pixel with length 50 replicates the
	// second literal across the rest of the row, reading bytes the copy
	// itself just wrote.
	data := []byte{0x03, 0x09, 0x80, 0x32}

	canvas, err := DecodePixels(data, 52, 1, 1)
	c.Assert(err, IsNil)

	expected := make([]byte, 52)
	expected[0] = 3
	for i := 1; i < len(expected); i++ {
		expected[i] = 9
	}
	c.Check(canvas, DeepEquals, expected)
}

func (s *DecodeSuite) TestZeroLengthRun(c *C) {
	// 62 zero bits decode to a zero-length run: nothing is written, the
	// cursor stays put, and the next opcode proceeds normally.
	data := []byte{0x07, 0x08, 0x80, 0, 0, 0, 0, 0, 0, 0, 0xa0}

	canvas, err := DecodePixels(data, 4, 1, 1)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{7, 8, 8, 8})
}

func (s *DecodeSuite) TestGroupCopyBPP3(c *C) {
	// Bare 24-bit pixels copy as whole 3-byte groups: one
	// previous-line run duplicates the first row.
	data := []byte{10, 20, 30, 10, 20, 30, 0xc8}

	canvas, err := DecodePixels(data, 2, 2, 3)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{
		10, 20, 30, 10, 20, 30,
		10, 20, 30, 10, 20, 30,
	})
}

func (s *DecodeSuite) TestSinglePixelBPP3(c *C) {
	// Single-pixel opcodes write one byte and step a whole pixel: the
	// remaining channels keep their zero fill. Legacy streams rely on
	// group copies to carry full colors.
	data := []byte{1, 2, 3, 4, 5, 6, 0x42, 0x44}

	canvas, err := DecodePixels(data, 2, 2, 3)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{
		1, 2, 3, 4, 5, 6,
		9, 0, 0, 2, 0, 0,
	})
}

func (s *DecodeSuite) TestTruncatedPrefix(c *C) {
	_, err := DecodePixels([]byte{0x07}, 4, 1, 1)
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrTruncatedStream), Equals, true)
}

func (s *DecodeSuite) TestTruncatedLength(c *C) {
	// The run length escapes past the end of the buffer.
	_, err := DecodePixels([]byte{0x07, 0x08, 0x80}, 4, 1, 1)
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrTruncatedStream), Equals, true)
}

func (s *DecodeSuite) TestTruncatedEmpty(c *C) {
	_, err := DecodePixels(nil, 2, 2, 1)
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrTruncatedStream), Equals, true)
}

func (s *DecodeSuite) TestCanvasOverrun(c *C) {
	// 10 00 0010: previous-pixel copy of 5 pixels into a 4 pixel canvas.
	_, err := DecodePixels([]byte{0x01, 0x02, 0x82}, 4, 1, 1)
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrCanvasOverrun), Equals, true)
	c.Check(err, ErrorMatches, "unable to copy 5 pixels at offset 2.*")
}

func (s *DecodeSuite) TestEmptyCanvas(c *C) {
	canvas, err := DecodePixels(nil, 0, 0, 1)
	c.Assert(err, IsNil)
	c.Check(canvas, HasLen, 0)
}

func (s *DecodeSuite) TestBadPixelSize(c *C) {
	_, err := DecodePixels(nil, 2, 2, 2)
	c.Assert(err, ErrorMatches, ".*unsupported pixel size 2.*")
}

func (s *DecodeSuite) TestHugeCanvas(c *C) {
	_, err := DecodePixels(nil, 65535, 65535, 3)
	c.Assert(err, ErrorMatches, ".*canvas too large.*")
}

func (s *DecodeSuite) TestLiteralPrefixOnly(c *C) {
	// A 2x1 image is exactly the literal prefix; the opcode loop never
	// runs.
	canvas, err := DecodePixels([]byte{0xaa, 0xbb}, 2, 1, 1)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{0xaa, 0xbb})
}

func (s *DecodeSuite) TestOnePixel(c *C) {
	// The literal prefix clamps to the canvas for 1x1 images.
	canvas, err := DecodePixels([]byte{0x2a}, 1, 1, 1)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{0x2a})
}

func (s *DecodeSuite) TestTrailingPaddingIgnored(c *C) {
	// Extra bytes past the final opcode are flush padding.
	data := []byte{0x05, 0x05, 0xa0, 0xff, 0xff, 0xff}

	canvas, err := DecodePixels(data, 4, 1, 1)
	c.Assert(err, IsNil)
	c.Check(canvas, DeepEquals, []byte{5, 5, 5, 5})
}
