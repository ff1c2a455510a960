package kg

import (
	. "gopkg.in/check.v1"
)

type EncodeSuite struct{}

var _ = Suite(&EncodeSuite{})

func (s *EncodeSuite) roundTrip(c *C, canvas []byte, width, height int) {
	encoded, err := EncodePixels(canvas, width, height, 1)
	c.Assert(err, IsNil)

	decoded, err := DecodePixels(encoded, width, height, 1)
	c.Assert(err, IsNil)
	c.Check(decoded, DeepEquals, canvas, Commentf("%dx%d", width, height))
}

func (s *EncodeSuite) TestPreviousPixelWinsTies(c *C) {
	// Every geometry reaches length 2 here; the previous-pixel copy is
	// tried first and keeps the win.
	encoded, err := EncodePixels([]byte{5, 5, 5, 5}, 4, 1, 1)
	c.Assert(err, IsNil)
	c.Check(encoded, DeepEquals, []byte{0x05, 0x05, 0xa0})
}

func (s *EncodeSuite) TestSolidColor(c *C) {
	// A solid image is two literals plus a single 254 pixel run.
	canvas := make([]byte, 16*16)
	for i := range canvas {
		canvas[i] = 7
	}

	encoded, err := EncodePixels(canvas, 16, 16, 1)
	c.Assert(err, IsNil)
	c.Check(encoded, DeepEquals, []byte{0x07, 0x07, 0x80, 0xfe})
}

func (s *EncodeSuite) TestSmearRun(c *C) {
	// 50 repeats of the second pixel collapse into one self-overlapping
	// previous-pixel run.
	canvas := make([]byte, 52)
	canvas[0] = 3
	for i := 1; i < len(canvas); i++ {
		canvas[i] = 9
	}

	encoded, err := EncodePixels(canvas, 52, 1, 1)
	c.Assert(err, IsNil)
	c.Check(encoded, DeepEquals, []byte{0x03, 0x09, 0x80, 0x32})
}

func (s *EncodeSuite) TestDictionaryHits(c *C) {
	// Both single pixels resolve from the identity-seeded dictionary:
	// 4 bits each instead of 9.
	encoded, err := EncodePixels([]byte{0, 1, 5, 0}, 4, 1, 1)
	c.Assert(err, IsNil)
	c.Check(encoded, DeepEquals, []byte{0x00, 0x01, 0x28, 0x00})
}

func (s *EncodeSuite) TestLongerRunBeatsEarlierOpcode(c *C) {
	// At the second row the previous-line copy reaches 4 pixels while
	// the previous-pixel copy manages none.
	encoded, err := EncodePixels([]byte{1, 2, 3, 4, 1, 2, 3, 4}, 4, 2, 1)
	c.Assert(err, IsNil)
	c.Check(encoded, DeepEquals, []byte{0x01, 0x02, 0x19, 0x30, 0x10})
}

func (s *EncodeSuite) TestLiteralPrefixOnly(c *C) {
	encoded, err := EncodePixels([]byte{0xaa, 0xbb}, 2, 1, 1)
	c.Assert(err, IsNil)
	c.Check(encoded, DeepEquals, []byte{0xaa, 0xbb})
}

func (s *EncodeSuite) TestOnePixel(c *C) {
	encoded, err := EncodePixels([]byte{42}, 1, 1, 1)
	c.Assert(err, IsNil)
	c.Check(encoded, DeepEquals, []byte{42})
}

func (s *EncodeSuite) TestRoundTripShapes(c *C) {
	s.roundTrip(c, []byte{42}, 1, 1)
	s.roundTrip(c, []byte{1, 2}, 2, 1)
	s.roundTrip(c, []byte{1, 2, 3}, 3, 1)
	s.roundTrip(c, []byte{9, 9}, 1, 2)
}

func (s *EncodeSuite) TestRoundTripCheckerboard(c *C) {
	canvas := make([]byte, 4*4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				canvas[y*4+x] = 255
			}
		}
	}
	s.roundTrip(c, canvas, 4, 4)
}

func (s *EncodeSuite) TestRoundTripGradient(c *C) {
	canvas := make([]byte, 8*8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			canvas[y*8+x] = byte(x + y*8)
		}
	}
	s.roundTrip(c, canvas, 8, 8)
}

func (s *EncodeSuite) TestRoundTripOddSizes(c *C) {
	// Dimensions with no relation to the bit-packing widths.
	for _, size := range []struct{ w, h int }{
		{5, 3}, {7, 7}, {13, 5}, {31, 3}, {1, 100}, {100, 1}, {17, 19},
	} {
		canvas := make([]byte, size.w*size.h)
		for i := range canvas {
			canvas[i] = byte((i*7 + i/size.w*3) % 5)
		}
		s.roundTrip(c, canvas, size.w, size.h)
	}
}

func (s *EncodeSuite) TestRoundTripNoise(c *C) {
	// Deterministic pseudo-random bytes: worst case for the copy
	// geometries, everything goes through literals and the dictionary.
	canvas := make([]byte, 33*7)
	state := uint32(0x20230615)
	for i := range canvas {
		state = state*1103515245 + 12345
		canvas[i] = byte(state >> 16)
	}
	s.roundTrip(c, canvas, 33, 7)
}

func (s *EncodeSuite) TestRoundTripVerticalStripes(c *C) {
	canvas := make([]byte, 64*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			canvas[y*64+x] = byte(x / 8)
		}
	}
	s.roundTrip(c, canvas, 64, 16)
}

func (s *EncodeSuite) TestDeterministic(c *C) {
	canvas := []byte{1, 2, 3, 4, 1, 2, 3, 4, 2, 3, 4, 2}

	first, err := EncodePixels(canvas, 4, 3, 1)
	c.Assert(err, IsNil)
	second, err := EncodePixels(canvas, 4, 3, 1)
	c.Assert(err, IsNil)

	c.Check(second, DeepEquals, first)
}

func (s *EncodeSuite) TestRejectsBPP3(c *C) {
	_, err := EncodePixels(make([]byte, 12), 2, 2, 3)
	c.Assert(err, ErrorMatches, "unable to encode 3 bytes per pixel.*")
}

func (s *EncodeSuite) TestRejectsWrongSize(c *C) {
	_, err := EncodePixels([]byte{1, 2, 3}, 2, 2, 1)
	c.Assert(err, ErrorMatches, ".*have 3 bytes, want 4 for 2x2")
}
