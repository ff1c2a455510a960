// Package font reads and writes FNT bitmap glyph tables.
//
// A table carries fixed-size 1-bit glyphs addressed by a 16-bit code.
// Engines blit them directly; kgtool expands them to alpha rasters for
// inspection and conversion.
package font

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const headerSize = 8

var magic = [2]byte{'F', 'N'}

// Errors returned by parsing and lookup
var (
	ErrInvalidMagic = errors.New("invalid magic")
	ErrTruncated    = errors.New("truncated font")
	ErrNotFound     = errors.New("glyph not found")
)

// Glyph is a single character bitmap, rows packed MSB-first
type Glyph struct {
	Code   uint16
	Bitmap []byte
}

// Font is a parsed FNT table
type Font struct {
	Version uint8
	Width   uint8
	Height  uint8
	Glyphs  []Glyph

	index map[uint16]int
}

// GlyphSize returns the packed byte length of one glyph bitmap
func (f *Font) GlyphSize() int {
	return (int(f.Width)*int(f.Height) + 7) / 8
}

// Parse reads an FNT blob
func Parse(data []byte) (*Font, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("unable to parse header: %w", ErrTruncated)
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, fmt.Errorf("unable to parse header: %w", ErrInvalidMagic)
	}

	font := &Font{Version: data[2], Width: data[3], Height: data[4]}
	if font.Width == 0 || font.Height == 0 {
		return nil, fmt.Errorf("unable to parse header: glyph size %dx%d invalid", font.Width, font.Height)
	}

	count := int(binary.LittleEndian.Uint16(data[6:8]))
	glyphSize := font.GlyphSize()

	if len(data) < headerSize+count*(2+glyphSize) {
		return nil, fmt.Errorf("unable to parse %d glyphs: %w", count, ErrTruncated)
	}

	font.Glyphs = make([]Glyph, count)
	font.index = make(map[uint16]int, count)

	for i := range font.Glyphs {
		raw := data[headerSize+i*(2+glyphSize):]

		glyph := Glyph{
			Code:   binary.LittleEndian.Uint16(raw[0:2]),
			Bitmap: append([]byte(nil), raw[2:2+glyphSize]...),
		}

		font.Glyphs[i] = glyph
		font.index[glyph.Code] = i
	}

	return font, nil
}

// Bytes serializes the table back to the FNT layout
func (f *Font) Bytes() ([]byte, error) {
	if f.Width == 0 || f.Height == 0 {
		return nil, fmt.Errorf("unable to serialize font: glyph size %dx%d invalid", f.Width, f.Height)
	}
	if len(f.Glyphs) > 0xffff {
		return nil, fmt.Errorf("unable to serialize %d glyphs: glyph count out of range", len(f.Glyphs))
	}

	glyphSize := f.GlyphSize()
	result := make([]byte, headerSize+len(f.Glyphs)*(2+glyphSize))
	result[0], result[1] = magic[0], magic[1]
	result[2] = f.Version
	result[3], result[4] = f.Width, f.Height
	binary.LittleEndian.PutUint16(result[6:8], uint16(len(f.Glyphs)))

	for i, glyph := range f.Glyphs {
		if len(glyph.Bitmap) != glyphSize {
			return nil, fmt.Errorf("unable to serialize glyph %#04x: bitmap is %d bytes, want %d",
				glyph.Code, len(glyph.Bitmap), glyphSize)
		}

		raw := result[headerSize+i*(2+glyphSize):]
		binary.LittleEndian.PutUint16(raw[0:2], glyph.Code)
		copy(raw[2:], glyph.Bitmap)
	}

	return result, nil
}

// Glyph looks up a glyph by character code
func (f *Font) Glyph(code uint16) (Glyph, bool) {
	if f.index == nil {
		f.index = make(map[uint16]int, len(f.Glyphs))
		for i, glyph := range f.Glyphs {
			f.index[glyph.Code] = i
		}
	}

	i, ok := f.index[code]
	if !ok {
		return Glyph{}, false
	}
	return f.Glyphs[i], true
}

// Render expands a glyph bitmap into a Width*Height alpha raster,
// 0xff for set pixels, row-major top to bottom
func (f *Font) Render(g Glyph) []byte {
	raster := make([]byte, int(f.Width)*int(f.Height))
	for i := range raster {
		if i/8 < len(g.Bitmap) && g.Bitmap[i/8]&(0x80>>(i%8)) != 0 {
			raster[i] = 0xff
		}
	}
	return raster
}

// RenderCode renders a glyph looked up by code
func (f *Font) RenderCode(code uint16) ([]byte, error) {
	glyph, ok := f.Glyph(code)
	if !ok {
		return nil, fmt.Errorf("unable to render glyph %#04x: %w", code, ErrNotFound)
	}
	return f.Render(glyph), nil
}
