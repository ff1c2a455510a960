package kg

import (
	"fmt"
	"image"
	"image/color"
)

// Palette is an ordered list of up to 256 opaque colors. On disk each
// entry takes four bytes in B, G, R, pad order and files always reserve
// space for all 256 entries.
type Palette []color.NRGBA

// ParsePalette reads a 1024-byte palette block.
func ParsePalette(data []byte) (Palette, error) {
	if len(data) < PaletteSize {
		return nil, fmt.Errorf("unable to parse palette: %d bytes: %w", len(data), ErrInsufficientHeaderData)
	}
	pal := make(Palette, paletteEntries)
	for i := range pal {
		pal[i] = color.NRGBA{B: data[i*4], G: data[i*4+1], R: data[i*4+2], A: 255}
	}
	return pal, nil
}

// Bytes serializes the palette, zero-padding unused entries.
func (p Palette) Bytes() []byte {
	buf := make([]byte, PaletteSize)
	for i, c := range p {
		buf[i*4] = c.B
		buf[i*4+1] = c.G
		buf[i*4+2] = c.R
	}
	return buf
}

// ColorPalette converts to the standard library palette type.
func (p Palette) ColorPalette() color.Palette {
	result := make(color.Palette, len(p))
	for i, c := range p {
		result[i] = c
	}
	return result
}

// Quantize builds a palette and an index canvas from an image, indices
// assigned in first-seen order. Images with more than 256 distinct
// colors can't be stored indexed and fail with ErrTooManyColors. Alpha
// is dropped: the format predates transparency.
func Quantize(m image.Image) (Palette, []byte, error) {
	bounds := m.Bounds()
	pix := make([]byte, 0, bounds.Dx()*bounds.Dy())
	pal := make(Palette, 0, 16)
	seen := make(map[color.NRGBA]byte)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := m.At(x, y).RGBA()
			c := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}

			idx, ok := seen[c]
			if !ok {
				if len(pal) == paletteEntries {
					return nil, nil, fmt.Errorf("unable to quantize %dx%d image: %w", bounds.Dx(), bounds.Dy(), ErrTooManyColors)
				}
				idx = byte(len(pal))
				seen[c] = idx
				pal = append(pal, c)
			}
			pix = append(pix, idx)
		}
	}

	return pal, pix, nil
}
