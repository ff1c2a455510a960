// Package kg implements the KG image format used by a family of legacy
// visual-novel engines: a 32-byte header, an optional 256-color
// palette, and an LZ-style compressed pixel stream built from five
// predictive copy sources plus a move-to-front dictionary keyed on the
// previous pixel.
//
// The codec is whole-buffer in, whole-buffer out and keeps no state
// between calls; distinct images may be processed in parallel.
package kg

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Image is a decoded KG picture.
type Image struct {
	Width  int
	Height int

	// Palette is nil for bare 24-bit images; Pix then holds B,G,R
	// triples instead of palette indices.
	Palette Palette
	Pix     []byte
}

// BytesPerPixel returns the size of one pixel in Pix.
func (i *Image) BytesPerPixel() int {
	if i.Palette == nil {
		return 3
	}
	return 1
}

// Decode parses a complete KG file.
func Decode(data []byte) (*Image, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	img := &Image{Width: int(header.Width), Height: int(header.Height)}

	if header.PaletteOffset != 0 {
		if int64(header.PaletteOffset) >= int64(len(data)) {
			return nil, fmt.Errorf("unable to decode image: palette offset %d past end of %d byte file: %w",
				header.PaletteOffset, len(data), ErrTruncatedStream)
		}
		img.Palette, err = ParsePalette(data[header.PaletteOffset:])
		if err != nil {
			return nil, err
		}
	}

	if int64(header.DataOffset) > int64(len(data)) {
		return nil, fmt.Errorf("unable to decode image: data offset %d past end of %d byte file: %w",
			header.DataOffset, len(data), ErrTruncatedStream)
	}

	img.Pix, err = DecodePixels(data[header.DataOffset:], img.Width, img.Height, img.BytesPerPixel())
	if err != nil {
		return nil, err
	}

	return img, nil
}

// Encode serializes an indexed image to a complete KG file: header,
// palette block, compressed pixels. Bare 24-bit images are decode-only;
// quantize them first.
func Encode(img *Image) ([]byte, error) {
	if img.Palette == nil {
		return nil, fmt.Errorf("unable to encode image: no palette, bare 24-bit images are decode-only")
	}
	if len(img.Palette) > paletteEntries {
		return nil, fmt.Errorf("unable to encode image: %d palette entries: %w", len(img.Palette), ErrTooManyColors)
	}
	if img.Width <= 0 || img.Width > 0xffff || img.Height <= 0 || img.Height > 0xffff {
		return nil, fmt.Errorf("unable to encode image: dimensions %dx%d out of range", img.Width, img.Height)
	}

	data, err := EncodePixels(img.Pix, img.Width, img.Height, 1)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("width", img.Width).Int("height", img.Height).
		Int("raw", len(img.Pix)).Int("compressed", len(data)).Msg("kg: encoded image")

	header := &Header{
		Version:         1,
		CompressionType: CompressionBPP3,
		Width:           uint16(img.Width),
		Height:          uint16(img.Height),
		PaletteOffset:   HeaderSize,
		DataOffset:      HeaderSize + PaletteSize,
		FileSize:        uint32(HeaderSize + PaletteSize + len(data)),
	}

	result := make([]byte, 0, header.FileSize)
	result = append(result, header.Bytes()...)
	result = append(result, img.Palette.Bytes()...)
	result = append(result, data...)
	return result, nil
}
