// Package cursor reads and writes MSC animated mouse cursors.
//
// A cursor is a short loop of 32x32 indexed frames with a shared
// hotspot. Frames carry raw palette indices; the palette comes from
// whichever KG picture the title pairs the cursor with.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"github.com/kgtool-dev/kgtool/kg"
)

// Size is the fixed cursor side in pixels
const Size = 32

const (
	headerSize = 8
	frameBytes = Size * Size
)

var magic = [2]byte{'M', 'C'}

// Errors returned by parsing and serialization
var (
	ErrInvalidMagic = errors.New("invalid magic")
	ErrTruncated    = errors.New("truncated cursor")
)

// Frame is one animation cell, 1024 palette indices row-major.
// Index 0 is transparent.
type Frame struct {
	Delay uint16
	Pix   []byte
}

// Cursor is a parsed MSC file
type Cursor struct {
	Version uint8
	HotX    uint8
	HotY    uint8
	Frames  []Frame
}

// Parse reads an MSC blob
func Parse(data []byte) (*Cursor, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("unable to parse header: %w", ErrTruncated)
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, fmt.Errorf("unable to parse header: %w", ErrInvalidMagic)
	}

	cursor := &Cursor{Version: data[2], HotX: data[4], HotY: data[5]}
	count := int(data[3])

	if len(data) < headerSize+count*(2+frameBytes) {
		return nil, fmt.Errorf("unable to parse %d frames: %w", count, ErrTruncated)
	}

	cursor.Frames = make([]Frame, count)
	for i := range cursor.Frames {
		raw := data[headerSize+i*(2+frameBytes):]

		cursor.Frames[i] = Frame{
			Delay: binary.LittleEndian.Uint16(raw[0:2]),
			Pix:   append([]byte(nil), raw[2:2+frameBytes]...),
		}
	}

	return cursor, nil
}

// Bytes serializes the cursor back to the MSC layout
func (cur *Cursor) Bytes() ([]byte, error) {
	if len(cur.Frames) > 0xff {
		return nil, fmt.Errorf("unable to serialize %d frames: frame count out of range", len(cur.Frames))
	}

	result := make([]byte, headerSize+len(cur.Frames)*(2+frameBytes))
	result[0], result[1] = magic[0], magic[1]
	result[2] = cur.Version
	result[3] = byte(len(cur.Frames))
	result[4], result[5] = cur.HotX, cur.HotY

	for i, frame := range cur.Frames {
		if len(frame.Pix) != frameBytes {
			return nil, fmt.Errorf("unable to serialize frame %d: %d pixels, want %d",
				i, len(frame.Pix), frameBytes)
		}

		raw := result[headerSize+i*(2+frameBytes):]
		binary.LittleEndian.PutUint16(raw[0:2], frame.Delay)
		copy(raw[2:], frame.Pix)
	}

	return result, nil
}

// Image expands a frame to a standard image using the given palette.
// Index 0 and indices past the palette end come out transparent.
func (f *Frame) Image(pal kg.Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))

	for i, idx := range f.Pix {
		if idx == 0 || int(idx) >= len(pal) {
			continue
		}

		entry := pal[idx]
		img.Pix[i*4] = entry.R
		img.Pix[i*4+1] = entry.G
		img.Pix[i*4+2] = entry.B
		img.Pix[i*4+3] = 0xff
	}

	return img
}
