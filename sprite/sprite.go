// Package sprite reads and writes SPR sprite-sheet frame tables.
//
// A table names rectangular frames inside a companion KG sheet, each
// with a drawing origin. The sheet itself travels separately.
package sprite

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/kgtool-dev/kgtool/kg"
)

const (
	headerSize = 8
	frameSize  = 12
)

var magic = [2]byte{'S', 'P'}

// Errors returned by parsing and cutting
var (
	ErrInvalidMagic = errors.New("invalid magic")
	ErrTruncated    = errors.New("truncated table")
)

// Frame is one sub-rectangle of the sheet. Origin is the anchor the
// engine draws the frame relative to, signed so it can sit outside
// the rectangle.
type Frame struct {
	X, Y    uint16
	W, H    uint16
	OriginX int16
	OriginY int16
}

// Table is a parsed SPR file
type Table struct {
	Version uint8
	Frames  []Frame
}

// Parse reads an SPR blob
func Parse(data []byte) (*Table, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("unable to parse header: %w", ErrTruncated)
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, fmt.Errorf("unable to parse header: %w", ErrInvalidMagic)
	}

	table := &Table{Version: data[2]}
	count := int(binary.LittleEndian.Uint16(data[4:6]))

	if len(data) < headerSize+count*frameSize {
		return nil, fmt.Errorf("unable to parse %d frames: %w", count, ErrTruncated)
	}

	table.Frames = make([]Frame, count)
	for i := range table.Frames {
		raw := data[headerSize+i*frameSize:]

		table.Frames[i] = Frame{
			X:       binary.LittleEndian.Uint16(raw[0:2]),
			Y:       binary.LittleEndian.Uint16(raw[2:4]),
			W:       binary.LittleEndian.Uint16(raw[4:6]),
			H:       binary.LittleEndian.Uint16(raw[6:8]),
			OriginX: int16(binary.LittleEndian.Uint16(raw[8:10])),
			OriginY: int16(binary.LittleEndian.Uint16(raw[10:12])),
		}
	}

	return table, nil
}

// Bytes serializes the table back to the SPR layout
func (t *Table) Bytes() ([]byte, error) {
	if len(t.Frames) > 0xffff {
		return nil, fmt.Errorf("unable to serialize %d frames: frame count out of range", len(t.Frames))
	}

	result := make([]byte, headerSize+len(t.Frames)*frameSize)
	result[0], result[1] = magic[0], magic[1]
	result[2] = t.Version
	binary.LittleEndian.PutUint16(result[4:6], uint16(len(t.Frames)))

	for i, frame := range t.Frames {
		raw := result[headerSize+i*frameSize:]
		binary.LittleEndian.PutUint16(raw[0:2], frame.X)
		binary.LittleEndian.PutUint16(raw[2:4], frame.Y)
		binary.LittleEndian.PutUint16(raw[4:6], frame.W)
		binary.LittleEndian.PutUint16(raw[6:8], frame.H)
		binary.LittleEndian.PutUint16(raw[8:10], uint16(frame.OriginX))
		binary.LittleEndian.PutUint16(raw[10:12], uint16(frame.OriginY))
	}

	return result, nil
}

// Validate checks that every frame lies inside a sheet of the given
// dimensions
func (t *Table) Validate(width, height int) error {
	for i, frame := range t.Frames {
		if int(frame.X)+int(frame.W) > width || int(frame.Y)+int(frame.H) > height {
			return fmt.Errorf("frame %d: %dx%d at (%d,%d) outside %dx%d sheet",
				i, frame.W, frame.H, frame.X, frame.Y, width, height)
		}
	}
	return nil
}

// Cut copies a frame out of a decoded sheet into a standalone image.
// Indexed sheets share their palette with the cut.
func Cut(sheet *kg.Image, frame Frame) (*kg.Image, error) {
	if int(frame.X)+int(frame.W) > sheet.Width || int(frame.Y)+int(frame.H) > sheet.Height {
		return nil, fmt.Errorf("unable to cut %dx%d frame at (%d,%d): outside %dx%d sheet",
			frame.W, frame.H, frame.X, frame.Y, sheet.Width, sheet.Height)
	}

	bpp := sheet.BytesPerPixel()
	width, height := int(frame.W), int(frame.H)

	out := &kg.Image{
		Width:   width,
		Height:  height,
		Palette: sheet.Palette,
		Pix:     make([]byte, width*height*bpp),
	}

	for row := 0; row < height; row++ {
		src := ((int(frame.Y)+row)*sheet.Width + int(frame.X)) * bpp
		copy(out.Pix[row*width*bpp:(row+1)*width*bpp], sheet.Pix[src:src+width*bpp])
	}

	return out, nil
}
