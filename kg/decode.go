package kg

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Copy opcodes. The constant values double as the bit patterns written
// to the stream: opcode 2 is the two-bit prefix 10, opcodes 12-15 are
// the four-bit prefixes 1100 through 1111.
const (
	opCopyPrev    = 2  // previous pixel
	opCopyUp      = 12 // same position on the previous line
	opCopyUpRight = 13 // previous line, one pixel to the right
	opCopyUpLeft  = 14 // previous line, one pixel to the left
	opCopyPrev2   = 15 // two pixels back
)

// maxCanvasBytes caps decoded canvases at 1 GiB; header dimensions are
// 16-bit, so anything near the cap is garbage input anyway.
const maxCanvasBytes = 1 << 30

// copySource returns the canvas offset a copy opcode reads from at the
// given cursor. Sources that would land before the canvas start
// saturate; the encoder computes sources with this same function so
// that both sides agree near the top edge.
func copySource(op, cursor, line, p int) int {
	switch op {
	case opCopyPrev:
		return cursor - p
	case opCopyUp:
		if cursor < line {
			return 0
		}
		return cursor - line
	case opCopyUpRight:
		if cursor > line {
			return cursor - line + p
		}
		return p
	case opCopyUpLeft:
		if cursor > line+p {
			return cursor - line - p
		}
		return 0
	default: // opCopyPrev2
		if cursor < 2*p {
			return 0
		}
		return cursor - 2*p
	}
}

func canvasSize(width, height, p int) (int, error) {
	if p != 1 && p != 3 {
		return 0, fmt.Errorf("unsupported pixel size %d", p)
	}
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	total := int64(width) * int64(height) * int64(p)
	if total > maxCanvasBytes {
		return 0, fmt.Errorf("canvas too large: %dx%d at %d bytes per pixel", width, height, p)
	}
	return int(total), nil
}

// DecodePixels decompresses a raw KG pixel stream (the file contents
// past the data offset) into a canvas of width*height pixels of
// bytesPerPixel bytes each: palette indices for indexed images, B,G,R
// triples otherwise. Trailing bits past the final pixel are padding and
// are ignored.
func DecodePixels(data []byte, width, height, bytesPerPixel int) ([]byte, error) {
	p := bytesPerPixel
	total, err := canvasSize(width, height, p)
	if err != nil {
		return nil, fmt.Errorf("unable to decode pixels: %s", err)
	}

	canvas := make([]byte, total)
	if total == 0 {
		return canvas, nil
	}

	r := bitio.NewReader(bytes.NewReader(data))
	line := width * p

	// The first two pixels are always raw literals.
	cursor := 0
	for prefix := 2 * p; cursor < prefix && cursor < total; cursor++ {
		canvas[cursor] = byte(r.TryReadBits(8))
	}
	if r.TryError != nil {
		return nil, readError(r.TryError)
	}

	cache := newDictCache()

	for cursor < total {
		if r.TryReadBits(1) == 0 {
			// Single pixel: 8-bit literal or a dictionary slot keyed by
			// the previous pixel byte.
			ref := canvas[cursor-p]
			var v byte
			if r.TryReadBits(1) != 0 {
				v = byte(r.TryReadBits(8))
			} else {
				v = cache.lookup(ref, int(r.TryReadBits(3)))
			}
			if r.TryError != nil {
				return nil, readError(r.TryError)
			}
			canvas[cursor] = v
			cache.update(ref, v)
			cursor += p
			continue
		}

		var op int
		if r.TryReadBits(1) == 0 {
			op = opCopyPrev
		} else {
			op = opCopyUp + int(r.TryReadBits(2))
		}

		length := int64(readLength(r))
		if r.TryError != nil {
			return nil, readError(r.TryError)
		}
		if length > int64((total-cursor)/p) {
			return nil, fmt.Errorf("unable to copy %d pixels at offset %d: %w", length, cursor, ErrCanvasOverrun)
		}

		// Byte-wise forward copy: the source may overlap the
		// destination, replicating the bytes written moments ago.
		src := copySource(op, cursor, line, p)
		for end := cursor + int(length)*p; cursor < end; cursor++ {
			canvas[cursor] = canvas[src]
			src++
		}
	}

	return canvas, nil
}
