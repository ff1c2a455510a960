package kg

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// copyOps is the trial order for run candidates; earlier opcodes win
// length ties.
var copyOps = [...]int{opCopyPrev, opCopyUp, opCopyUpRight, opCopyUpLeft, opCopyPrev2}

// EncodePixels compresses a palette-indexed canvas into a raw KG pixel
// stream. The encoder is greedy: at every position the five copy
// sources are measured and the strictly longest run of two or more
// pixels wins; otherwise one pixel is emitted through the dictionary
// (4 bits) or as a literal (9 bits).
//
// Only single-byte pixels are accepted. Bare 24-bit canvases cannot be
// reproduced by the single-byte literal path, so color input must be
// quantized to a palette first.
func EncodePixels(canvas []byte, width, height, bytesPerPixel int) ([]byte, error) {
	p := bytesPerPixel
	if p != 1 {
		return nil, fmt.Errorf("unable to encode %d bytes per pixel: only palette-indexed canvases round-trip", p)
	}
	total, err := canvasSize(width, height, p)
	if err != nil {
		return nil, fmt.Errorf("unable to encode pixels: %s", err)
	}
	if len(canvas) != total {
		return nil, fmt.Errorf("unable to encode pixels: have %d bytes, want %d for %dx%d", len(canvas), total, width, height)
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	line := width * p

	cursor := 0
	for prefix := 2 * p; cursor < prefix && cursor < total; cursor++ {
		w.TryWriteBits(uint64(canvas[cursor]), 8)
	}

	cache := newDictCache()

	for cursor < total {
		op, length := bestCopy(canvas, cursor, line, p)
		if length >= 2 {
			if op == opCopyPrev {
				w.TryWriteBits(uint64(op), 2)
			} else {
				w.TryWriteBits(uint64(op), 4)
			}
			writeLength(w, uint32(length))
			cursor += length * p
			continue
		}

		ref := canvas[cursor-p]
		v := canvas[cursor]
		if slot := cache.find(ref, v); slot >= 0 {
			w.TryWriteBits(0, 2)
			w.TryWriteBits(uint64(slot), 3)
		} else {
			w.TryWriteBits(1, 2)
			w.TryWriteBits(uint64(v), 8)
		}
		cache.update(ref, v)
		cursor += p
	}

	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// bestCopy measures the run each copy opcode could reproduce at cursor
// and picks the opcode with the strictly longest one; ties keep the
// earliest opcode in trial order.
func bestCopy(canvas []byte, cursor, line, p int) (op, length int) {
	for _, candidate := range copyOps {
		src := copySource(candidate, cursor, line, p)
		if src >= cursor {
			continue
		}
		if n := matchLength(canvas, src, cursor, p); n > length {
			op, length = candidate, n
		}
	}
	return op, length
}

// matchLength counts whole pixel groups a forward copy from src would
// reproduce at cursor. Matches may run past the starting cursor into
// bytes the copy itself produces, which is how single-pixel smears
// compress to one run.
func matchLength(canvas []byte, src, cursor, p int) int {
	n := 0
	for cursor+p <= len(canvas) {
		for i := 0; i < p; i++ {
			if canvas[src+i] != canvas[cursor+i] {
				return n
			}
		}
		src += p
		cursor += p
		n++
	}
	return n
}
