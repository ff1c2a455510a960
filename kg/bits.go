package kg

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// The compressed stream is consumed most significant bit first. Run
// lengths use a variable-width encoding: fields of 2, 4, 8 and 16 bits
// are tried in turn, an all-zero field escaping to the next wider one.
// The 4-bit field is biased by 3 so its values continue where the
// 2-bit field left off; wider fields carry the value directly. Lengths
// of 65536 and up take two 16-bit fields, high half first.

// readLength decodes one run length. Read errors accumulate on
// r.TryError and the returned value is then meaningless.
func readLength(r *bitio.Reader) uint32 {
	if v := r.TryReadBits(2); v != 0 {
		return uint32(v)
	}
	if v := r.TryReadBits(4); v != 0 {
		return uint32(v) + 3
	}
	if v := r.TryReadBits(8); v != 0 {
		return uint32(v)
	}
	if v := r.TryReadBits(16); v != 0 {
		return uint32(v)
	}
	high := r.TryReadBits(16)
	low := r.TryReadBits(16)
	return uint32(high)<<16 | uint32(low)
}

// writeLength encodes a run length with the narrowest field covering v,
// emitting zero escapes for the skipped fields. The encoder never emits
// v == 0: a zero length has no canonical form and decodes as a no-op.
func writeLength(w *bitio.Writer, v uint32) {
	switch {
	case v <= 3:
		w.TryWriteBits(uint64(v), 2)
	case v <= 18:
		w.TryWriteBits(0, 2)
		w.TryWriteBits(uint64(v-3), 4)
	case v <= 255:
		w.TryWriteBits(0, 6)
		w.TryWriteBits(uint64(v), 8)
	case v <= 65535:
		w.TryWriteBits(0, 14)
		w.TryWriteBits(uint64(v), 16)
	default:
		w.TryWriteBits(0, 30)
		w.TryWriteBits(uint64(v>>16), 16)
		w.TryWriteBits(uint64(v&0xffff), 16)
	}
}

// readError maps bit-reader errors to the codec error taxonomy: running
// out of bits mid-image means the stream was truncated.
func readError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedStream
	}
	return err
}
