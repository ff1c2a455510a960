// Package anim reads and writes SEQ animation sequences.
//
// A sequence is a tiny program over three ops: show a frame for a
// delay, jump to another record, stop. Engines run it per-layer to
// animate blinking sprites and background loops.
package anim

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Sequence ops
const (
	OpFrame = 0
	OpJump  = 1
	OpStop  = 2
)

const (
	headerSize = 8
	recordSize = 8
)

var magic = [2]byte{'A', 'S'}

// Errors returned by parsing and simulation
var (
	ErrInvalidMagic = errors.New("invalid magic")
	ErrTruncated    = errors.New("truncated sequence")
)

// Record is a single sequence instruction
type Record struct {
	Op    uint8
	Arg   uint16
	Delay uint16
}

// Sequence is a parsed SEQ program
type Sequence struct {
	Version uint8
	Records []Record
}

// Parse reads a SEQ blob. Trailing bytes past the declared record
// count are ignored.
func Parse(data []byte) (*Sequence, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("unable to parse header: %w", ErrTruncated)
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, fmt.Errorf("unable to parse header: %w", ErrInvalidMagic)
	}

	seq := &Sequence{Version: data[2]}
	count := int(binary.LittleEndian.Uint16(data[4:6]))

	if len(data) < headerSize+count*recordSize {
		return nil, fmt.Errorf("unable to parse %d records: %w", count, ErrTruncated)
	}

	seq.Records = make([]Record, count)
	for i := range seq.Records {
		raw := data[headerSize+i*recordSize:]

		rec := Record{
			Op:    raw[0],
			Arg:   binary.LittleEndian.Uint16(raw[2:4]),
			Delay: binary.LittleEndian.Uint16(raw[4:6]),
		}
		if rec.Op > OpStop {
			return nil, fmt.Errorf("unable to parse record %d: unknown op %d", i, rec.Op)
		}

		seq.Records[i] = rec
	}

	return seq, nil
}

// Bytes serializes the sequence back to the SEQ layout
func (s *Sequence) Bytes() ([]byte, error) {
	if len(s.Records) > 0xffff {
		return nil, fmt.Errorf("unable to serialize %d records: record count out of range", len(s.Records))
	}

	result := make([]byte, headerSize+len(s.Records)*recordSize)
	result[0], result[1] = magic[0], magic[1]
	result[2] = s.Version
	binary.LittleEndian.PutUint16(result[4:6], uint16(len(s.Records)))

	for i, rec := range s.Records {
		raw := result[headerSize+i*recordSize:]
		raw[0] = rec.Op
		binary.LittleEndian.PutUint16(raw[2:4], rec.Arg)
		binary.LittleEndian.PutUint16(raw[4:6], rec.Delay)
	}

	return result, nil
}
