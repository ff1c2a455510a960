package kg

import (
	"encoding/binary"
	"fmt"
)

// Sizes of the fixed parts of a KG file.
const (
	HeaderSize  = 32
	PaletteSize = paletteEntries * 4

	paletteEntries = 256
)

// Magic holds the first two bytes of every KG file.
var Magic = [2]byte{'K', 'G'}

// CompressionBPP3 is the only compression scheme the codec supports.
const CompressionBPP3 = 1

// Header is the fixed 32-byte little-endian header at the start of a KG
// file. The twelve trailing bytes are reserved and written as zero.
type Header struct {
	Version         byte
	CompressionType byte
	Width           uint16
	Height          uint16
	PaletteOffset   uint32
	DataOffset      uint32
	FileSize        uint32
}

// ParseHeader reads and validates the fixed header.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("unable to parse header: %d bytes: %w", len(data), ErrInsufficientHeaderData)
	}
	if data[0] != Magic[0] || data[1] != Magic[1] {
		return nil, fmt.Errorf("unable to parse header: %w", ErrInvalidMagic)
	}

	h := &Header{
		Version:         data[2],
		CompressionType: data[3],
		Width:           binary.LittleEndian.Uint16(data[4:]),
		Height:          binary.LittleEndian.Uint16(data[6:]),
		PaletteOffset:   binary.LittleEndian.Uint32(data[8:]),
		DataOffset:      binary.LittleEndian.Uint32(data[12:]),
		FileSize:        binary.LittleEndian.Uint32(data[16:]),
	}

	if h.CompressionType != CompressionBPP3 {
		return nil, fmt.Errorf("unable to parse header: type %d: %w", h.CompressionType, ErrUnsupportedCompressionType)
	}

	return h, nil
}

// Bytes serializes the header back to its 32-byte wire form.
func (h *Header) Bytes() []byte {
	buf := make([]byte, HeaderSize)
	buf[0] = Magic[0]
	buf[1] = Magic[1]
	buf[2] = h.Version
	buf[3] = h.CompressionType
	binary.LittleEndian.PutUint16(buf[4:], h.Width)
	binary.LittleEndian.PutUint16(buf[6:], h.Height)
	binary.LittleEndian.PutUint32(buf[8:], h.PaletteOffset)
	binary.LittleEndian.PutUint32(buf[12:], h.DataOffset)
	binary.LittleEndian.PutUint32(buf[16:], h.FileSize)
	return buf
}

// BytesPerPixel derives the pixel size from palette presence: indexed
// images store one byte per pixel, bare ones store B,G,R triples.
func (h *Header) BytesPerPixel() int {
	if h.PaletteOffset != 0 {
		return 1
	}
	return 3
}
