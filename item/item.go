// Package item reads and writes ITM item tables.
//
// Tables ship obfuscated with a rolling XOR keystream seeded by a
// per-title key byte. The keystream depends only on the seed, so the
// same pass both hides and reveals; a wrong key shows up as a bad
// magic, never as plausible garbage records.
package item

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	headerSize = 8
	recordSize = 32
	nameSize   = 24
)

var magic = [2]byte{'I', 'T'}

// Errors returned by parsing and serialization
var (
	ErrInvalidMagic = errors.New("invalid magic")
	ErrTruncated    = errors.New("truncated table")
	ErrInvalidName  = errors.New("invalid item name")
)

// Item is a single table record
type Item struct {
	ID    uint16
	Kind  uint8
	Flags uint8
	Price uint32
	Name  string
}

// Table is a parsed ITM file
type Table struct {
	Version uint8
	Items   []Item
}

// mask applies the rolling XOR keystream in place. Applying it twice
// with the same seed restores the input.
func mask(data []byte, key byte) {
	for i := range data {
		data[i] ^= key
		key = key*0x4d + 0x2f
	}
}

// Parse deobfuscates and reads an ITM blob. A wrong key fails the
// magic check.
func Parse(data []byte, key byte) (*Table, error) {
	plain := append([]byte(nil), data...)
	mask(plain, key)

	if len(plain) < headerSize {
		return nil, fmt.Errorf("unable to parse header: %w", ErrTruncated)
	}
	if plain[0] != magic[0] || plain[1] != magic[1] {
		return nil, fmt.Errorf("unable to parse header: %w", ErrInvalidMagic)
	}

	table := &Table{Version: plain[2]}
	count := int(binary.LittleEndian.Uint16(plain[4:6]))

	if len(plain) < headerSize+count*recordSize {
		return nil, fmt.Errorf("unable to parse %d items: %w", count, ErrTruncated)
	}

	table.Items = make([]Item, count)
	for i := range table.Items {
		raw := plain[headerSize+i*recordSize:]

		name := raw[8 : 8+nameSize]
		if idx := bytes.IndexByte(name, 0); idx >= 0 {
			name = name[:idx]
		}

		table.Items[i] = Item{
			ID:    binary.LittleEndian.Uint16(raw[0:2]),
			Kind:  raw[2],
			Flags: raw[3],
			Price: binary.LittleEndian.Uint32(raw[4:8]),
			Name:  string(name),
		}
	}

	return table, nil
}

// Bytes serializes and obfuscates the table with the given key
func (t *Table) Bytes(key byte) ([]byte, error) {
	if len(t.Items) > 0xffff {
		return nil, fmt.Errorf("unable to serialize %d items: item count out of range", len(t.Items))
	}

	result := make([]byte, headerSize+len(t.Items)*recordSize)
	result[0], result[1] = magic[0], magic[1]
	result[2] = t.Version
	binary.LittleEndian.PutUint16(result[4:6], uint16(len(t.Items)))

	for i, item := range t.Items {
		if len(item.Name) > nameSize || bytes.IndexByte([]byte(item.Name), 0) >= 0 {
			return nil, fmt.Errorf("unable to serialize item %d: %q: %w", item.ID, item.Name, ErrInvalidName)
		}

		raw := result[headerSize+i*recordSize:]
		binary.LittleEndian.PutUint16(raw[0:2], item.ID)
		raw[2] = item.Kind
		raw[3] = item.Flags
		binary.LittleEndian.PutUint32(raw[4:8], item.Price)
		copy(raw[8:8+nameSize], item.Name)
	}

	mask(result, key)
	return result, nil
}
