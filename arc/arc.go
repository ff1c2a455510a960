// Package arc reads and writes IDX/DAT archive volumes.
//
// A volume is a pair of files: NAME.idx holding the entry table and
// NAME.dat holding the concatenated payloads. The index starts with an
// entry count (uint16), followed by 32-byte records: a NUL-padded
// 20-byte name, payload offset and size, and a reserved field.
package arc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	nameSize   = 20
	maxEntries = 0xffff
)

// Errors returned by index parsing and extraction
var (
	ErrTruncatedIndex = errors.New("truncated index")
	ErrInvalidName    = errors.New("invalid entry name")
	ErrNotFound       = errors.New("entry not found")
)

// Entry describes a single file inside a volume
type Entry struct {
	Name   string
	Offset uint32
	Size   uint32
}

type rawEntry struct {
	Name     [nameSize]byte
	Offset   uint32
	Size     uint32
	Reserved uint32
}

// validateName rejects names that are empty, oversized or unsafe to
// extract to the filesystem
func validateName(name string) error {
	if name == "" || len(name) > nameSize {
		return ErrInvalidName
	}
	if name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return ErrInvalidName
	}
	return nil
}

// ReadIndex parses IDX stream into the entry list
func ReadIndex(r io.Reader) ([]Entry, error) {
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("unable to read entry count: %w", readError(err))
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < int(count); i++ {
		var raw rawEntry
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("unable to read entry %d: %w", i, readError(err))
		}

		name := raw.Name[:]
		if p := bytes.IndexByte(name, 0); p >= 0 {
			for _, b := range name[p:] {
				if b != 0 {
					return nil, fmt.Errorf("unable to read entry %d: %w", i, ErrInvalidName)
				}
			}
			name = name[:p]
		}

		entry := Entry{Name: string(name), Offset: raw.Offset, Size: raw.Size}
		if err := validateName(entry.Name); err != nil {
			return nil, fmt.Errorf("unable to read entry %d: %w", i, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func readError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedIndex
	}
	return err
}
