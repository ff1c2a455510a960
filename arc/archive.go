package arc

import (
	"fmt"
	"io"
)

// Archive binds a parsed index to the volume data for random access
type Archive struct {
	Entries []Entry

	data  io.ReaderAt
	index map[string]int
}

// NewArchive validates entries against the data size and builds the
// name lookup
func NewArchive(entries []Entry, data io.ReaderAt, dataSize int64) (*Archive, error) {
	index := make(map[string]int, len(entries))

	for i, e := range entries {
		if int64(e.Offset)+int64(e.Size) > dataSize {
			return nil, fmt.Errorf("unable to bind %s: entry extends past data end (%d+%d > %d)",
				e.Name, e.Offset, e.Size, dataSize)
		}
		index[e.Name] = i
	}

	return &Archive{Entries: entries, data: data, index: index}, nil
}

// Open reads the IDX stream and binds it to the volume data
func Open(idx io.Reader, data io.ReaderAt, dataSize int64) (*Archive, error) {
	entries, err := ReadIndex(idx)
	if err != nil {
		return nil, err
	}

	return NewArchive(entries, data, dataSize)
}

// Entry looks up an entry by name
func (a *Archive) Entry(name string) (Entry, bool) {
	i, ok := a.index[name]
	if !ok {
		return Entry{}, false
	}
	return a.Entries[i], true
}

// Extract reads the payload of the named entry
func (a *Archive) Extract(name string) ([]byte, error) {
	entry, ok := a.Entry(name)
	if !ok {
		return nil, fmt.Errorf("unable to extract %s: %w", name, ErrNotFound)
	}

	if entry.Size == 0 {
		return []byte{}, nil
	}

	payload := make([]byte, entry.Size)
	if _, err := a.data.ReadAt(payload, int64(entry.Offset)); err != nil {
		return nil, fmt.Errorf("unable to extract %s: %w", name, err)
	}

	return payload, nil
}
