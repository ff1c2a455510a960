package arc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Writer assembles an archive volume from (name, payload) pairs
type Writer struct {
	entries []Entry
	seen    map[string]struct{}
	data    bytes.Buffer
}

// NewWriter creates empty volume writer
func NewWriter() *Writer {
	return &Writer{
		seen: make(map[string]struct{}),
	}
}

// Add appends one file to the volume
func (w *Writer) Add(name string, payload []byte) error {
	if err := validateName(name); err != nil {
		return fmt.Errorf("unable to add %q: %w", name, err)
	}
	if _, dup := w.seen[name]; dup {
		return fmt.Errorf("unable to add %q: duplicate name", name)
	}
	if len(w.entries) == maxEntries {
		return fmt.Errorf("unable to add %q: volume is full", name)
	}

	w.entries = append(w.entries, Entry{
		Name:   name,
		Offset: uint32(w.data.Len()),
		Size:   uint32(len(payload)),
	})
	w.seen[name] = struct{}{}
	w.data.Write(payload)

	return nil
}

// Entries returns entries added so far
func (w *Writer) Entries() []Entry {
	return w.entries
}

// WriteIndex writes the IDX stream for everything added
func (w *Writer) WriteIndex(out io.Writer) error {
	if err := binary.Write(out, binary.LittleEndian, uint16(len(w.entries))); err != nil {
		return err
	}

	for _, e := range w.entries {
		raw := rawEntry{Offset: e.Offset, Size: e.Size}
		copy(raw.Name[:], e.Name)

		if err := binary.Write(out, binary.LittleEndian, &raw); err != nil {
			return err
		}
	}

	return nil
}

// WriteData writes the DAT stream for everything added
func (w *Writer) WriteData(out io.Writer) error {
	_, err := out.Write(w.data.Bytes())
	return err
}
