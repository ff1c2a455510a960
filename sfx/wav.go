package sfx

import (
	"encoding/binary"
	"io"
)

// wavHeaderSize is the canonical RIFF/PCM header length
const wavHeaderSize = 44

// WriteWAV writes the sound as a mono 16-bit PCM WAV file
func (snd *Sound) WriteWAV(w io.Writer) error {
	dataSize := uint32(len(snd.Samples) * 2)

	header := make([]byte, wavHeaderSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)                // PCM chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)                 // PCM format
	binary.LittleEndian.PutUint16(header[22:24], 1)                 // mono
	binary.LittleEndian.PutUint32(header[24:28], snd.SampleRate)    // sample rate
	binary.LittleEndian.PutUint32(header[28:32], snd.SampleRate*2)  // byte rate
	binary.LittleEndian.PutUint16(header[32:34], 2)                 // block align
	binary.LittleEndian.PutUint16(header[34:36], 16)                // bits per sample

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return err
	}

	pcm := make([]byte, len(snd.Samples)*2)
	for i, sample := range snd.Samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(sample))
	}

	_, err := w.Write(pcm)
	return err
}
