// Package sfx decodes SE compressed sound effects.
//
// SE files carry mono IMA-ADPCM at 4 bits per sample, two samples per
// byte with the high nibble first. Decoding produces signed 16-bit PCM.
package sfx

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const headerSize = 12

var magic = [2]byte{'S', 'E'}

// Errors returned by Decode
var (
	ErrInvalidMagic        = errors.New("invalid magic")
	ErrTruncated           = errors.New("truncated sample data")
	ErrUnsupportedChannels = errors.New("unsupported channel layout")
)

// Standard IMA-ADPCM tables
var indexTable = [16]int{
	-1, -1, -1, -1, 2, 4, 6, 8,
	-1, -1, -1, -1, 2, 4, 6, 8,
}

var stepTable = [89]int32{
	7, 8, 9, 10, 11, 12, 13, 14, 16, 17,
	19, 21, 23, 25, 28, 31, 34, 37, 41, 45,
	50, 55, 60, 66, 73, 80, 88, 97, 107, 118,
	130, 143, 157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658, 724, 796,
	876, 963, 1060, 1166, 1282, 1411, 1552, 1707, 1878, 2066,
	2272, 2499, 2749, 3024, 3327, 3660, 4026, 4428, 4871, 5358,
	5894, 6484, 7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794, 32767,
}

// Sound is a decoded sound effect
type Sound struct {
	SampleRate uint32
	Samples    []int16
}

// adpcm tracks decoder state across nibbles
type adpcm struct {
	predictor int32
	index     int
}

func (st *adpcm) decode(nibble byte) int16 {
	step := stepTable[st.index]

	diff := step >> 3
	if nibble&1 != 0 {
		diff += step >> 2
	}
	if nibble&2 != 0 {
		diff += step >> 1
	}
	if nibble&4 != 0 {
		diff += step
	}

	if nibble&8 != 0 {
		st.predictor -= diff
	} else {
		st.predictor += diff
	}

	if st.predictor > 32767 {
		st.predictor = 32767
	} else if st.predictor < -32768 {
		st.predictor = -32768
	}

	st.index += indexTable[nibble]
	if st.index < 0 {
		st.index = 0
	} else if st.index > 88 {
		st.index = 88
	}

	return int16(st.predictor)
}

// Decode parses an SE blob and expands it to PCM
func Decode(data []byte) (*Sound, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("unable to parse header: %w", ErrTruncated)
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, fmt.Errorf("unable to parse header: %w", ErrInvalidMagic)
	}
	if channels := data[3]; channels != 1 {
		return nil, fmt.Errorf("unable to parse header: %d channels: %w", channels, ErrUnsupportedChannels)
	}

	sampleRate := binary.LittleEndian.Uint32(data[4:8])
	sampleCount := binary.LittleEndian.Uint32(data[8:12])

	needed := (uint64(sampleCount) + 1) / 2
	if uint64(len(data)-headerSize) < needed {
		return nil, fmt.Errorf("unable to decode %d samples: %w", sampleCount, ErrTruncated)
	}

	sound := &Sound{
		SampleRate: sampleRate,
		Samples:    make([]int16, sampleCount),
	}

	var state adpcm
	for i := range sound.Samples {
		b := data[headerSize+i/2]

		var nibble byte
		if i%2 == 0 {
			nibble = b >> 4
		} else {
			nibble = b & 0x0f
		}

		sound.Samples[i] = state.decode(nibble)
	}

	return sound, nil
}
