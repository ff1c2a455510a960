package catalog

import (
	"bytes"
	"time"

	"github.com/pborman/uuid"
	"github.com/ugorji/go/codec"
)

// Key prefixes inside the catalog database
const (
	volumePrefix = "V"
	assetPrefix  = "A"
)

// VolumeRecord describes one scanned IDX/DAT volume pair
type VolumeRecord struct {
	// Permanent internal ID
	UUID string
	// Absolute path to the index file
	Path string
	// Absolute path to the companion data file
	DataPath string
	// Number of entries in the volume
	FileCount int
	// Time of the last scan
	ScannedAt time.Time
}

// NewVolumeRecord creates a record for a freshly scanned volume
func NewVolumeRecord(path, dataPath string, fileCount int) *VolumeRecord {
	return &VolumeRecord{
		UUID:      uuid.New(),
		Path:      path,
		DataPath:  dataPath,
		FileCount: fileCount,
		ScannedAt: time.Now(),
	}
}

// Key is a unique id in DB
func (v *VolumeRecord) Key() []byte {
	return []byte(volumePrefix + v.UUID)
}

// Encode does msgpack encoding of VolumeRecord
func (v *VolumeRecord) Encode() []byte {
	var buf bytes.Buffer

	encoder := codec.NewEncoder(&buf, &codec.MsgpackHandle{})
	encoder.Encode(v)

	return buf.Bytes()
}

// Decode decodes msgpack representation into VolumeRecord
func (v *VolumeRecord) Decode(input []byte) error {
	decoder := codec.NewDecoderBytes(input, &codec.MsgpackHandle{})
	return decoder.Decode(v)
}

// AssetRecord describes one entry inside a scanned volume
type AssetRecord struct {
	// Owning volume
	VolumeUUID string
	// Entry name inside the volume
	Name string
	// Location inside the data file
	Offset uint32
	Size   uint32
	// Sniffed payload kind
	Kind string
	// Payload digest, hex
	MD5 string
}

// Key is a unique id in DB. Keys sort by name first so lookups by
// asset name are a prefix scan.
func (a *AssetRecord) Key() []byte {
	return []byte(assetPrefix + a.Name + "\x00" + a.VolumeUUID)
}

// Encode does msgpack encoding of AssetRecord
func (a *AssetRecord) Encode() []byte {
	var buf bytes.Buffer

	encoder := codec.NewEncoder(&buf, &codec.MsgpackHandle{})
	encoder.Encode(a)

	return buf.Bytes()
}

// Decode decodes msgpack representation into AssetRecord
func (a *AssetRecord) Decode(input []byte) error {
	decoder := codec.NewDecoderBytes(input, &codec.MsgpackHandle{})
	return decoder.Decode(a)
}
