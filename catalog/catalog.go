// Package catalog maintains a persistent index of scanned game
// directories, so volume contents can be queried without touching the
// original media again.
package catalog

import (
	"fmt"
	"sort"

	"github.com/kgtool-dev/kgtool/database"
)

// Asset kinds recognized by the scanner
const (
	KindImage  = "image"
	KindSound  = "sound"
	KindAnim   = "anim"
	KindFont   = "font"
	KindSprite = "sprite"
	KindCursor = "cursor"
	KindOther  = "other"
)

var kindMagics = []struct {
	magic [2]byte
	kind  string
}{
	{[2]byte{'K', 'G'}, KindImage},
	{[2]byte{'S', 'E'}, KindSound},
	{[2]byte{'A', 'S'}, KindAnim},
	{[2]byte{'F', 'N'}, KindFont},
	{[2]byte{'S', 'P'}, KindSprite},
	{[2]byte{'M', 'C'}, KindCursor},
}

// sniffKind guesses an asset kind from the payload magic
func sniffKind(payload []byte) string {
	if len(payload) < 2 {
		return KindOther
	}

	for _, candidate := range kindMagics {
		if payload[0] == candidate.magic[0] && payload[1] == candidate.magic[1] {
			return candidate.kind
		}
	}

	return KindOther
}

// Catalog does listing, scanning and dropping of volume records. It
// never opens the database itself, the caller owns the storage.
type Catalog struct {
	db database.Storage
}

// NewCatalog creates a catalog on top of opened storage
func NewCatalog(db database.Storage) *Catalog {
	return &Catalog{db: db}
}

// Volumes lists all scanned volumes, sorted by path
func (c *Catalog) Volumes() ([]*VolumeRecord, error) {
	var result []*VolumeRecord

	err := c.db.ProcessByPrefix([]byte(volumePrefix), func(_, blob []byte) error {
		volume := &VolumeRecord{}
		if err := volume.Decode(blob); err != nil {
			return fmt.Errorf("unable to decode volume record: %w", err)
		}

		result = append(result, volume)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result, nil
}

// Volume fetches a single volume record by UUID
func (c *Catalog) Volume(volumeUUID string) (*VolumeRecord, error) {
	blob, err := c.db.Get([]byte(volumePrefix + volumeUUID))
	if err != nil {
		return nil, fmt.Errorf("unable to fetch volume %s: %w", volumeUUID, err)
	}

	volume := &VolumeRecord{}
	if err := volume.Decode(blob); err != nil {
		return nil, fmt.Errorf("unable to decode volume record: %w", err)
	}
	return volume, nil
}

// Which finds every volume carrying an asset with the given name
func (c *Catalog) Which(name string) ([]*AssetRecord, error) {
	var result []*AssetRecord

	for _, blob := range c.db.FetchByPrefix([]byte(assetPrefix + name + "\x00")) {
		asset := &AssetRecord{}
		if err := asset.Decode(blob); err != nil {
			return nil, fmt.Errorf("unable to decode asset record: %w", err)
		}

		result = append(result, asset)
	}

	return result, nil
}

// Assets lists every asset of one volume, sorted by name
func (c *Catalog) Assets(volumeUUID string) ([]*AssetRecord, error) {
	var result []*AssetRecord

	err := c.db.ProcessByPrefix([]byte(assetPrefix), func(_, blob []byte) error {
		asset := &AssetRecord{}
		if err := asset.Decode(blob); err != nil {
			return fmt.Errorf("unable to decode asset record: %w", err)
		}

		if asset.VolumeUUID == volumeUUID {
			result = append(result, asset)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Drop removes a volume record and all its assets in one transaction
func (c *Catalog) Drop(volumeUUID string) error {
	volume := &VolumeRecord{UUID: volumeUUID}
	if _, err := c.db.Get(volume.Key()); err != nil {
		return fmt.Errorf("unable to drop volume %s: %w", volumeUUID, err)
	}

	keys := [][]byte{volume.Key()}

	err := c.db.ProcessByPrefix([]byte(assetPrefix), func(key, blob []byte) error {
		asset := &AssetRecord{}
		if err := asset.Decode(blob); err != nil {
			return fmt.Errorf("unable to decode asset record: %w", err)
		}

		if asset.VolumeUUID == volumeUUID {
			keys = append(keys, append([]byte(nil), key...))
		}
		return nil
	})
	if err != nil {
		return err
	}

	transaction, err := c.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("unable to drop volume %s: %w", volumeUUID, err)
	}
	defer transaction.Discard()

	for _, key := range keys {
		if err := transaction.Delete(key); err != nil {
			return fmt.Errorf("unable to drop volume %s: %w", volumeUUID, err)
		}
	}

	return transaction.Commit()
}

// Cleanup removes asset records whose volume is gone. Returns the
// number of orphans removed.
func (c *Catalog) Cleanup() (int, error) {
	volumes, err := c.Volumes()
	if err != nil {
		return 0, err
	}

	live := make(map[string]bool, len(volumes))
	for _, volume := range volumes {
		live[volume.UUID] = true
	}

	var orphans [][]byte
	err = c.db.ProcessByPrefix([]byte(assetPrefix), func(key, blob []byte) error {
		asset := &AssetRecord{}
		if err := asset.Decode(blob); err != nil {
			return fmt.Errorf("unable to decode asset record: %w", err)
		}

		if !live[asset.VolumeUUID] {
			orphans = append(orphans, append([]byte(nil), key...))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(orphans) == 0 {
		return 0, nil
	}

	batch := c.db.CreateBatch()
	for _, key := range orphans {
		if err := batch.Delete(key); err != nil {
			return 0, err
		}
	}

	return len(orphans), batch.Write()
}
