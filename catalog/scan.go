package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/saracen/walker"

	"github.com/kgtool-dev/kgtool/arc"
	"github.com/kgtool-dev/kgtool/kgtool"
	"github.com/kgtool-dev/kgtool/utils"
)

// ScanOptions control volume discovery
type ScanOptions struct {
	// Extension of index files, ".idx" when empty
	IndexExtension string
	// Extension of companion data files, ".dat" when empty
	DataExtension string
}

// ScanResult sums up one Scan call
type ScanResult struct {
	Volumes int
	Assets  int
	Failed  []string
}

// Scan walks directories for volume index files and records their
// contents. Volumes already cataloged under the same path are
// rescanned in place. Broken volumes are skipped and reported in the
// result.
func (c *Catalog) Scan(dirs []string, options ScanOptions, progress kgtool.Progress) (*ScanResult, error) {
	if options.IndexExtension == "" {
		options.IndexExtension = ".idx"
	}
	if options.DataExtension == "" {
		options.DataExtension = ".dat"
	}

	var (
		indexes []string
		lock    sync.Mutex
	)

	for _, dir := range dirs {
		err := walker.Walk(dir, func(path string, info os.FileInfo) error {
			if info.IsDir() {
				return nil
			}

			if strings.EqualFold(filepath.Ext(path), options.IndexExtension) {
				lock.Lock()
				defer lock.Unlock()
				indexes = append(indexes, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to scan %s: %w", dir, err)
		}
	}

	sort.Strings(indexes)

	if progress != nil {
		progress.InitBar(int64(len(indexes)), false)
		defer progress.ShutdownBar()
	}

	result := &ScanResult{}
	for _, path := range indexes {
		count, err := c.scanVolume(path, options)
		if err != nil {
			if progress != nil {
				progress.ColoredPrintf("@y[!]@| %s: %s", path, err)
			}
			result.Failed = append(result.Failed, path)
		} else {
			result.Volumes++
			result.Assets += count
		}

		if progress != nil {
			progress.AddBar(1)
		}
	}

	return result, nil
}

// scanVolume catalogs a single IDX/DAT pair
func (c *Catalog) scanVolume(indexPath string, options ScanOptions) (int, error) {
	idx, err := os.Open(indexPath)
	if err != nil {
		return 0, fmt.Errorf("unable to open index: %w", err)
	}
	defer func() {
		_ = idx.Close()
	}()

	dataPath, data, err := openData(indexPath, options.DataExtension)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = data.Close()
	}()

	info, err := data.Stat()
	if err != nil {
		return 0, fmt.Errorf("unable to stat data: %w", err)
	}

	archive, err := arc.Open(idx, data, info.Size())
	if err != nil {
		return 0, err
	}

	// a rescan of the same index supersedes the previous records
	previous, err := c.Volumes()
	if err != nil {
		return 0, err
	}
	for _, old := range previous {
		if old.Path == indexPath {
			if err = c.Drop(old.UUID); err != nil {
				return 0, err
			}
		}
	}

	volume := NewVolumeRecord(indexPath, dataPath, len(archive.Entries))

	batch := c.db.CreateBatch()
	if err = batch.Put(volume.Key(), volume.Encode()); err != nil {
		return 0, err
	}

	for _, entry := range archive.Entries {
		payload, extractErr := archive.Extract(entry.Name)
		if extractErr != nil {
			return 0, extractErr
		}

		checksums, sumErr := utils.ChecksumsForReader(bytes.NewReader(payload))
		if sumErr != nil {
			return 0, sumErr
		}

		asset := &AssetRecord{
			VolumeUUID: volume.UUID,
			Name:       entry.Name,
			Offset:     entry.Offset,
			Size:       entry.Size,
			Kind:       sniffKind(payload),
			MD5:        checksums.MD5,
		}

		if err = batch.Put(asset.Key(), asset.Encode()); err != nil {
			return 0, err
		}
	}

	if err = batch.Write(); err != nil {
		return 0, fmt.Errorf("unable to store records: %w", err)
	}

	log.Debug().Str("volume", indexPath).Str("uuid", volume.UUID).Int("assets", len(archive.Entries)).Msg("volume cataloged")

	return len(archive.Entries), nil
}

// openData finds the companion data file for an index, trying the
// upper-case extension too since game discs mix casings freely
func openData(indexPath, dataExtension string) (string, *os.File, error) {
	base := strings.TrimSuffix(indexPath, filepath.Ext(indexPath))

	dataPath := base + dataExtension
	data, err := os.Open(dataPath)
	if os.IsNotExist(err) {
		dataPath = base + strings.ToUpper(dataExtension)
		data, err = os.Open(dataPath)
	}
	if err != nil {
		return "", nil, fmt.Errorf("unable to open data: %w", err)
	}

	return dataPath, data, nil
}
