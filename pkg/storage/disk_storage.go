package storage

import (
	"compress/gzip"
	"encoding/json"
	"log"
	"os"
	"path"

	"github.com/hearthside/homefinder/pkg/types"
)

const listingsFile = "listings.json.gz"

// Snapshot is the on-disk shape of the in-memory collections.
type Snapshot map[types.Kind][]types.ListingRecord

func (s Snapshot) Len() int {
	total := 0
	for _, records := range s {
		total += len(records)
	}
	return total
}

// DiskStorage persists the listing collections as a gzipped JSON snapshot
// so a restart does not have to refetch the upstream API.
type DiskStorage struct {
	Path string
}

func NewDiskStorage(dataPath string) *DiskStorage {
	return &DiskStorage{Path: dataPath}
}

func (d *DiskStorage) fileName(name string) string {
	return path.Join(d.Path, name)
}

// SaveListings writes the snapshot to a temp file and renames it into
// place so readers never see a partial write.
func (d *DiskStorage) SaveListings(s Snapshot) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return err
	}
	target := d.fileName(listingsFile)
	tmp := target + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(file)
	if err := json.NewEncoder(zw).Encode(s); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := zw.Close(); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, target)
}

// LoadListings reads the snapshot back; the caller decides what a missing
// file means.
func (d *DiskStorage) LoadListings() (Snapshot, error) {
	file, err := os.Open(d.fileName(listingsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var s Snapshot
	if err := json.NewDecoder(zr).Decode(&s); err != nil {
		return nil, err
	}
	log.Printf("loaded %d listings from %s", s.Len(), d.fileName(listingsFile))
	return s, nil
}

// HasListings reports whether a snapshot file exists.
func (d *DiskStorage) HasListings() bool {
	info, err := os.Stat(d.fileName(listingsFile))
	return err == nil && !info.IsDir()
}
