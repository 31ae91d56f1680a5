package storage

import (
	"fmt"
	"os"
	"strconv"

	"github.com/peterbourgon/diskv/v3"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/models"
)

// KVStore keeps each storage key as one flat file under the data
// directory, which makes the documents greppable and trivially
// importable from a browser localStorage dump.
type KVStore struct {
	basePath string
	d        *diskv.Diskv
}

func NewKVStore(basePath string) *KVStore {
	return &KVStore{
		basePath: basePath,
	}
}

func flatTransform(s string) []string { return []string{} }

func (s *KVStore) open() {
	s.d = diskv.New(diskv.Options{
		BasePath:     s.basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})
}

func (s *KVStore) Init() error {
	if err := os.MkdirAll(s.basePath, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	s.open()
	return nil
}

func (s *KVStore) Load() error {
	if s.d != nil {
		return nil
	}
	if _, err := os.Stat(s.basePath); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'vitalog init' first")
	}
	s.open()
	return nil
}

func (s *KVStore) Close() error {
	s.d = nil
	return nil
}

func (s *KVStore) read(key string) ([]byte, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *KVStore) Entries() ([]models.Entry, error) {
	if s.d == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return loadEntries(s.read), nil
}

// SaveEntries writes the collection to the current versioned key only.
// Legacy keys are left untouched so a downgrade still finds its data.
func (s *KVStore) SaveEntries(entries []models.Entry) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := s.d.Write(constants.EntriesKey, data); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	return nil
}

func (s *KVStore) Catalog() ([]models.MedicationCatalogItem, error) {
	if s.d == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return loadCatalog(s.read), nil
}

func (s *KVStore) SaveCatalog(items []models.MedicationCatalogItem) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := encodeCatalog(items)
	if err != nil {
		return err
	}
	if err := s.d.Write(constants.CatalogKey, data); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func (s *KVStore) WaterTargetMl() (int, error) {
	if s.d == nil {
		return 0, fmt.Errorf("storage not loaded")
	}
	return loadWaterTarget(s.read), nil
}

func (s *KVStore) SaveWaterTargetMl(ml int) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	if ml <= 0 {
		return fmt.Errorf("water target must be a positive number of milliliters")
	}
	if err := s.d.Write(constants.WaterTargetKey, []byte(strconv.Itoa(ml))); err != nil {
		return fmt.Errorf("failed to write water target: %w", err)
	}
	return nil
}

func (s *KVStore) DataPath() string {
	return s.basePath
}
