package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/models"
)

// SQLiteStore packs all storage keys into a single-file kv table. The
// documents themselves stay JSON, so both backends share one codec.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'vitalog init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	return err
}

func (s *SQLiteStore) read(key string) ([]byte, bool) {
	var val []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&val)
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *SQLiteStore) write(key string, val []byte) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, val)
	return err
}

func (s *SQLiteStore) Entries() ([]models.Entry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return loadEntries(s.read), nil
}

func (s *SQLiteStore) SaveEntries(entries []models.Entry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := s.write(constants.EntriesKey, data); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Catalog() ([]models.MedicationCatalogItem, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return loadCatalog(s.read), nil
}

func (s *SQLiteStore) SaveCatalog(items []models.MedicationCatalogItem) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := encodeCatalog(items)
	if err != nil {
		return err
	}
	if err := s.write(constants.CatalogKey, data); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func (s *SQLiteStore) WaterTargetMl() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("storage not loaded")
	}
	return loadWaterTarget(s.read), nil
}

func (s *SQLiteStore) SaveWaterTargetMl(ml int) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if ml <= 0 {
		return fmt.Errorf("water target must be a positive number of milliliters")
	}
	if err := s.write(constants.WaterTargetKey, []byte(strconv.Itoa(ml))); err != nil {
		return fmt.Errorf("failed to write water target: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DataPath() string {
	return s.path
}
