package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/storage"
)

const (
	// MaxBackups is the maximum number of snapshots to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for snapshot files
	BackupFilePrefix = "vitalog-"
	// BackupFileSuffix is the suffix for snapshot files
	BackupFileSuffix = ".json"
)

// Snapshot is a self-contained copy of every journal document. It is
// plain JSON so a snapshot remains readable without the tool.
type Snapshot struct {
	CreatedAt     string                         `json:"createdAt"`
	Entries       []models.Entry                 `json:"entries"`
	Catalog       []models.MedicationCatalogItem `json:"catalog"`
	WaterTargetMl int                            `json:"waterTargetMl"`
}

// BackupInfo contains information about a snapshot file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot operations against a loaded store
type Manager struct {
	store     storage.Provider
	backupDir string
}

// NewManager creates a new backup manager
func NewManager(store storage.Provider) *Manager {
	dataDir := store.DataPath()
	if strings.HasSuffix(dataDir, ".db") {
		dataDir = filepath.Dir(dataDir)
	}
	return &Manager{
		store:     store,
		backupDir: filepath.Join(dataDir, BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup writes a new snapshot and rotates old ones
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	snap, err := m.collect()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	backupPath, err := m.uniquePath()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

func (m *Manager) collect() (Snapshot, error) {
	entries, err := m.store.Entries()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read entries: %w", err)
	}
	catalog, err := m.store.Catalog()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	target, err := m.store.WaterTargetMl()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read water target: %w", err)
	}
	return Snapshot{
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Entries:       entries,
		Catalog:       catalog,
		WaterTargetMl: target,
	}, nil
}

// uniquePath picks a timestamped filename, adding seconds and then a
// counter when snapshots land in the same minute.
func (m *Manager) uniquePath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return backupPath, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
	counter := 1
	for {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return backupPath, nil
		}
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, BackupFileSuffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

// ListBackups returns all available snapshots, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	files, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, BackupFileSuffix)
		if idx := strings.LastIndex(timestampStr, "-"); idx > 0 {
			// Strip a trailing collision counter (short all-digit segment)
			last := timestampStr[idx+1:]
			if len(last) != 4 && len(last) != 6 && isDigits(last) {
				timestampStr = timestampStr[:idx]
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= MaxBackups {
		return nil
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the journal documents with a snapshot's
// contents. The current state is snapshotted first so a restore is
// itself reversible.
func (m *Manager) RestoreBackup(backupPath string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	currentBackup, err := m.createBackup(true)
	if err != nil {
		return fmt.Errorf("failed to snapshot current state before restore: %w", err)
	}
	fmt.Printf("Created backup of current state: %s\n", filepath.Base(currentBackup))

	if err := m.store.SaveEntries(snap.Entries); err != nil {
		return fmt.Errorf("failed to restore entries: %w", err)
	}
	if err := m.store.SaveCatalog(snap.Catalog); err != nil {
		return fmt.Errorf("failed to restore catalog: %w", err)
	}
	if snap.WaterTargetMl > 0 {
		if err := m.store.SaveWaterTargetMl(snap.WaterTargetMl); err != nil {
			return fmt.Errorf("failed to restore water target: %w", err)
		}
	}

	return nil
}
