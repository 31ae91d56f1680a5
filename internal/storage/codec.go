package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/logger"
	"github.com/arogowski/vitalog/internal/models"
)

// readFunc reads one storage key; ok is false when the key is absent.
type readFunc func(key string) (raw []byte, ok bool)

// loadEntries probes the versioned entry keys newest-first and returns
// the first collection that decodes. A key holding corrupt content is
// treated as absent and probing continues; running out of keys yields an
// empty collection, never an error.
func loadEntries(read readFunc) []models.Entry {
	for _, key := range constants.EntryKeys {
		raw, ok := read(key)
		if !ok {
			continue
		}
		entries, err := decodeEntries(raw)
		if err != nil {
			logger.Warn("Skipping unreadable entry collection", "key", key, "error", err)
			continue
		}
		return entries
	}
	return []models.Entry{}
}

// decodeEntries accepts the two historical document shapes: a bare entry
// array, or an object wrapping the array under "items".
func decodeEntries(raw []byte) ([]models.Entry, error) {
	var list []models.Entry
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var wrapped struct {
		Items []models.Entry `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Items != nil {
		return wrapped.Items, nil
	}
	return nil, fmt.Errorf("document is neither an entry array nor an items wrapper")
}

func encodeEntries(entries []models.Entry) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize entries: %w", err)
	}
	return data, nil
}

func loadCatalog(read readFunc) []models.MedicationCatalogItem {
	raw, ok := read(constants.CatalogKey)
	if !ok {
		return []models.MedicationCatalogItem{}
	}
	var items []models.MedicationCatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("Skipping unreadable medication catalog", "error", err)
		return []models.MedicationCatalogItem{}
	}
	return items
}

func encodeCatalog(items []models.MedicationCatalogItem) ([]byte, error) {
	if items == nil {
		items = []models.MedicationCatalogItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize catalog: %w", err)
	}
	return data, nil
}

// loadWaterTarget reads the stored daily target, falling back to the
// default when the key is absent or holds anything but a positive number.
func loadWaterTarget(read readFunc) int {
	raw, ok := read(constants.WaterTargetKey)
	if !ok {
		return constants.DefaultWaterTargetMl
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return constants.DefaultWaterTargetMl
	}
	return int(math.Round(v))
}
