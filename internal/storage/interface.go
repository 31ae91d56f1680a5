package storage

import "github.com/arogowski/vitalog/internal/models"

// Provider is the persistence boundary of the journal. Implementations
// hold JSON documents under versioned keys; the core loads a collection,
// transforms it in memory and saves it back whole. Malformed or missing
// documents degrade to empty values; errors cross this boundary only
// for lifecycle and write failures.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entry collection
	Entries() ([]models.Entry, error)
	SaveEntries([]models.Entry) error

	// Medication catalog
	Catalog() ([]models.MedicationCatalogItem, error)
	SaveCatalog([]models.MedicationCatalogItem) error

	// Daily water target (milliliters)
	WaterTargetMl() (int, error)
	SaveWaterTargetMl(int) error

	// Utils
	DataPath() string
}
