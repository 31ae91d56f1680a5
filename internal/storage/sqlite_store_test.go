package storage

import (
	"path/filepath"
	"testing"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "vitalog.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreLoadRequiresInit(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Fatal("Load() on an uninitialized path should error")
	}
}

func TestSQLiteStoreEntriesRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	dia := 80.0
	entries := []models.Entry{
		{ID: "s1", DT: "2024-03-10T12:00", Dia: &dia, Food: "obiad"},
	}
	if err := s.SaveEntries(entries); err != nil {
		t.Fatalf("SaveEntries() error = %v", err)
	}

	got, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "s1" || got[0].Dia == nil || *got[0].Dia != 80 {
		t.Fatalf("Entries() = %+v", got)
	}
}

func TestSQLiteStoreFallsBackPastCorruptKey(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.write("bp_chatlog_items_v4", []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	if err := s.write("bp_chatlog_items_v2", []byte(`[{"id":"legacy-1"}]`)); err != nil {
		t.Fatal(err)
	}

	got, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "legacy-1" {
		t.Fatalf("Entries() = %+v, want the v2 collection", got)
	}
}

func TestSQLiteStoreWaterTargetAndCatalog(t *testing.T) {
	s := newTestSQLiteStore(t)

	got, err := s.WaterTargetMl()
	if err != nil {
		t.Fatalf("WaterTargetMl() error = %v", err)
	}
	if got != constants.DefaultWaterTargetMl {
		t.Errorf("WaterTargetMl() = %d, want default", got)
	}
	if err := s.SaveWaterTargetMl(1800); err != nil {
		t.Fatalf("SaveWaterTargetMl() error = %v", err)
	}
	if got, _ := s.WaterTargetMl(); got != 1800 {
		t.Errorf("WaterTargetMl() = %d, want 1800", got)
	}

	if err := s.SaveCatalog([]models.MedicationCatalogItem{{ID: "aspirin", Name: "Aspirin", Active: true}}); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}
	items, err := s.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "aspirin" {
		t.Errorf("Catalog() = %+v", items)
	}
}
