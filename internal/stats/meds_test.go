package stats

import (
	"testing"

	"github.com/arogowski/vitalog/internal/medstatus"
	"github.com/arogowski/vitalog/internal/models"
)

func med(raw string) medstatus.Value { return medstatus.FromRaw(raw) }

func TestMedicationTalliesWeightedByMultiplier(t *testing.T) {
	entries := []models.Entry{
		{Medications: map[string]medstatus.Value{"medA": med("2")}},
		{Medications: map[string]medstatus.Value{"medA": med("-1")}},
		{Medications: map[string]medstatus.Value{"medA": med("1")}},
	}

	tallies := MedicationTallies(entries)

	got, ok := tallies["medA"]
	if !ok {
		t.Fatal("medA missing from tallies")
	}
	if got.Taken != 3 || got.Missed != 1 {
		t.Errorf("medA = taken %v missed %v, want taken 3 missed 1", got.Taken, got.Missed)
	}
}

func TestMedicationTalliesMixedEncodings(t *testing.T) {
	entries := []models.Entry{
		{Medications: map[string]medstatus.Value{"a": med("taken"), "b": med("late")}},
		{Medications: map[string]medstatus.Value{"a": med("taken:2")}},
		{Medications: map[string]medstatus.Value{"b": med("missed"), "c": med("0")}},
	}

	tallies := MedicationTallies(entries)

	if got := tallies["a"]; got.Taken != 3 || got.Missed != 0 {
		t.Errorf("a = %+v, want taken 3", got)
	}
	if got := tallies["b"]; got.Taken != 0 || got.Missed != 2 {
		t.Errorf("b = %+v, want missed 2", got)
	}
	// "No info" values never surface as zero rows.
	if _, ok := tallies["c"]; ok {
		t.Error("c should be omitted, not reported as zero")
	}
}

func TestMedicationTalliesOmitsUnlogged(t *testing.T) {
	entries := []models.Entry{{Medications: nil}, {}}
	if got := MedicationTallies(entries); len(got) != 0 {
		t.Errorf("tallies = %v, want empty", got)
	}
}

func TestDisplayName(t *testing.T) {
	catalog := []models.MedicationCatalogItem{
		{ID: "met-50", Name: "Metoprolol 50mg", Active: true},
		{ID: "old-med", Name: "Stary lek", Active: false},
	}

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "active catalog item", id: "met-50", want: "Metoprolol 50mg"},
		{name: "inactive items still resolve", id: "old-med", want: "Stary lek"},
		{name: "unknown id humanized", id: "magnesium_citrate", want: "Magnesium Citrate"},
		{name: "dashes and dots", id: "vit.d3-2000", want: "Vit D3 2000"},
		{name: "arbitrary id does not crash", id: "___", want: "___"},
		{name: "empty id", id: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(catalog, tt.id); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
