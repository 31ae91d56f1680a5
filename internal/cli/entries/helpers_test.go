package entries

import (
	"testing"

	"github.com/arogowski/vitalog/internal/medstatus"
	"github.com/arogowski/vitalog/internal/models"
)

func TestParseMedSpecs(t *testing.T) {
	meds := map[string]medstatus.Value{}

	if err := parseMedSpecs(meds, []string{"aspirin", "metoprolol=2"}, 1); err != nil {
		t.Fatalf("parseMedSpecs() error = %v", err)
	}
	if err := parseMedSpecs(meds, []string{"ibuprofen"}, -1); err != nil {
		t.Fatalf("parseMedSpecs() error = %v", err)
	}

	if st := meds["aspirin"].Status(); st.State != medstatus.Taken || st.Multiplier != 1 {
		t.Errorf("aspirin = %+v", st)
	}
	if st := meds["metoprolol"].Status(); st.State != medstatus.Taken || st.Multiplier != 2 {
		t.Errorf("metoprolol = %+v", st)
	}
	if st := meds["ibuprofen"].Status(); st.State != medstatus.Missed || st.Multiplier != 1 {
		t.Errorf("ibuprofen = %+v", st)
	}
}

func TestParseMedSpecsCommaDecimal(t *testing.T) {
	meds := map[string]medstatus.Value{}
	if err := parseMedSpecs(meds, []string{"xanax=0,5"}, 1); err != nil {
		t.Fatalf("parseMedSpecs() error = %v", err)
	}
	if st := meds["xanax"].Status(); st.Multiplier != 0.5 {
		t.Errorf("multiplier = %g, want 0.5", st.Multiplier)
	}
}

func TestParseMedSpecsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty id", spec: "=2"},
		{name: "zero count", spec: "aspirin=0"},
		{name: "negative count", spec: "aspirin=-1"},
		{name: "non-numeric count", spec: "aspirin=two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := parseMedSpecs(map[string]medstatus.Value{}, []string{tt.spec}, 1); err == nil {
				t.Errorf("parseMedSpecs(%q) should error", tt.spec)
			}
		})
	}
}

func TestPruneMeds(t *testing.T) {
	meds := map[string]medstatus.Value{
		"keep": medstatus.FromSigned(1),
		"drop": medstatus.FromSigned(0),
	}
	got := pruneMeds(meds)
	if len(got) != 1 {
		t.Fatalf("pruneMeds() kept %d values, want 1", len(got))
	}
	if _, ok := got["keep"]; !ok {
		t.Error("positive value should survive pruning")
	}

	if got := pruneMeds(map[string]medstatus.Value{"only": medstatus.FromSigned(0)}); got != nil {
		t.Errorf("all-pruned map should collapse to nil, got %v", got)
	}
}

func TestMedOptionsLabelAndValue(t *testing.T) {
	catalog := []models.MedicationCatalogItem{
		{ID: "metoprolol", Name: "Metoprolol", Dose: "50mg", Active: true},
		{ID: "vit_d3", Name: "Vit D3", Active: true},
		{ID: "old_med", Name: "Old Med", Active: false},
	}

	opts := medOptions(models.ActiveCatalog(catalog))
	if len(opts) != 2 {
		t.Fatalf("medOptions() offered %d medications, want the 2 active ones", len(opts))
	}
	if opts[0].Value != "metoprolol" || opts[0].Key != "Metoprolol (50mg)" {
		t.Errorf("opts[0] = %q/%q, want dose in the label and the id as value", opts[0].Key, opts[0].Value)
	}
	if opts[1].Key != "Vit D3" {
		t.Errorf("opts[1] label = %q, doseless items should use the bare name", opts[1].Key)
	}
}

func TestEditApplyTrimsFreeText(t *testing.T) {
	c := &EditCmd{
		Symptoms: "\theadache \n",
		Notes:    "  after coffee  ",
	}
	var e models.Entry
	if err := c.apply(&e); err != nil {
		t.Fatalf("apply() error = %v", err)
	}
	if e.Symptoms != "headache" {
		t.Errorf("Symptoms = %q, want trimmed", e.Symptoms)
	}
	if e.Notes != "after coffee" {
		t.Errorf("Notes = %q, want trimmed", e.Notes)
	}
}

func TestParseEntryTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "minute precision", in: "2024-05-01T08:30"},
		{name: "bare date", in: "2024-05-01"},
		{name: "empty means now", in: ""},
		{name: "free text", in: "yesterday", wantErr: true},
		{name: "with seconds", in: "2024-05-01T08:30:15", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEntryTimestamp(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseEntryTimestamp(%q) should error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEntryTimestamp(%q) error = %v", tt.in, err)
			}
			if tt.in != "" && got != tt.in {
				t.Errorf("got %q, want input passed through", got)
			}
			if tt.in == "" && got == "" {
				t.Error("empty input should produce a current timestamp")
			}
		})
	}
}
