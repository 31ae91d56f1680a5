package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/arogowski/vitalog/internal/journal"
	"github.com/arogowski/vitalog/internal/models"
)

func TestNewPayloadEnvelope(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	q := journal.Query{Text: "headache", From: &from, To: &to, Sort: journal.SortDesc}
	items := []models.Entry{{ID: "e1", DT: "2024-01-15T09:00"}}

	p := NewPayload(items, q)

	if p.App != "bp-chatlog" {
		t.Errorf("App = %q, want bp-chatlog", p.App)
	}
	if p.Version != 4 {
		t.Errorf("Version = %d, want 4", p.Version)
	}
	if p.Scope != "current_view" {
		t.Errorf("Scope = %q, want current_view", p.Scope)
	}
	if p.Filters.Query != "headache" || p.Filters.Sort != "desc" {
		t.Errorf("Filters = %+v", p.Filters)
	}
	if p.Filters.FromDate != "2024-01-01" || p.Filters.ToDate != "2024-01-31" {
		t.Errorf("Filters dates = %q..%q", p.Filters.FromDate, p.Filters.ToDate)
	}
	if _, err := time.Parse(time.RFC3339, p.ExportedAt); err != nil {
		t.Errorf("ExportedAt %q is not RFC3339: %v", p.ExportedAt, err)
	}
	if len(p.Items) != 1 || p.Items[0].ID != "e1" {
		t.Errorf("Items = %+v", p.Items)
	}
}

func TestNewPayloadEmptyView(t *testing.T) {
	p := NewPayload(nil, journal.Query{})

	out, err := p.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if string(decoded["items"]) != "[]" {
		t.Errorf("items = %s, want [] rather than null", decoded["items"])
	}
	var filters map[string]string
	if err := json.Unmarshal(decoded["filters"], &filters); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"q", "sort", "fromDate", "toDate"} {
		if _, ok := filters[field]; !ok {
			t.Errorf("filters missing field %q", field)
		}
	}
}
