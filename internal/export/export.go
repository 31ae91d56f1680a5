package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/journal"
	"github.com/arogowski/vitalog/internal/models"
)

// Filters records the view that produced an export, so a payload is
// self-describing about what slice of the journal it contains.
type Filters struct {
	Query    string `json:"q"`
	Sort     string `json:"sort"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// Payload is the export envelope. App and Version identify the document
// lineage for import tooling; Scope marks that Items is the filtered
// view, not necessarily the whole journal.
type Payload struct {
	ExportedAt string         `json:"exportedAt"`
	App        string         `json:"app"`
	Version    int            `json:"version"`
	Scope      string         `json:"scope"`
	Filters    Filters        `json:"filters"`
	Items      []models.Entry `json:"items"`
}

// NewPayload wraps an already-filtered entry slice together with the
// query that produced it.
func NewPayload(items []models.Entry, q journal.Query) Payload {
	f := Filters{
		Query: q.Text,
		Sort:  string(q.Sort),
	}
	if q.From != nil {
		f.FromDate = q.From.Format(constants.DateFormat)
	}
	if q.To != nil {
		f.ToDate = q.To.Format(constants.DateFormat)
	}
	if items == nil {
		items = []models.Entry{}
	}
	return Payload{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		App:        constants.ExportAppID,
		Version:    constants.ExportSchemaVersion,
		Scope:      "current_view",
		Filters:    f,
		Items:      items,
	}
}

func (p Payload) JSON() (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export payload: %w", err)
	}
	return string(data), nil
}

// CopyToClipboard reports success as a boolean rather than an error:
// a missing clipboard is an expected condition on headless machines and
// the caller falls back to another sink.
func CopyToClipboard(text string) bool {
	if clipboard.Unsupported {
		return false
	}
	return clipboard.WriteAll(text) == nil
}

// WriteFile saves the payload text to the given path.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
