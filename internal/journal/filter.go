// Package journal narrows an entry collection into a filtered, sorted,
// searchable view. Everything here is pure: callers keep ownership of the
// input slice and always get a fresh one back.
package journal

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/utils"
)

type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// Query describes one view of the collection. From and To are calendar
// days; the bound covers the whole local day on each side. Type matches
// the legacy entry-type tag and is ignored when empty.
type Query struct {
	Text string
	From *time.Time
	To   *time.Time
	Type string
	Sort Sort
}

// Filter returns the entries matching q, sorted by logical timestamp.
// Entries without a parseable timestamp are dropped unconditionally; the
// sort is stable, so equal timestamps retain input order. The default
// sort is newest first.
func Filter(entries []models.Entry, q Query) []models.Entry {
	var fromTs, toTs *time.Time
	if q.From != nil {
		t := utils.StartOfDay(*q.From)
		fromTs = &t
	}
	if q.To != nil {
		t := utils.EndOfDay(*q.To)
		toTs = &t
	}

	needle := normalizeText(q.Text)

	type keyed struct {
		entry models.Entry
		at    time.Time
	}
	kept := make([]keyed, 0, len(entries))
	for _, e := range entries {
		at, ok := e.At()
		if !ok {
			continue
		}
		if fromTs != nil && at.Before(*fromTs) {
			continue
		}
		if toTs != nil && at.After(*toTs) {
			continue
		}
		if q.Type != "" && e.Type() != q.Type {
			continue
		}
		if needle != "" && !strings.Contains(searchBlob(e), needle) {
			continue
		}
		kept = append(kept, keyed{entry: e, at: at})
	}

	asc := q.Sort == SortAsc
	sort.SliceStable(kept, func(i, j int) bool {
		if asc {
			return kept[i].at.Before(kept[j].at)
		}
		return kept[j].at.Before(kept[i].at)
	})

	out := make([]models.Entry, len(kept))
	for i, k := range kept {
		out[i] = k.entry
	}
	return out
}

// searchBlob flattens every searchable field of an entry into one
// normalized string: the free-text fields, the serialized medication map,
// and the hydration numbers rendered as text.
func searchBlob(e models.Entry) string {
	medsText := ""
	if len(e.Medications) > 0 {
		if b, err := json.Marshal(e.Medications); err == nil {
			medsText = string(b)
		}
	}

	parts := []string{
		// Raw tag, not the defaulted Type(): untagged entries must not all
		// become searchable under the default tag text.
		e.EntryType,
		e.Food,
		optionalNumberText(e.WaterMl),
		optionalNumberText(e.Hydration),
		e.Events, e.Sleep, e.Substances,
		e.Symptoms, e.Hypothesis, e.Notes,
		e.MedNotes, medsText,
	}
	return normalizeText(strings.Join(parts, " | "))
}

func optionalNumberText(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
