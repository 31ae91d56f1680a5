package stats

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arogowski/vitalog/internal/medstatus"
	"github.com/arogowski/vitalog/internal/models"
)

// MedTally accumulates taken and missed dose weights for one medication
// across a view. Weights come from the adherence multiplier, not a flat
// count per entry.
type MedTally struct {
	Taken  float64
	Missed float64
}

// MedicationTallies tallies adherence per medication id over a filtered
// view. Medications never logged in the view are absent from the result,
// not reported as zero.
func MedicationTallies(entries []models.Entry) map[string]MedTally {
	tallies := map[string]MedTally{}
	for _, e := range entries {
		for id, val := range e.Medications {
			st := val.Status()
			if st.State == medstatus.None {
				continue
			}
			t := tallies[id]
			switch st.State {
			case medstatus.Taken:
				t.Taken += st.Multiplier
			case medstatus.Missed:
				t.Missed += st.Multiplier
			}
			tallies[id] = t
		}
	}
	return tallies
}

// SortedMedIDs returns the tally keys in a stable display order.
func SortedMedIDs(tallies map[string]MedTally) []string {
	ids := make([]string, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var idTitler = cases.Title(language.Und)

// DisplayName resolves a medication id through the catalog, active or
// not. Ids with no catalog match get a best-effort human-readable form;
// this never fails, whatever the id looks like.
func DisplayName(catalog []models.MedicationCatalogItem, id string) string {
	for _, item := range catalog {
		if item.ID == id && item.Name != "" {
			return item.Name
		}
	}
	return humanizeID(id)
}

func humanizeID(id string) string {
	s := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(id)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return id
	}
	return idTitler.String(s)
}
