// Package entries implements the add/edit/delete/list commands operating
// on the journal entry collection.
package entries

import (
	"fmt"
	"strings"
	"time"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/medstatus"
	"github.com/arogowski/vitalog/internal/models"
)

// parseMedSpecs turns "id" / "id=N" flag values into adherence values.
// sign is +1 for taken doses and -1 for missed ones.
func parseMedSpecs(meds map[string]medstatus.Value, specs []string, sign float64) error {
	for _, spec := range specs {
		id, mult := spec, 1.0
		if i := strings.Index(spec, "="); i >= 0 {
			id = spec[:i]
			v := models.ParseOptionalNumber(spec[i+1:])
			if v == nil || *v <= 0 {
				return fmt.Errorf("invalid dose count in %q", spec)
			}
			mult = *v
		}
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("missing medication id in %q", spec)
		}
		meds[id] = medstatus.FromSigned(sign * mult)
	}
	return nil
}

// pruneMeds drops no-info values; absence is the preferred encoding.
func pruneMeds(meds map[string]medstatus.Value) map[string]medstatus.Value {
	for id, v := range meds {
		if v.IsZero() {
			delete(meds, id)
		}
	}
	if len(meds) == 0 {
		return nil
	}
	return meds
}

// parseEntryTimestamp validates a --at flag value, accepting a minute
// timestamp or a bare date. Empty means now.
func parseEntryTimestamp(s string) (string, error) {
	if s == "" {
		return time.Now().Format(constants.DateTimeFormat), nil
	}
	for _, layout := range []string{constants.DateTimeFormat, constants.DateFormat} {
		if _, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid timestamp %q, use YYYY-MM-DDTHH:MM or YYYY-MM-DD", s)
}
