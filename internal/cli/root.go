// Package cli holds the shared command context and the flag surfaces
// common to every view-producing command.
package cli

import (
	"fmt"
	"time"

	"github.com/arogowski/vitalog/internal/journal"
	"github.com/arogowski/vitalog/internal/storage"
	"github.com/arogowski/vitalog/internal/utils"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// FilterFlags is embedded by every command that operates on a filtered
// view of the journal.
type FilterFlags struct {
	Query string `short:"q" help:"Substring search over entry text."`
	From  string `help:"Start date (YYYY-MM-DD), inclusive."`
	To    string `help:"End date (YYYY-MM-DD), inclusive."`
	Today bool   `help:"Shortcut for a from/to range of today."`
	Days  int    `short:"n" help:"Shortcut for the last N calendar days ending today."`
	Type  string `help:"Match the legacy entry type tag."`
	Sort  string `help:"Order by timestamp." enum:"asc,desc" default:"desc"`
}

// BuildQuery translates the flag surface into a journal query. The range
// shortcuts are mutually exclusive with explicit dates.
func (f FilterFlags) BuildQuery() (journal.Query, error) {
	q := journal.Query{
		Text: f.Query,
		Type: f.Type,
		Sort: journal.Sort(f.Sort),
	}

	explicit := f.From != "" || f.To != ""
	if f.Today && f.Days > 0 {
		return q, fmt.Errorf("--today and --days are mutually exclusive")
	}
	if (f.Today || f.Days > 0) && explicit {
		return q, fmt.Errorf("range shortcuts cannot be combined with --from/--to")
	}

	switch {
	case f.Today:
		now := time.Now()
		q.From, q.To = &now, &now
	case f.Days > 0:
		from, to := utils.DaysBack(f.Days)
		q.From, q.To = &from, &to
	default:
		if f.From != "" {
			t, err := utils.ParseDateOnly(f.From)
			if err != nil {
				return q, err
			}
			q.From = &t
		}
		if f.To != "" {
			t, err := utils.ParseDateOnly(f.To)
			if err != nil {
				return q, err
			}
			q.To = &t
		}
	}

	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return q, fmt.Errorf("--to is before --from")
	}
	return q, nil
}
