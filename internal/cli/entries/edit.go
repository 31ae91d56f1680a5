package entries

import (
	"fmt"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/logger"
	"github.com/arogowski/vitalog/internal/medstatus"
	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/utils"
	"github.com/arogowski/vitalog/internal/validation"
)

// EditCmd updates fields of an existing entry. An unknown id does not
// fail: the entry is inserted as new, so edits are upserts.
type EditCmd struct {
	ID string `arg:"" help:"Entry id to edit."`

	At        string `help:"New timestamp (YYYY-MM-DDTHH:MM or YYYY-MM-DD)."`
	Sys       string `help:"Systolic pressure."`
	Dia       string `help:"Diastolic pressure."`
	Pulse     string `help:"Pulse (bpm)."`
	Water     string `short:"w" help:"Drink volume in ml."`
	Hydration string `help:"Hydration multiplier."`

	Took      []string `short:"t" placeholder:"ID[=N]" help:"Set a medication as taken."`
	Missed    []string `short:"m" placeholder:"ID[=N]" help:"Set a medication as missed."`
	ClearMeds []string `placeholder:"ID" help:"Remove a medication from the entry."`
	MedNotes  string   `help:"Medication notes."`

	Food       string `help:"Food notes."`
	Events     string `help:"Events notes."`
	Sleep      string `help:"Sleep notes."`
	Substances string `help:"Substances notes."`
	Symptoms   string `short:"s" help:"Symptoms."`
	Severity   string `help:"Symptom severity, 0-10."`
	Anxiety    string `help:"Anxiety level, 0-10."`
	Hypothesis string `help:"Hypothesis notes."`
	Notes      string `help:"General notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	all, err := ctx.Store.Entries()
	if err != nil {
		return err
	}

	idx := -1
	for i := range all {
		if all[i].ID == c.ID {
			idx = i
			break
		}
	}

	var entry models.Entry
	if idx >= 0 {
		entry = all[idx]
	} else {
		logger.Warn("Editing unknown entry id, inserting as new", "id", c.ID)
		fmt.Printf("No entry with id %s, inserting as new\n", c.ID)
		entry = models.Entry{
			ID:        c.ID,
			CreatedAt: utils.NowStamp(),
		}
	}

	if err := c.apply(&entry); err != nil {
		return err
	}
	if entry.RawTimestamp() == "" {
		dt, _ := parseEntryTimestamp("")
		entry.DT = dt
	}

	if result := validation.New().ValidateEntry(entry); result.HasProblems() {
		fmt.Println(result.FormatReport())
	}

	if idx >= 0 {
		all[idx] = entry
	} else {
		all = append(all, entry)
	}
	if err := ctx.Store.SaveEntries(all); err != nil {
		return err
	}

	fmt.Printf("Saved entry %s\n", entry.ID)
	return nil
}

func (c *EditCmd) apply(e *models.Entry) error {
	if c.At != "" {
		dt, err := parseEntryTimestamp(c.At)
		if err != nil {
			return err
		}
		e.DT = dt
	}

	setNum := func(dst **float64, raw string) {
		if raw != "" {
			*dst = models.ParseOptionalNumber(raw)
		}
	}
	setNum(&e.Sys, c.Sys)
	setNum(&e.Dia, c.Dia)
	setNum(&e.Pulse, c.Pulse)
	setNum(&e.WaterMl, c.Water)
	setNum(&e.Hydration, c.Hydration)

	if len(c.Took) > 0 || len(c.Missed) > 0 || len(c.ClearMeds) > 0 {
		if e.Medications == nil {
			e.Medications = map[string]medstatus.Value{}
		}
		if err := parseMedSpecs(e.Medications, c.Took, 1); err != nil {
			return err
		}
		if err := parseMedSpecs(e.Medications, c.Missed, -1); err != nil {
			return err
		}
		for _, id := range c.ClearMeds {
			delete(e.Medications, id)
		}
		e.Medications = pruneMeds(e.Medications)
	}

	setText := func(dst *string, raw string) {
		if raw != "" {
			*dst = models.CleanText(raw)
		}
	}
	setText(&e.MedNotes, c.MedNotes)
	setText(&e.Food, c.Food)
	setText(&e.Events, c.Events)
	setText(&e.Sleep, c.Sleep)
	setText(&e.Substances, c.Substances)
	setText(&e.Symptoms, c.Symptoms)
	setText(&e.Hypothesis, c.Hypothesis)
	setText(&e.Notes, c.Notes)

	if c.Severity != "" {
		if v := models.ParseOptionalNumber(c.Severity); v != nil {
			e.Severity = models.ClampScale(*v)
		} else {
			return fmt.Errorf("invalid severity %q", c.Severity)
		}
	}
	if c.Anxiety != "" {
		if v := models.ParseOptionalNumber(c.Anxiety); v != nil {
			e.Anxiety = models.ClampScale(*v)
		} else {
			return fmt.Errorf("invalid anxiety %q", c.Anxiety)
		}
	}
	return nil
}
