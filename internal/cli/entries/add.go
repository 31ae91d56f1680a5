package entries

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/logger"
	"github.com/arogowski/vitalog/internal/medstatus"
	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/utils"
	"github.com/arogowski/vitalog/internal/validation"
)

type AddCmd struct {
	At        string `help:"Entry timestamp (YYYY-MM-DDTHH:MM or YYYY-MM-DD). Defaults to now."`
	Sys       string `help:"Systolic pressure."`
	Dia       string `help:"Diastolic pressure."`
	Pulse     string `help:"Pulse (bpm)."`
	Water     string `short:"w" help:"Drink volume in ml."`
	Hydration string `help:"Hydration multiplier for the logged drink."`

	Took     []string `short:"t" placeholder:"ID[=N]" help:"Medication taken, optionally with a dose count."`
	Missed   []string `short:"m" placeholder:"ID[=N]" help:"Medication missed."`
	MedNotes string   `help:"Free-text medication notes."`

	Food       string  `help:"Food notes."`
	Events     string  `help:"Events notes."`
	Sleep      string  `help:"Sleep notes."`
	Substances string  `help:"Substances notes."`
	Symptoms   string  `short:"s" help:"Symptoms."`
	Severity   float64 `help:"Symptom severity, 0-10." default:"0"`
	Anxiety    float64 `help:"Anxiety level, 0-10." default:"0"`
	Hypothesis string  `help:"Hypothesis notes."`
	Notes      string  `help:"General notes."`

	Interactive bool `short:"i" help:"Collect fields with an interactive form."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if c.Interactive {
		catalog, err := ctx.Store.Catalog()
		if err != nil {
			return err
		}
		if err := c.runForm(models.ActiveCatalog(catalog)); err != nil {
			return err
		}
	}

	dt, err := parseEntryTimestamp(c.At)
	if err != nil {
		return err
	}

	meds := map[string]medstatus.Value{}
	if err := parseMedSpecs(meds, c.Took, 1); err != nil {
		return err
	}
	if err := parseMedSpecs(meds, c.Missed, -1); err != nil {
		return err
	}

	entry := models.Entry{
		ID:          uuid.New().String(),
		CreatedAt:   utils.NowStamp(),
		DT:          dt,
		Sys:         models.ParseOptionalNumber(c.Sys),
		Dia:         models.ParseOptionalNumber(c.Dia),
		Pulse:       models.ParseOptionalNumber(c.Pulse),
		Medications: pruneMeds(meds),
		MedNotes:    models.CleanText(c.MedNotes),
		Food:        models.CleanText(c.Food),
		WaterMl:     models.ParseOptionalNumber(c.Water),
		Hydration:   models.ParseOptionalNumber(c.Hydration),
		Events:      models.CleanText(c.Events),
		Sleep:       models.CleanText(c.Sleep),
		Substances:  models.CleanText(c.Substances),
		Symptoms:    models.CleanText(c.Symptoms),
		Severity:    models.ClampScale(c.Severity),
		Anxiety:     models.ClampScale(c.Anxiety),
		Hypothesis:  models.CleanText(c.Hypothesis),
		Notes:       models.CleanText(c.Notes),
	}

	if result := validation.New().ValidateEntry(entry); result.HasProblems() {
		fmt.Println(result.FormatReport())
	}

	all, err := ctx.Store.Entries()
	if err != nil {
		return err
	}
	all = append(all, entry)
	if err := ctx.Store.SaveEntries(all); err != nil {
		return err
	}

	logger.Info("Added entry", "id", entry.ID, "dt", entry.DT)
	fmt.Printf("Added entry %s (%s)\n", entry.ID, entry.DT)
	return nil
}

// runForm collects entry fields interactively. Only active catalog
// medications are offered; anything else still goes in through the
// --took/--missed flags.
func (c *AddCmd) runForm(active []models.MedicationCatalogItem) error {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("When").
				Description("YYYY-MM-DDTHH:MM, empty for now").
				Value(&c.At).
				Validate(func(s string) error {
					_, err := parseEntryTimestamp(s)
					return err
				}),
			huh.NewInput().
				Title("Systolic").
				Value(&c.Sys),
			huh.NewInput().
				Title("Diastolic").
				Value(&c.Dia),
			huh.NewInput().
				Title("Pulse").
				Value(&c.Pulse),
		),
	}

	if len(active) > 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Medications taken").
				Options(medOptions(active)...).
				Value(&c.Took),
		))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Water (ml)").
			Value(&c.Water),
		huh.NewInput().
			Title("Hydration multiplier").
			Description("Empty for plain water").
			Value(&c.Hydration),
		huh.NewInput().
			Title("Symptoms").
			Value(&c.Symptoms),
		huh.NewText().
			Title("Notes").
			Value(&c.Notes),
	))

	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula()).Run()
}

func medOptions(active []models.MedicationCatalogItem) []huh.Option[string] {
	opts := make([]huh.Option[string], len(active))
	for i, item := range active {
		label := item.Name
		if item.Dose != "" {
			label += " (" + item.Dose + ")"
		}
		opts[i] = huh.NewOption(label, item.ID)
	}
	return opts
}
