// Package meds manages the medication catalog: the set of medications
// offered when logging entries.
package meds

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/logger"
	"github.com/arogowski/vitalog/internal/models"
)

type AddCmd struct {
	Name        string `arg:"" help:"Medication display name."`
	ID          string `help:"Catalog id. Defaults to a slug of the name."`
	Dose        string `short:"d" help:"Dose description, e.g. '50mg'."`
	DefaultTime string `help:"Usual intake time (HH:MM)."`
	PRN         bool   `help:"Taken as needed rather than on schedule."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	id := c.ID
	if id == "" {
		id = slug(c.Name)
	}
	if id == "" {
		return fmt.Errorf("cannot derive an id from %q, pass --id", c.Name)
	}

	catalog, err := ctx.Store.Catalog()
	if err != nil {
		return err
	}
	for _, item := range catalog {
		if item.ID == id {
			return fmt.Errorf("medication %s already exists", id)
		}
	}

	catalog = append(catalog, models.MedicationCatalogItem{
		ID:          id,
		Name:        c.Name,
		Dose:        c.Dose,
		DefaultTime: c.DefaultTime,
		PRN:         c.PRN,
		Active:      true,
	})
	if err := ctx.Store.SaveCatalog(catalog); err != nil {
		return err
	}

	logger.Info("Added medication", "id", id)
	fmt.Printf("Added medication: %s (id: %s)\n", c.Name, id)
	return nil
}

type ListCmd struct {
	All bool `help:"Include disabled medications."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	catalog, err := ctx.Store.Catalog()
	if err != nil {
		return err
	}
	if !c.All {
		catalog = models.ActiveCatalog(catalog)
	}
	if len(catalog) == 0 {
		fmt.Println("No medications in the catalog.")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "DOSE", "TIME", "PRN", "ACTIVE")
	for _, item := range catalog {
		prn := ""
		if item.PRN {
			prn = "yes"
		}
		active := "yes"
		if !item.Active {
			active = "no"
		}
		tbl.AddRow(item.ID, item.Name, item.Dose, item.DefaultTime, prn, active)
	}
	fmt.Fprintln(color.Output, tbl)
	return nil
}

type EnableCmd struct {
	ID string `arg:"" help:"Medication id."`
}

func (c *EnableCmd) Run(ctx *cli.Context) error {
	return setActive(ctx, c.ID, true)
}

type DisableCmd struct {
	ID string `arg:"" help:"Medication id."`
}

func (c *DisableCmd) Run(ctx *cli.Context) error {
	return setActive(ctx, c.ID, false)
}

// setActive toggles offering without touching history: disabled meds stay
// resolvable by id in old entries.
func setActive(ctx *cli.Context, id string, active bool) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	catalog, err := ctx.Store.Catalog()
	if err != nil {
		return err
	}
	for i := range catalog {
		if catalog[i].ID == id {
			catalog[i].Active = active
			if err := ctx.Store.SaveCatalog(catalog); err != nil {
				return err
			}
			state := "enabled"
			if !active {
				state = "disabled"
			}
			fmt.Printf("Medication %s %s\n", id, state)
			return nil
		}
	}
	return fmt.Errorf("no medication with id %s", id)
}

func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "_")
}
