// Package report implements the read-only reporting commands: summary
// statistics, charts and the current-view export.
package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/journal"
	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	goalMet     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	goalBehind  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type StatsCmd struct {
	cli.FilterFlags
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	q, err := c.BuildQuery()
	if err != nil {
		return err
	}
	all, err := ctx.Store.Entries()
	if err != nil {
		return err
	}
	view := journal.Filter(all, q)
	if len(view) == 0 {
		fmt.Println("No entries match.")
		return nil
	}

	fmt.Printf("%s (%d entries)\n\n", headerStyle.Render("Summary"), len(view))
	printVitals(view)

	target, err := ctx.Store.WaterTargetMl()
	if err != nil {
		return err
	}
	printWater(stats.Water(view, q.From, q.To, target))

	catalog, err := ctx.Store.Catalog()
	if err != nil {
		return err
	}
	printMeds(view, catalog)
	return nil
}

func printVitals(view []models.Entry) {
	avg := stats.ComputeAverages(view)

	line := func(name string, v *float64, suffix string) {
		if v == nil {
			fmt.Printf("  %-10s no data\n", name)
			return
		}
		fmt.Printf("  %-10s %.1f%s\n", name, *v, suffix)
	}
	line("sys", avg.Sys, "")
	line("dia", avg.Dia, "")
	if avg.Sys != nil && avg.Dia != nil {
		fmt.Printf("  %-10s %s\n", "class", stats.ClassifyBP(*avg.Sys, *avg.Dia).Label())
	}
	line("pulse", avg.Pulse, "")
	if avg.Severity != nil {
		fmt.Printf("  %-10s %.1f (%s)\n", "severity", *avg.Severity, stats.ScaleLabel(*avg.Severity))
	}
	if avg.Anxiety != nil {
		fmt.Printf("  %-10s %.1f (%s)\n", "anxiety", *avg.Anxiety, stats.ScaleLabel(*avg.Anxiety))
	}
	fmt.Println()
}

func printWater(r stats.WaterReport) {
	fmt.Println(headerStyle.Render("Water"))
	fmt.Printf("  total      %d ml over %d day(s)\n", r.TotalMl, r.DayCount)
	fmt.Printf("  per day    %d ml (target %d ml)\n", r.PerDayMl, r.TargetMl)

	goalLine := fmt.Sprintf("  goal       %d%% of %d ml", r.PercentGoal, r.GoalMl)
	if r.PercentGoal >= 100 {
		fmt.Println(goalMet.Render(goalLine))
	} else {
		fmt.Println(goalBehind.Render(goalLine))
	}
	fmt.Println()
}

func printMeds(view []models.Entry, catalog []models.MedicationCatalogItem) {
	tallies := stats.MedicationTallies(view)
	if len(tallies) == 0 {
		return
	}

	fmt.Println(headerStyle.Render("Medications"))
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("MEDICATION", "TAKEN", "MISSED")
	for _, id := range stats.SortedMedIDs(tallies) {
		t := tallies[id]
		tbl.AddRow(stats.DisplayName(catalog, id), formatDose(t.Taken), formatDose(t.Missed))
	}
	fmt.Fprintln(color.Output, tbl)
}

func formatDose(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%g", v)
}
