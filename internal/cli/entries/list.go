package entries

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/journal"
	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/stats"
	"github.com/arogowski/vitalog/internal/utils"
)

type ListCmd struct {
	cli.FilterFlags
	Limit int  `short:"l" help:"Show at most N entries." default:"0"`
	IDs   bool `help:"Include entry ids."`
}

var (
	veryHighText = color.New(color.FgRed, color.Bold).SprintFunc()
	highText     = color.New(color.FgRed).SprintFunc()
	elevatedText = color.New(color.FgYellow).SprintFunc()
	lowText      = color.New(color.FgBlue).SprintFunc()
	normalText   = color.New(color.FgGreen).SprintFunc()
)

func (c *ListCmd) Run(ctx *cli.Context) error {
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
	shown := view
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 40
	tbl.Separator = "  "
	if c.IDs {
		tbl.AddRow("ID", "WHEN", "BP", "PULSE", "WATER", "SEVERITY", "NOTES")
	} else {
		tbl.AddRow("WHEN", "BP", "PULSE", "WATER", "SEVERITY", "NOTES")
	}
	for _, e := range shown {
		row := []interface{}{
			whenCell(e), bpCell(e), numCell(e.Pulse),
			waterCell(e), severityCell(e), notesCell(e),
		}
		if c.IDs {
			row = append([]interface{}{e.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	fmt.Fprintln(color.Output, tbl)

	printAverages(view)
	if c.Limit > 0 && len(view) > c.Limit {
		fmt.Printf("(%d of %d entries shown)\n", len(shown), len(view))
	}
	return nil
}

func whenCell(e models.Entry) string {
	if at, ok := e.At(); ok {
		return utils.FormatWhen(at)
	}
	return e.RawTimestamp()
}

func bpCell(e models.Entry) string {
	class, ok := stats.ClassifyEntry(e)
	if !ok {
		return ""
	}
	text := fmt.Sprintf("%s/%s (%s)", numCell(e.Sys), numCell(e.Dia), class.Label())
	switch class {
	case stats.BPVeryHigh:
		return veryHighText(text)
	case stats.BPHigh:
		return highText(text)
	case stats.BPElevated:
		return elevatedText(text)
	case stats.BPLow:
		return lowText(text)
	default:
		return normalText(text)
	}
}

func numCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func waterCell(e models.Entry) string {
	eff := stats.EffectiveWaterMl(e)
	if eff <= 0 {
		return ""
	}
	return fmt.Sprintf("%d ml", eff)
}

func severityCell(e models.Entry) string {
	if e.Severity <= 0 {
		return ""
	}
	return fmt.Sprintf("%g (%s)", e.Severity, stats.ScaleLabel(e.Severity))
}

func notesCell(e models.Entry) string {
	parts := []string{}
	for _, s := range []string{e.Symptoms, e.Notes} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}

func printAverages(view []models.Entry) {
	avg := stats.ComputeAverages(view)
	parts := []string{}
	add := func(name string, v *float64) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s %.0f", name, *v))
		}
	}
	add("sys", avg.Sys)
	add("dia", avg.Dia)
	add("pulse", avg.Pulse)
	if len(parts) == 0 {
		return
	}
	line := "Averages: " + strings.Join(parts, ", ")
	if avg.Sys != nil && avg.Dia != nil {
		line += fmt.Sprintf(" [%s]", stats.ClassifyBP(*avg.Sys, *avg.Dia).Label())
	}
	fmt.Println(line)
}
