package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/journal"
	"github.com/arogowski/vitalog/internal/stats"
)

const barWidth = 40

var (
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type SeriesCmd struct {
	cli.FilterFlags
	Metrics []string `short:"M" help:"Metrics to chart." enum:"sys,dia,pulse,severity,anxiety" default:"sys,dia,pulse"`
	Rolling int      `short:"r" help:"Add a trailing rolling average over N points." default:"0"`
	Water   bool     `help:"Chart daily effective water against the target instead."`
	Counts  bool     `help:"Chart entries per day instead."`
}

func (c *SeriesCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	q, err := c.BuildQuery()
	if err != nil {
		return err
	}
	// Charts always read left to right in time.
	q.Sort = journal.SortAsc

	all, err := ctx.Store.Entries()
	if err != nil {
		return err
	}
	view := journal.Filter(all, q)
	if len(view) == 0 {
		fmt.Println("No entries match.")
		return nil
	}

	if c.Water {
		target, err := ctx.Store.WaterTargetMl()
		if err != nil {
			return err
		}
		renderDaily("Daily water (ml)", stats.DailyWater(view), target)
		return nil
	}
	if c.Counts {
		renderDaily("Entries per day", stats.EntriesPerDay(view), 0)
		return nil
	}

	metrics := make([]stats.Metric, len(c.Metrics))
	for i, m := range c.Metrics {
		metrics[i] = stats.Metric(m)
	}
	frame := stats.BuildFrame(view, metrics...)
	for _, s := range frame.Series {
		renderSeries(frame.Labels, s, c.Rolling)
	}
	return nil
}

func renderSeries(labels []string, s stats.Series, rolling int) {
	fmt.Println(headerStyle.Render(string(s.Metric)))
	if !s.Renderable() {
		fmt.Println("  Not enough data points to chart (need at least 2).")
		fmt.Println()
		return
	}

	n := s.DrawableLen()
	values := s.Values[:n]
	var smoothed []*float64
	if rolling > 1 {
		smoothed = stats.RollingAverage(values, rolling)
	}

	min, max := seriesRange(values)
	for i, v := range values {
		label := fmt.Sprintf("%-12s", labels[i])
		if v == nil {
			fmt.Printf("  %s %s\n", label, dimStyle.Render("·"))
			continue
		}
		line := fmt.Sprintf("  %s %s %g", label, bar(*v, min, max), *v)
		if smoothed != nil && smoothed[i] != nil {
			line += dimStyle.Render(fmt.Sprintf("  (avg %.1f)", *smoothed[i]))
		}
		fmt.Println(line)
	}
	fmt.Println()
}

func renderDaily(title string, buckets []stats.DailyBucket, target int) {
	fmt.Println(headerStyle.Render(title))
	if len(buckets) == 0 {
		fmt.Println("  No data.")
		return
	}

	max := target
	for _, b := range buckets {
		if b.Value > max {
			max = b.Value
		}
	}
	for _, b := range buckets {
		line := fmt.Sprintf("  %s %s %d", b.Day, bar(float64(b.Value), 0, float64(max)), b.Value)
		if target > 0 && b.Value >= target {
			line += goalMet.Render(" ✓")
		}
		fmt.Println(line)
	}
	if target > 0 {
		fmt.Println(targetStyle.Render(fmt.Sprintf("  target: %d ml/day", target)))
	}
	fmt.Println()
}

// bar scales v into a fixed-width block bar. The scale floor sits a bit
// below the series minimum so small variations stay visible.
func bar(v, min, max float64) string {
	if max <= min {
		return barStyle.Render(strings.Repeat("█", barWidth/2))
	}
	frac := (v - min) / (max - min)
	n := int(math.Round(frac * float64(barWidth)))
	if n < 1 {
		n = 1
	}
	return barStyle.Render(strings.Repeat("█", n))
}

func seriesRange(values []*float64) (min, max float64) {
	first := true
	for _, v := range values {
		if v == nil {
			continue
		}
		if first {
			min, max = *v, *v
			first = false
			continue
		}
		if *v < min {
			min = *v
		}
		if *v > max {
			max = *v
		}
	}
	// Leave headroom below the minimum so the shortest bar is not empty.
	span := max - min
	if span == 0 {
		span = 1
	}
	min -= span * 0.1
	return min, max
}
