package stats

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/utils"
)

// Volume expressions recognized in legacy free text: "300 ml", "1,5 l",
// and counted glasses in Polish or English.
var (
	mlPattern    = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*ml\b`)
	literPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*l\b`)
	glassPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:szklank(?:a|i|ę|ach)?|glass(?:es)?)\b`)
)

const glassMl = 250

// EffectiveWaterMl returns the entry's hydrating volume: the logged
// volume scaled by the drink's hydration multiplier, rounded. Entries
// predating the structured fields fall back to extracting volumes from
// the legacy free-text field; structured data always wins.
func EffectiveWaterMl(e models.Entry) int {
	if models.Positive(e.WaterMl) {
		eff := *e.WaterMl * e.HydrationFactor()
		if eff <= 0 {
			return 0
		}
		return int(math.Round(eff))
	}
	return LegacyWaterMl(e.FoodWater)
}

// LegacyWaterMl sums every volume expression found in free text. "l"
// counts a thousandfold, a glass counts 250 ml. Returns 0 when nothing
// matches.
func LegacyWaterMl(text string) int {
	if text == "" {
		return 0
	}
	var total float64
	for _, m := range mlPattern.FindAllStringSubmatch(text, -1) {
		if v, err := parseDecimal(m[1]); err == nil {
			total += v
		}
	}
	for _, m := range literPattern.FindAllStringSubmatch(text, -1) {
		if v, err := parseDecimal(m[1]); err == nil {
			total += v * 1000
		}
	}
	for _, m := range glassPattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil {
			total += float64(v) * glassMl
		}
	}
	if total <= 0 {
		return 0
	}
	return int(math.Round(total))
}

// WaterReport compares the view's total effective hydration against the
// daily target over the covered day span.
type WaterReport struct {
	TotalMl     int
	DayCount    int
	TargetMl    int // per day
	GoalMl      int // DayCount * TargetMl
	PerDayMl    int
	PercentGoal int
}

// Water builds a WaterReport for an already-filtered view. When an
// explicit date range is active the day count is its inclusive span;
// otherwise it is the number of distinct local calendar days present in
// the view.
func Water(entries []models.Entry, from, to *time.Time, targetMl int) WaterReport {
	total := 0
	for _, e := range entries {
		total += EffectiveWaterMl(e)
	}

	days := dayCount(entries, from, to)
	r := WaterReport{
		TotalMl:  total,
		DayCount: days,
		TargetMl: targetMl,
		GoalMl:   days * targetMl,
	}
	if days > 0 {
		r.PerDayMl = int(math.Round(float64(total) / float64(days)))
	}
	if r.GoalMl > 0 {
		r.PercentGoal = int(math.Round(float64(total) / float64(r.GoalMl) * 100))
	}
	return r
}

func dayCount(entries []models.Entry, from, to *time.Time) int {
	if from != nil && to != nil {
		span := utils.StartOfDay(*to).Sub(utils.StartOfDay(*from))
		days := int(math.Round(span.Hours()/24)) + 1
		if days < 1 {
			return 1
		}
		return days
	}
	seen := map[string]struct{}{}
	for _, e := range entries {
		if at, ok := e.At(); ok {
			seen[utils.DayKey(at)] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}

// DailyBucket is one calendar day's aggregate.
type DailyBucket struct {
	Day   string
	Value int
}

// DailyWater buckets effective hydration by local calendar day, sorted
// chronologically. Days without any hydrating volume are omitted.
func DailyWater(entries []models.Entry) []DailyBucket {
	byDay := map[string]int{}
	for _, e := range entries {
		at, ok := e.At()
		if !ok {
			continue
		}
		if eff := EffectiveWaterMl(e); eff > 0 {
			byDay[utils.DayKey(at)] += eff
		}
	}
	return sortBuckets(byDay)
}

// EntriesPerDay buckets entry counts by local calendar day.
func EntriesPerDay(entries []models.Entry) []DailyBucket {
	byDay := map[string]int{}
	for _, e := range entries {
		if at, ok := e.At(); ok {
			byDay[utils.DayKey(at)]++
		}
	}
	return sortBuckets(byDay)
}

func sortBuckets(byDay map[string]int) []DailyBucket {
	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]DailyBucket, len(days))
	for i, d := range days {
		out[i] = DailyBucket{Day: d, Value: byDay[d]}
	}
	return out
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
