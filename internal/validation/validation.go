package validation

import (
	"fmt"
	"strings"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/models"
)

type ProblemType string

const (
	ProblemBadTimestamp    ProblemType = "bad_timestamp"
	ProblemNonPositive     ProblemType = "non_positive_reading"
	ProblemScaleOutOfRange ProblemType = "scale_out_of_range"
	ProblemImplausible     ProblemType = "implausible_reading"
)

type Problem struct {
	Type    ProblemType
	Field   string
	Message string
}

type Result struct {
	Problems []Problem
}

func (r Result) HasProblems() bool {
	return len(r.Problems) > 0
}

func (r Result) FormatReport() string {
	if !r.HasProblems() {
		return "No problems found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d problem(s):\n", len(r.Problems))
	for _, p := range r.Problems {
		fmt.Fprintf(&b, "  - [%s] %s: %s\n", p.Type, p.Field, p.Message)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Plausibility ceilings. Readings above these are almost certainly typos
// (a systolic of 1200 from a missed decimal point) and worth flagging,
// though nothing refuses to store them.
const (
	maxPlausibleBP    = 400
	maxPlausiblePulse = 300
	maxPlausibleWater = 20000
)

// ValidateEntry checks a single entry. Problems are advisory: the
// journal keeps whatever the user wrote, the report just points at
// fields that look wrong.
func (v *Validator) ValidateEntry(e models.Entry) Result {
	var problems []Problem

	if raw := e.RawTimestamp(); raw != "" {
		if _, ok := e.At(); !ok {
			problems = append(problems, Problem{
				Type:    ProblemBadTimestamp,
				Field:   "dt",
				Message: fmt.Sprintf("%q is not a recognized timestamp", raw),
			})
		}
	}

	checkVital := func(field string, val *float64, max float64) {
		if val == nil {
			return
		}
		if *val <= 0 {
			problems = append(problems, Problem{
				Type:    ProblemNonPositive,
				Field:   field,
				Message: fmt.Sprintf("%g is not a positive reading and will be ignored by summaries", *val),
			})
			return
		}
		if *val > max {
			problems = append(problems, Problem{
				Type:    ProblemImplausible,
				Field:   field,
				Message: fmt.Sprintf("%g looks like a typo", *val),
			})
		}
	}
	checkVital("sys", e.Sys, maxPlausibleBP)
	checkVital("dia", e.Dia, maxPlausibleBP)
	checkVital("pulse", e.Pulse, maxPlausiblePulse)
	checkVital("waterMl", e.WaterMl, maxPlausibleWater)

	checkScale := func(field string, val float64) {
		if val < constants.ScaleMin || val > constants.ScaleMax {
			problems = append(problems, Problem{
				Type:    ProblemScaleOutOfRange,
				Field:   field,
				Message: fmt.Sprintf("%g is outside the %d-%d scale", val, constants.ScaleMin, constants.ScaleMax),
			})
		}
	}
	checkScale("severity", e.Severity)
	checkScale("anxiety", e.Anxiety)

	return Result{Problems: problems}
}

// ValidateEntries runs ValidateEntry over a collection, prefixing each
// problem field with the entry id so the report stays actionable.
func (v *Validator) ValidateEntries(entries []models.Entry) Result {
	var all []Problem
	for _, e := range entries {
		r := v.ValidateEntry(e)
		for _, p := range r.Problems {
			p.Field = fmt.Sprintf("%s.%s", e.ID, p.Field)
			all = append(all, p)
		}
	}
	return Result{Problems: all}
}
