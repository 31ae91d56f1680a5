// Package stats derives summary statistics and chartable series from a
// filtered entry view. Every function is a pure computation: list in,
// value out, no data retained across calls.
package stats

import (
	"github.com/arogowski/vitalog/internal/models"
)

// Average computes the mean of the qualifying values: present, finite and
// strictly positive. Zero and negative readings are sentinel values for
// "not recorded" and never dilute the mean. nil means no data at all,
// which is not the same thing as zero.
func Average(values []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if models.Positive(v) {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// Averages holds the per-field means over one view. A nil field means the
// view contained no qualifying readings for it.
type Averages struct {
	Sys      *float64
	Dia      *float64
	Pulse    *float64
	Severity *float64
	Anxiety  *float64
}

func ComputeAverages(entries []models.Entry) Averages {
	n := len(entries)
	sys := make([]*float64, 0, n)
	dia := make([]*float64, 0, n)
	pulse := make([]*float64, 0, n)
	sev := make([]*float64, 0, n)
	anx := make([]*float64, 0, n)
	for _, e := range entries {
		sys = append(sys, e.Sys)
		dia = append(dia, e.Dia)
		pulse = append(pulse, e.Pulse)
		s, a := e.Severity, e.Anxiety
		sev = append(sev, &s)
		anx = append(anx, &a)
	}
	return Averages{
		Sys:      Average(sys),
		Dia:      Average(dia),
		Pulse:    Average(pulse),
		Severity: Average(sev),
		Anxiety:  Average(anx),
	}
}

// BPClass is a blood-pressure severity band.
type BPClass string

const (
	BPVeryHigh BPClass = "very_high"
	BPHigh     BPClass = "high"
	BPElevated BPClass = "elevated"
	BPLow      BPClass = "low"
	BPNormal   BPClass = "normal"
)

// Label returns the display label for the band. The journal ships with
// the Polish labels of the original application.
func (c BPClass) Label() string {
	switch c {
	case BPVeryHigh:
		return "bardzo wysokie"
	case BPHigh:
		return "wysokie"
	case BPElevated:
		return "podwyższone"
	case BPLow:
		return "niskie"
	default:
		return "OK"
	}
}

// ClassifyBP places a reading into a severity band. The thresholds are
// evaluated in this exact order; the first match wins.
func ClassifyBP(sys, dia float64) BPClass {
	switch {
	case sys >= 180 || dia >= 120:
		return BPVeryHigh
	case sys >= 140 || dia >= 90:
		return BPHigh
	case sys >= 130 || dia >= 85:
		return BPElevated
	case sys < 90 || dia < 60:
		return BPLow
	default:
		return BPNormal
	}
}

// ClassifyEntry classifies an entry's reading. ok is false when either
// value is absent; classification is undefined without both.
func ClassifyEntry(e models.Entry) (BPClass, bool) {
	if !models.Positive(e.Sys) || !models.Positive(e.Dia) {
		return "", false
	}
	return ClassifyBP(*e.Sys, *e.Dia), true
}

// ScaleLabel maps a 0-10 intensity value to its display label.
func ScaleLabel(v float64) string {
	switch {
	case v <= 0:
		return "brak"
	case v <= 2:
		return "minimalne"
	case v <= 4:
		return "łagodne"
	case v <= 6:
		return "wyraźne"
	case v <= 8:
		return "silne"
	default:
		return "bardzo silne"
	}
}
