package stats

import (
	"testing"

	"github.com/arogowski/vitalog/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestAverageExcludesZeroAndNegative(t *testing.T) {
	got := Average([]*float64{ptr(0), ptr(-5), ptr(120), ptr(130), nil})
	if got == nil {
		t.Fatal("Average() = no data, want 125")
	}
	if *got != 125 {
		t.Errorf("Average() = %v, want 125", *got)
	}
}

func TestAverageNoQualifyingValues(t *testing.T) {
	if got := Average([]*float64{nil, ptr(0), ptr(-1)}); got != nil {
		t.Errorf("Average() = %v, want no data", *got)
	}
	if got := Average(nil); got != nil {
		t.Errorf("Average(nil) = %v, want no data", *got)
	}
}

func TestComputeAverages(t *testing.T) {
	entries := []models.Entry{
		{Sys: ptr(120), Dia: ptr(80), Severity: 4},
		{Sys: ptr(130), Severity: 0},
		{Pulse: ptr(0)},
	}
	a := ComputeAverages(entries)
	if a.Sys == nil || *a.Sys != 125 {
		t.Errorf("Sys average wrong: %v", a.Sys)
	}
	if a.Dia == nil || *a.Dia != 80 {
		t.Errorf("Dia average wrong: %v", a.Dia)
	}
	if a.Pulse != nil {
		t.Errorf("Pulse average = %v, want no data (zero excluded)", *a.Pulse)
	}
	// Severity zeros are "none" sentinels and stay out of the mean.
	if a.Severity == nil || *a.Severity != 4 {
		t.Errorf("Severity average wrong: %v", a.Severity)
	}
}

func TestClassifyBPBoundaries(t *testing.T) {
	tests := []struct {
		sys, dia float64
		want     BPClass
	}{
		{sys: 180, dia: 79, want: BPVeryHigh},
		{sys: 179, dia: 120, want: BPVeryHigh},
		{sys: 140, dia: 60, want: BPHigh},
		{sys: 139, dia: 90, want: BPHigh},
		{sys: 139, dia: 89, want: BPElevated},
		{sys: 130, dia: 85, want: BPElevated},
		{sys: 129, dia: 84, want: BPNormal},
		{sys: 89, dia: 61, want: BPLow},
		{sys: 95, dia: 59, want: BPLow},
		{sys: 120, dia: 80, want: BPNormal},
	}
	for _, tt := range tests {
		if got := ClassifyBP(tt.sys, tt.dia); got != tt.want {
			t.Errorf("ClassifyBP(%v, %v) = %s, want %s", tt.sys, tt.dia, got, tt.want)
		}
	}
}

func TestClassifyEntryRequiresBothValues(t *testing.T) {
	if _, ok := ClassifyEntry(models.Entry{Sys: ptr(120)}); ok {
		t.Error("classification should be undefined without dia")
	}
	if _, ok := ClassifyEntry(models.Entry{Sys: ptr(120), Dia: ptr(0)}); ok {
		t.Error("zero dia counts as absent")
	}
	if c, ok := ClassifyEntry(models.Entry{Sys: ptr(120), Dia: ptr(80)}); !ok || c != BPNormal {
		t.Errorf("ClassifyEntry = %v/%v, want normal", c, ok)
	}
}

func TestScaleLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 0, want: "brak"},
		{v: 2, want: "minimalne"},
		{v: 4, want: "łagodne"},
		{v: 6, want: "wyraźne"},
		{v: 8, want: "silne"},
		{v: 10, want: "bardzo silne"},
	}
	for _, tt := range tests {
		if got := ScaleLabel(tt.v); got != tt.want {
			t.Errorf("ScaleLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
