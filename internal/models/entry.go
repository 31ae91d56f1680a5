package models

import (
	"time"

	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/medstatus"
)

// Entry is one journal record. Optional vitals use pointers: nil means
// "not recorded", which is distinct from zero everywhere downstream.
type Entry struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`

	// DT is the entry's logical timestamp. All filtering and sorting key
	// off this field, not CreatedAt.
	DT string `json:"dt"`

	// EntryType is a legacy tag that is no longer written but must stay
	// readable for collections touched by older versions.
	EntryType string `json:"entryType,omitempty"`

	Sys   *float64 `json:"sys,omitempty"`
	Dia   *float64 `json:"dia,omitempty"`
	Pulse *float64 `json:"pulse,omitempty"`

	Medications map[string]medstatus.Value `json:"medications,omitempty"`
	MedNotes    string                     `json:"medNotes,omitempty"`

	Food    string   `json:"food,omitempty"`
	WaterMl *float64 `json:"waterMl,omitempty"`
	// Hydration scales WaterMl to the effective hydrating volume. Missing
	// or non-finite reads as 1.
	Hydration *float64 `json:"hydration,omitempty"`

	Events     string `json:"events,omitempty"`
	Sleep      string `json:"sleep,omitempty"`
	Substances string `json:"substances,omitempty"`

	Symptoms   string  `json:"symptoms,omitempty"`
	Severity   float64 `json:"severity"`
	Anxiety    float64 `json:"anxiety"`
	Hypothesis string  `json:"hypothesis,omitempty"`
	Notes      string  `json:"notes,omitempty"`

	// Legacy fields carried through unchanged so older collections keep
	// their meaning on round-trip. DateTime and DatetimeLower are the
	// timestamp field names of earlier schema versions; FoodWater held
	// free text that may mention drink volumes.
	DateTime      string `json:"dateTime,omitempty"`
	DatetimeLower string `json:"datetime,omitempty"`
	FoodWater     string `json:"foodWater,omitempty"`
}

// timestampLayouts are tried in order when parsing an entry timestamp.
// Current entries are RFC 3339; older ones were written in the local
// minute-precision input format without a zone.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// RawTimestamp returns the first present timestamp field in the priority
// order used across schema versions: dt, dateTime, datetime, createdAt.
func (e Entry) RawTimestamp() string {
	for _, s := range []string{e.DT, e.DateTime, e.DatetimeLower, e.CreatedAt} {
		if s != "" {
			return s
		}
	}
	return ""
}

// At resolves the entry's logical timestamp in local time. ok is false
// when no timestamp field parses; such entries are excluded from any
// date-bounded or chronologically sorted view.
func (e Entry) At() (time.Time, bool) {
	raw := e.RawTimestamp()
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t.Local(), true
		}
	}
	return time.Time{}, false
}

// HydrationFactor returns the multiplier applied to WaterMl, defaulting
// to 1 when the field is missing or non-finite.
func (e Entry) HydrationFactor() float64 {
	if e.Hydration == nil || !isFinite(*e.Hydration) {
		return 1
	}
	return *e.Hydration
}

// Type returns the legacy entry type, assuming the historical default for
// untagged entries.
func (e Entry) Type() string {
	if e.EntryType == "" {
		return constants.DefaultEntryType
	}
	return e.EntryType
}
