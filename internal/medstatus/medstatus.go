// Package medstatus normalizes per-medication adherence values. Three
// historical encodings coexist in one collection: a string enum
// ("taken"/"missed"/"late"), a signed dose multiplier, and a compound
// "taken:<n>" string. All of them decode into a single Status; only the
// signed-multiplier encoding is ever written for new values.
package medstatus

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type State string

const (
	Taken  State = "taken"
	Missed State = "missed"
	None   State = "none"
)

// Status is the normalized form of one adherence value. Multiplier is the
// dose weight, always >= 0; the sign lives in State.
type Status struct {
	State      State
	Multiplier float64
}

const (
	// MinSigned and MaxSigned bound the signed multiplier on the write
	// path. The read path deliberately accepts any magnitude so that
	// values written by older versions keep their meaning.
	MinSigned = -1
	MaxSigned = 4
)

// Parse interprets a raw adherence value. Rules, in order: empty means no
// info; a finite number (or numeric string) is a signed multiplier; a
// "taken" prefix optionally followed by ":<n>" is taken with weight n
// (falling back to 1); "missed" and "late" count as one missed dose;
// anything else means no info.
func Parse(raw string) Status {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Status{State: None, Multiplier: 0}
	}

	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return fromSigned(v)
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "taken") {
		rest := strings.TrimPrefix(lower, "taken")
		if n, ok := strings.CutPrefix(rest, ":"); ok {
			if v, err := strconv.ParseFloat(n, 64); err == nil && v > 0 && !math.IsInf(v, 0) {
				return Status{State: Taken, Multiplier: v}
			}
		}
		return Status{State: Taken, Multiplier: 1}
	}
	if lower == "missed" || lower == "late" {
		return Status{State: Missed, Multiplier: 1}
	}

	return Status{State: None, Multiplier: 0}
}

func fromSigned(v float64) Status {
	switch {
	case v > 0:
		return Status{State: Taken, Multiplier: v}
	case v < 0:
		return Status{State: Missed, Multiplier: -v}
	default:
		return Status{State: None, Multiplier: 0}
	}
}

// Signed returns the signed-multiplier form: positive for taken, negative
// for missed, zero for no info.
func (s Status) Signed() float64 {
	switch s.State {
	case Taken:
		return s.Multiplier
	case Missed:
		return -s.Multiplier
	default:
		return 0
	}
}

// ClampSigned bounds a signed multiplier to the range the write path
// produces.
func ClampSigned(v float64) float64 {
	if v < MinSigned {
		return MinSigned
	}
	if v > MaxSigned {
		return MaxSigned
	}
	return v
}

// Value is one medication's adherence value exactly as persisted. It
// round-trips legacy encodings untouched; values created by this version
// are stored as clamped signed multipliers.
type Value struct {
	num *float64
	str string
}

// FromSigned builds a Value in the current write encoding.
func FromSigned(v float64) Value {
	n := ClampSigned(v)
	return Value{num: &n}
}

// FromRaw builds a Value carrying a legacy string encoding verbatim.
func FromRaw(s string) Value {
	return Value{str: s}
}

// Status normalizes the value through the codec.
func (v Value) Status() Status {
	if v.num != nil {
		return fromSigned(*v.num)
	}
	return Parse(v.str)
}

// IsZero reports whether the value carries no information. Such values
// are omitted from the medication map on write; absence is the preferred
// encoding for "no info".
func (v Value) IsZero() bool {
	return v.Status().State == None
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.num != nil {
		return json.Marshal(*v.num)
	}
	return json.Marshal(v.str)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.num = &n
		v.str = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.num = nil
		v.str = s
		return nil
	}
	// Unknown shape reads as "no info" rather than failing the whole
	// collection.
	v.num = nil
	v.str = ""
	return nil
}
