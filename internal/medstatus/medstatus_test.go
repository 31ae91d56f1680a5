package medstatus

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		state      State
		multiplier float64
	}{
		{
			name:       "empty means no info",
			raw:        "",
			state:      None,
			multiplier: 0,
		},
		{
			name:       "whitespace only",
			raw:        "   ",
			state:      None,
			multiplier: 0,
		},
		{
			name:       "positive number",
			raw:        "2",
			state:      Taken,
			multiplier: 2,
		},
		{
			name:       "negative number",
			raw:        "-1",
			state:      Missed,
			multiplier: 1,
		},
		{
			name:       "zero",
			raw:        "0",
			state:      None,
			multiplier: 0,
		},
		{
			name:       "decimal comma",
			raw:        "0,5",
			state:      Taken,
			multiplier: 0.5,
		},
		{
			name:       "bare taken",
			raw:        "taken",
			state:      Taken,
			multiplier: 1,
		},
		{
			name:       "compound taken",
			raw:        "taken:3",
			state:      Taken,
			multiplier: 3,
		},
		{
			name:       "compound taken with bad suffix",
			raw:        "taken:x",
			state:      Taken,
			multiplier: 1,
		},
		{
			name:       "compound taken with non-positive suffix",
			raw:        "taken:-2",
			state:      Taken,
			multiplier: 1,
		},
		{
			name:       "missed",
			raw:        "missed",
			state:      Missed,
			multiplier: 1,
		},
		{
			name:       "late counts as missed",
			raw:        "late",
			state:      Missed,
			multiplier: 1,
		},
		{
			name:       "garbage means no info",
			raw:        "maybe later",
			state:      None,
			multiplier: 0,
		},
		{
			name:       "read path accepts magnitudes beyond the write clamp",
			raw:        "12",
			state:      Taken,
			multiplier: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.State != tt.state || got.Multiplier != tt.multiplier {
				t.Errorf("Parse(%q) = {%s %v}, want {%s %v}",
					tt.raw, got.State, got.Multiplier, tt.state, tt.multiplier)
			}
		})
	}
}

func TestClampSigned(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: -3, want: -1},
		{in: -1, want: -1},
		{in: 0, want: 0},
		{in: 2.5, want: 2.5},
		{in: 4, want: 4},
		{in: 9, want: 4},
	}
	for _, tt := range tests {
		if got := ClampSigned(tt.in); got != tt.want {
			t.Errorf("ClampSigned(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	// Legacy string encodings must survive a load/save cycle unchanged.
	var v Value
	if err := json.Unmarshal([]byte(`"late"`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if st := v.Status(); st.State != Missed || st.Multiplier != 1 {
		t.Errorf("Status() = %+v, want missed/1", st)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"late"` {
		t.Errorf("marshal = %s, want %q preserved", out, "late")
	}
}

func TestValueNumericDecode(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`-1`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if st := v.Status(); st.State != Missed || st.Multiplier != 1 {
		t.Errorf("Status() = %+v, want missed/1", st)
	}
}

func TestFromSignedClampsWrites(t *testing.T) {
	out, err := json.Marshal(FromSigned(7))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "4" {
		t.Errorf("marshal = %s, want clamped 4", out)
	}
	if FromSigned(0).IsZero() != true {
		t.Errorf("FromSigned(0) should carry no info")
	}
}
