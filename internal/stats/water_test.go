package stats

import (
	"testing"

	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/utils"
)

func TestEffectiveWaterMl(t *testing.T) {
	tests := []struct {
		name  string
		entry models.Entry
		want  int
	}{
		{
			name:  "scaled by hydration",
			entry: models.Entry{WaterMl: ptr(500), Hydration: ptr(0.5)},
			want:  250,
		},
		{
			name:  "hydration defaults to 1",
			entry: models.Entry{WaterMl: ptr(330)},
			want:  330,
		},
		{
			name:  "zero volume",
			entry: models.Entry{WaterMl: ptr(0), Hydration: ptr(1)},
			want:  0,
		},
		{
			name:  "rounding",
			entry: models.Entry{WaterMl: ptr(333), Hydration: ptr(0.8)},
			want:  266,
		},
		{
			name:  "structured wins over legacy text",
			entry: models.Entry{WaterMl: ptr(200), FoodWater: "wypiłem 1 l"},
			want:  200,
		},
		{
			name:  "legacy fallback",
			entry: models.Entry{FoodWater: "rano 300 ml herbaty"},
			want:  300,
		},
		{
			name:  "nothing recorded",
			entry: models.Entry{},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveWaterMl(tt.entry); got != tt.want {
				t.Errorf("EffectiveWaterMl() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLegacyWaterMl(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "liters and glasses",
			text: "wypiłem 1 l i 2 szklanki",
			want: 1500,
		},
		{
			name: "milliliters",
			text: "300 ml wody, potem 200ml",
			want: 500,
		},
		{
			name: "decimal comma liters",
			text: "1,5 l wody",
			want: 1500,
		},
		{
			name: "english glasses",
			text: "3 glasses of water",
			want: 750,
		},
		{
			name: "case insensitive",
			text: "250 ML",
			want: 250,
		},
		{
			name: "no match",
			text: "obiad bez picia",
			want: 0,
		},
		{
			name: "empty",
			text: "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LegacyWaterMl(tt.text); got != tt.want {
				t.Errorf("LegacyWaterMl(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestWaterReportExplicitRange(t *testing.T) {
	entries := []models.Entry{
		{DT: "2024-01-01T10:00", WaterMl: ptr(1000)},
		{DT: "2024-01-02T10:00", WaterMl: ptr(500), Hydration: ptr(0.5)},
	}
	from, _ := utils.ParseDateOnly("2024-01-01")
	to, _ := utils.ParseDateOnly("2024-01-03")

	r := Water(entries, &from, &to, 2000)

	if r.TotalMl != 1250 {
		t.Errorf("TotalMl = %d, want 1250", r.TotalMl)
	}
	if r.DayCount != 3 {
		t.Errorf("DayCount = %d, want inclusive span of 3", r.DayCount)
	}
	if r.GoalMl != 6000 {
		t.Errorf("GoalMl = %d, want 6000", r.GoalMl)
	}
	if r.PercentGoal != 21 {
		t.Errorf("PercentGoal = %d, want 21", r.PercentGoal)
	}
}

func TestWaterReportDistinctDays(t *testing.T) {
	entries := []models.Entry{
		{DT: "2024-01-01T08:00", WaterMl: ptr(500)},
		{DT: "2024-01-01T18:00", WaterMl: ptr(500)},
		{DT: "2024-01-05T10:00", WaterMl: ptr(1000)},
	}

	r := Water(entries, nil, nil, 2000)

	if r.DayCount != 2 {
		t.Errorf("DayCount = %d, want 2 distinct days", r.DayCount)
	}
	if r.TotalMl != 2000 {
		t.Errorf("TotalMl = %d, want 2000", r.TotalMl)
	}
	if r.PerDayMl != 1000 {
		t.Errorf("PerDayMl = %d, want 1000", r.PerDayMl)
	}
}

func TestDailyWaterBuckets(t *testing.T) {
	entries := []models.Entry{
		{DT: "2024-01-02T08:00", WaterMl: ptr(300)},
		{DT: "2024-01-01T09:00", WaterMl: ptr(200)},
		{DT: "2024-01-02T18:00", WaterMl: ptr(400), Hydration: ptr(0.5)},
		{DT: "2024-01-03T10:00"}, // nothing to drink, day omitted
	}

	got := DailyWater(entries)

	want := []DailyBucket{
		{Day: "2024-01-01", Value: 200},
		{Day: "2024-01-02", Value: 500},
	}
	if len(got) != len(want) {
		t.Fatalf("DailyWater() = %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEntriesPerDay(t *testing.T) {
	entries := []models.Entry{
		{DT: "2024-01-01T08:00"},
		{DT: "2024-01-01T20:00"},
		{DT: "2024-01-03T10:00"},
		{DT: "bad"},
	}
	got := EntriesPerDay(entries)
	want := []DailyBucket{
		{Day: "2024-01-01", Value: 2},
		{Day: "2024-01-03", Value: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("EntriesPerDay() = %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
