package stats

import (
	"github.com/arogowski/vitalog/internal/models"
	"github.com/arogowski/vitalog/internal/utils"
)

// Metric names one numeric series extractable from an entry.
type Metric string

const (
	MetricSys      Metric = "sys"
	MetricDia      Metric = "dia"
	MetricPulse    Metric = "pulse"
	MetricSeverity Metric = "severity"
	MetricAnxiety  Metric = "anxiety"
)

// Series is one metric over a view. Values is index-aligned with the
// frame's labels; nil marks an entry with no value for this metric.
// Missing values are never interpolated or coerced to zero.
type Series struct {
	Metric Metric
	Values []*float64
}

// PointCount returns the number of present values.
func (s Series) PointCount() int {
	n := 0
	for _, v := range s.Values {
		if v != nil {
			n++
		}
	}
	return n
}

// DrawableLen returns the length of the prefix worth rendering as a
// connected line: everything up to the last present value. Trailing
// missing values are truncated, not drawn as zero.
func (s Series) DrawableLen() int {
	for i := len(s.Values) - 1; i >= 0; i-- {
		if s.Values[i] != nil {
			return i + 1
		}
	}
	return 0
}

// Renderable reports whether the series has enough data to draw a line.
// A single point is not a line; callers must say so instead of rendering
// nothing.
func (s Series) Renderable() bool {
	return s.PointCount() >= 2
}

// Frame is a set of series sharing one time axis. Entry i maps to
// Labels[i] and to Values[i] of every series, so multiple metrics plot
// against the same axis.
type Frame struct {
	Labels []string
	Series []Series
}

// BuildFrame extracts the requested metrics from a chronologically
// ascending view.
func BuildFrame(entries []models.Entry, metrics ...Metric) Frame {
	f := Frame{
		Labels: make([]string, len(entries)),
		Series: make([]Series, len(metrics)),
	}
	for i := range metrics {
		f.Series[i] = Series{
			Metric: metrics[i],
			Values: make([]*float64, len(entries)),
		}
	}
	for i, e := range entries {
		if at, ok := e.At(); ok {
			f.Labels[i] = utils.FormatShortStamp(at)
		} else {
			f.Labels[i] = e.RawTimestamp()
		}
		for j, m := range metrics {
			f.Series[j].Values[i] = metricValue(e, m)
		}
	}
	return f
}

func metricValue(e models.Entry, m Metric) *float64 {
	switch m {
	case MetricSys:
		return positiveOrNil(e.Sys)
	case MetricDia:
		return positiveOrNil(e.Dia)
	case MetricPulse:
		return positiveOrNil(e.Pulse)
	case MetricSeverity:
		v := e.Severity
		return &v
	case MetricAnxiety:
		v := e.Anxiety
		return &v
	default:
		return nil
	}
}

func positiveOrNil(v *float64) *float64 {
	if !models.Positive(v) {
		return nil
	}
	out := *v
	return &out
}

// RollingAverage smooths a series with a trailing window mean. Each
// output index averages the present values among the window ending
// there; an all-missing window stays missing.
func RollingAverage(values []*float64, window int) []*float64 {
	if window < 1 {
		window = 1
	}
	out := make([]*float64, len(values))
	for i := range values {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		var sum float64
		var n int
		for _, v := range values[lo : i+1] {
			if v != nil {
				sum += *v
				n++
			}
		}
		if n > 0 {
			avg := sum / float64(n)
			out[i] = &avg
		}
	}
	return out
}
