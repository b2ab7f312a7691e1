// Package forecast collapses the provider's 3-hourly forecast series into one
// representative sample per calendar day.
package forecast

import (
	"time"
)

// MaxDays caps the number of days in a daily forecast
const MaxDays = 5

// dayKeyLayout renders the en-US "month short, day numeric" form, e.g. "Jan 2"
const dayKeyLayout = "Jan 2"

// Sample is one forecast slot with its day bucket already computed
type Sample struct {
	Time        time.Time
	DayKey      string
	TempMin     float64
	TempMax     float64
	Description string
	Icon        string
}

// Daily is a chronological list of at most MaxDays samples, one per day key
type Daily []Sample

// DayKey truncates t to its calendar date in loc.
// The key carries no year, so it only distinguishes days within a short window.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dayKeyLayout)
}

// Aggregate keeps the first sample seen for each day key, in first-insertion
// order, and truncates the result to MaxDays. It never pads.
func Aggregate(samples []Sample) Daily {
	seen := make(map[string]struct{}, MaxDays)
	daily := make(Daily, 0, MaxDays)

	for _, sample := range samples {
		if len(daily) == MaxDays {
			break
		}
		if _, ok := seen[sample.DayKey]; ok {
			continue
		}
		seen[sample.DayKey] = struct{}{}
		daily = append(daily, sample)
	}

	return daily
}
