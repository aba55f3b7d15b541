// Package forecast turns flat 3-hour forecast samples into the day-grouped,
// timezone-correct structure the presentation layer binds to, and maps raw
// readings (condition codes, wind degrees, timestamps) to display values.
package forecast

import (
	"time"

	"github.com/raexp917/weather-app/internal/models"
)

// MaxDays caps the grouped output at the upstream forecast horizon.
const MaxDays = 5

const (
	dayKeyLayout   = "2006-01-02"
	dayLabelLayout = "Monday, 02 Jan"
)

// Group buckets samples by calendar day in the destination city's local time.
// When utcOffsetSeconds is nil the evaluating host's local zone is used
// instead; that is a documented fallback, not an error.
//
// Bucket order is the first-seen order of days, samples keep their input
// order, and both the label and the DateMillis identity are derived from the
// same local calendar day, so they cannot disagree near midnight. The first
// bucket starts expanded.
func Group(samples []models.ForecastSample, utcOffsetSeconds *int) []models.DayBucket {
	if len(samples) == 0 {
		return nil
	}

	zone := time.Local
	if utcOffsetSeconds != nil {
		zone = time.FixedZone("dest", *utcOffsetSeconds)
	}

	var buckets []models.DayBucket
	index := make(map[string]int)

	for _, s := range samples {
		local := time.Unix(s.Timestamp, 0).In(zone)
		key := local.Format(dayKeyLayout)

		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, models.DayBucket{
				DateMillis: localDayMillis(local),
				Label:      local.Format(dayLabelLayout),
				Expanded:   i == 0,
			})
		}
		buckets[i].Samples = append(buckets[i].Samples, s)
	}

	if len(buckets) > MaxDays {
		buckets = buckets[:MaxDays]
	}
	return buckets
}

// localDayMillis is the bucket identity: UTC midnight of the local calendar
// day, in epoch milliseconds.
func localDayMillis(local time.Time) int64 {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC).UnixMilli()
}
