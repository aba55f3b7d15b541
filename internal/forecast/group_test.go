package forecast

import (
	"reflect"
	"testing"
	"time"

	"github.com/raexp917/weather-app/internal/models"
)

func intPtr(v int) *int { return &v }

// samplesEvery3h builds n samples starting at start (UTC epoch seconds),
// spaced 3 hours apart, matching the upstream forecast granularity.
func samplesEvery3h(start int64, n int) []models.ForecastSample {
	out := make([]models.ForecastSample, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.ForecastSample{
			Timestamp: start + int64(i)*3*3600,
			Temp:      20 + float64(i%8),
			Condition: 800,
		})
	}
	return out
}

func TestGroupEmpty(t *testing.T) {
	t.Parallel()
	if got := Group(nil, intPtr(0)); len(got) != 0 {
		t.Fatalf("expected empty result, got %d buckets", len(got))
	}
}

func TestGroupBasicProperties(t *testing.T) {
	t.Parallel()

	// 40 samples = the full 5-day forecast window.
	start := time.Date(2023, 8, 28, 0, 0, 0, 0, time.UTC).Unix()
	samples := samplesEvery3h(start, 40)
	buckets := Group(samples, intPtr(7200))

	if len(buckets) > MaxDays {
		t.Fatalf("expected at most %d buckets, got %d", MaxDays, len(buckets))
	}
	if len(buckets) != 5 {
		t.Fatalf("expected exactly 5 buckets for 40 samples at +7200, got %d", len(buckets))
	}

	total := 0
	for i, b := range buckets {
		if len(b.Samples) == 0 {
			t.Errorf("bucket %d is empty", i)
		}
		total += len(b.Samples)
		for j := 1; j < len(b.Samples); j++ {
			if b.Samples[j].Timestamp < b.Samples[j-1].Timestamp {
				t.Errorf("bucket %d samples out of order at %d", i, j)
			}
		}
		if i > 0 && b.DateMillis <= buckets[i-1].DateMillis {
			t.Errorf("buckets not in chronological day order at %d", i)
		}
	}

	// With a +7200 offset the first two samples (00:00 and 03:00 UTC land on
	// 02:00 and 05:00 local of the start day) and the rest spill over; only
	// full truncation may drop samples, never mid-stream grouping.
	if total > len(samples) {
		t.Errorf("grouping duplicated samples: %d > %d", total, len(samples))
	}

	// First bucket label matches the first sample's local calendar day.
	first := time.Unix(samples[0].Timestamp, 0).In(time.FixedZone("dest", 7200))
	if want := first.Format("Monday, 02 Jan"); buckets[0].Label != want {
		t.Errorf("first label = %q, want %q", buckets[0].Label, want)
	}
	if !buckets[0].Expanded {
		t.Error("first bucket should start expanded")
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i].Expanded {
			t.Errorf("bucket %d should start collapsed", i)
		}
	}
}

func TestGroupMidnightBoundary(t *testing.T) {
	t.Parallel()

	// Local 23:59, then 3 hours later at local 02:59 the next day. Offset 0
	// keeps local == UTC so the boundary is explicit.
	late := time.Date(2023, 8, 28, 23, 59, 0, 0, time.UTC).Unix()
	samples := []models.ForecastSample{
		{Timestamp: late},
		{Timestamp: late + 3*3600},
	}

	buckets := Group(samples, intPtr(0))
	if len(buckets) != 2 {
		t.Fatalf("expected consecutive samples to split across 2 buckets, got %d", len(buckets))
	}
	if len(buckets[0].Samples) != 1 || len(buckets[1].Samples) != 1 {
		t.Errorf("expected one sample per bucket, got %d and %d",
			len(buckets[0].Samples), len(buckets[1].Samples))
	}
	if buckets[1].DateMillis-buckets[0].DateMillis != 24*3600*1000 {
		t.Errorf("buckets should be consecutive days, got millis %d and %d",
			buckets[0].DateMillis, buckets[1].DateMillis)
	}
}

func TestGroupOffsetSplitsDifferently(t *testing.T) {
	t.Parallel()

	// 22:00 UTC: still the same day at UTC, already the next day at +3h.
	ts := time.Date(2023, 8, 28, 22, 0, 0, 0, time.UTC).Unix()
	samples := []models.ForecastSample{
		{Timestamp: ts - 3*3600},
		{Timestamp: ts},
	}

	if got := Group(samples, intPtr(0)); len(got) != 1 {
		t.Errorf("at UTC both samples share a day, got %d buckets", len(got))
	}
	if got := Group(samples, intPtr(3*3600)); len(got) != 2 {
		t.Errorf("at +03:00 the samples straddle midnight, got %d buckets", len(got))
	}
}

func TestGroupIdentityMatchesLabelDay(t *testing.T) {
	t.Parallel()

	// 23:00 UTC at +7200 is 01:00 local the NEXT day; the identity must be
	// UTC midnight of that local day, not of the UTC day.
	ts := time.Date(2023, 8, 28, 23, 0, 0, 0, time.UTC)
	buckets := Group([]models.ForecastSample{{Timestamp: ts.Unix()}}, intPtr(7200))
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}

	wantDay := time.Date(2023, 8, 29, 0, 0, 0, 0, time.UTC).UnixMilli()
	if buckets[0].DateMillis != wantDay {
		t.Errorf("DateMillis = %d, want %d (midnight of local day)", buckets[0].DateMillis, wantDay)
	}
	if want := "Tuesday, 29 Aug"; buckets[0].Label != want {
		t.Errorf("label = %q, want %q", buckets[0].Label, want)
	}
}

func TestGroupIdempotent(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 8, 28, 6, 0, 0, 0, time.UTC).Unix()
	samples := samplesEvery3h(start, 24)

	a := Group(samples, intPtr(-14400))
	b := Group(samples, intPtr(-14400))
	if !reflect.DeepEqual(a, b) {
		t.Error("grouping the same input twice should be identical")
	}
}

func TestGroupTruncatesToFiveDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2023, 8, 28, 0, 0, 0, 0, time.UTC).Unix()
	samples := samplesEvery3h(start, 7*8) // a week of samples
	buckets := Group(samples, intPtr(0))

	if len(buckets) != MaxDays {
		t.Fatalf("expected truncation to %d buckets, got %d", MaxDays, len(buckets))
	}
}

func TestGroupNilOffsetUsesLocalZone(t *testing.T) {
	// Not parallel: relies on process-local zone being stable for the check.
	start := time.Date(2023, 8, 28, 12, 0, 0, 0, time.UTC).Unix()
	buckets := Group(samplesEvery3h(start, 2), nil)
	if len(buckets) == 0 {
		t.Fatal("expected buckets from fallback grouping")
	}

	local := time.Unix(start, 0).In(time.Local)
	if want := local.Format("Monday, 02 Jan"); buckets[0].Label != want {
		t.Errorf("label = %q, want device-local day %q", buckets[0].Label, want)
	}
}
