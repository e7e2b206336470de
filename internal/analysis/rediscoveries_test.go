package analysis

import (
	"testing"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

func TestDetectRediscoveries(t *testing.T) {
	plays := []play.Play{
		// First listening period, early 2021.
		musicPlay(t, "2021-01-01T08:00:00Z", "The Strokes", "Reptilia", 20),
		musicPlay(t, "2021-01-06T08:00:00Z", "The Strokes", "Last Nite", 20),
		// Return a year later with plenty of renewed listening.
		musicPlay(t, "2022-01-10T08:00:00Z", "The Strokes", "Reptilia", 20),
		musicPlay(t, "2022-01-12T08:00:00Z", "The Strokes", "Someday", 20),
	}

	rediscoveries := DetectRediscoveries(plays, DefaultMinGapMonths)
	if len(rediscoveries) != 1 {
		t.Fatalf("got %d rediscoveries, want 1", len(rediscoveries))
	}
	r := rediscoveries[0]
	if r.ArtistName != "The Strokes" {
		t.Errorf("ArtistName = %q", r.ArtistName)
	}
	if r.GapMonths != 12 {
		t.Errorf("GapMonths = %d, want 12", r.GapMonths)
	}
	wantDate := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
	if !r.RediscoveryDate.Equal(wantDate) {
		t.Errorf("RediscoveryDate = %v, want %v", r.RediscoveryDate, wantDate)
	}
	wantEnd := time.Date(2021, 1, 6, 0, 0, 0, 0, time.UTC)
	if !r.PreviousPeriodEnd.Equal(wantEnd) {
		t.Errorf("PreviousPeriodEnd = %v, want %v", r.PreviousPeriodEnd, wantEnd)
	}
}

func TestDetectRediscoveriesGapTooShort(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2022-01-01T08:00:00Z", "A", "One", 20),
		// Three months later: below the default six-month bar.
		musicPlay(t, "2022-04-15T08:00:00Z", "A", "One", 60),
	}
	if got := DetectRediscoveries(plays, DefaultMinGapMonths); len(got) != 0 {
		t.Errorf("got %d rediscoveries for a 3-month gap", len(got))
	}
	// Lowering the bar surfaces it.
	if got := DetectRediscoveries(plays, 3); len(got) != 1 {
		t.Errorf("got %d rediscoveries with min gap 3, want 1", len(got))
	}
}

func TestDetectRediscoveriesNeedsRenewedListening(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2021-01-01T08:00:00Z", "A", "One", 60),
		// Comes back after a year but only for a few minutes.
		musicPlay(t, "2022-01-10T08:00:00Z", "A", "One", 5),
	}
	if got := DetectRediscoveries(plays, DefaultMinGapMonths); len(got) != 0 {
		t.Errorf("got %d rediscoveries with only 5 renewed minutes", len(got))
	}
}

func TestDetectRediscoveriesContinuousListening(t *testing.T) {
	// Plays every couple of weeks never split into periods.
	var plays []play.Play
	start := time.Date(2022, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		ts := start.AddDate(0, 0, i*14)
		plays = append(plays, musicPlay(t, ts.Format(time.RFC3339), "A", "One", 30))
	}
	if got := DetectRediscoveries(plays, DefaultMinGapMonths); len(got) != 0 {
		t.Errorf("got %d rediscoveries for continuous listening", len(got))
	}
}

func TestBuildPeriods(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2022-01-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2022-01-20T08:00:00Z", "A", "One", 10),
		// 60 days later: new period.
		musicPlay(t, "2022-03-21T08:00:00Z", "A", "One", 10),
	}
	periods := buildPeriods(plays)
	if len(periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(periods))
	}
	if !periods[0].end.Equal(time.Date(2022, 1, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first period end = %v", periods[0].end)
	}
	if !periods[1].start.Equal(time.Date(2022, 3, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second period start = %v", periods[1].start)
	}
}
