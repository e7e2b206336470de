package analysis

import (
	"testing"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

func TestTimeOfDayDataAlwaysHas24Entries(t *testing.T) {
	entries := TimeOfDayData(nil, MetricMinutes)
	if len(entries) != 24 {
		t.Fatalf("got %d entries, want 24", len(entries))
	}
	for i, e := range entries {
		if e.Hour != i {
			t.Errorf("entry %d has hour %d", i, e.Hour)
		}
		if e.Minutes != 0 {
			t.Errorf("hour %d has %d minutes with no plays", e.Hour, e.Minutes)
		}
	}

	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:15:00Z", "A", "One", 10),
		musicPlay(t, "2023-03-02T08:45:00Z", "A", "Two", 20),
	}
	entries = TimeOfDayData(plays, MetricMinutes)
	if entries[8].Minutes != 30 {
		t.Errorf("hour 8 = %d minutes, want 30", entries[8].Minutes)
	}
}

func TestMonthlyDataSorted(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-02-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2022-12-01T08:00:00Z", "A", "Two", 20),
		musicPlay(t, "2023-01-01T08:00:00Z", "A", "Three", 30),
	}
	entries := MonthlyData(plays, MetricMinutes)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Year != 2022 || entries[0].Month != 12 {
		t.Errorf("first entry = %d-%d, want 2022-12", entries[0].Year, entries[0].Month)
	}
	if entries[2].Year != 2023 || entries[2].Month != 2 {
		t.Errorf("last entry = %d-%d, want 2023-02", entries[2].Year, entries[2].Month)
	}
}

func TestDailyDataMonthFilter(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2023-03-15T08:00:00Z", "A", "Two", 20),
		musicPlay(t, "2023-04-01T08:00:00Z", "A", "Three", 30),
	}

	entries := DailyData(plays, 2023, 3, MetricMinutes)
	if len(entries) != 2 {
		t.Fatalf("filtered: got %d entries, want 2", len(entries))
	}

	entries = DailyData(plays, 0, 0, MetricMinutes)
	if len(entries) != 3 {
		t.Fatalf("unfiltered: got %d entries, want 3", len(entries))
	}
}

func TestPeakHour(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2023-03-01T22:00:00Z", "A", "Two", 50),
	}
	hour, ok := PeakHour(plays, MetricMinutes)
	if !ok || hour != 22 {
		t.Errorf("PeakHour = %d, %v, want 22", hour, ok)
	}
	if _, ok := PeakHour(nil, MetricMinutes); ok {
		t.Error("PeakHour reported an hour for no plays")
	}
}

func TestTimeOfDaySummary(t *testing.T) {
	if got := TimeOfDaySummary(nil, MetricMinutes); got != "No listening data" {
		t.Errorf("empty summary = %q", got)
	}

	single := []play.Play{
		musicPlay(t, "2023-03-01T21:00:00Z", "A", "One", 10),
	}
	if got := TimeOfDaySummary(single, MetricMinutes); got != "You mostly listen at 21:00." {
		t.Errorf("single hour summary = %q", got)
	}

	spread := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 50),
		musicPlay(t, "2023-03-01T12:00:00Z", "A", "Two", 40),
		musicPlay(t, "2023-03-01T21:00:00Z", "A", "Three", 30),
		musicPlay(t, "2023-03-01T03:00:00Z", "A", "Four", 1),
	}
	want := "You mostly listen between 08:00 and 21:00."
	if got := TimeOfDaySummary(spread, MetricMinutes); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}
