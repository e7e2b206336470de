package analysis

import (
	"testing"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

func TestTotalListeningHours(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 90),
		musicPlay(t, "2023-03-02T08:00:00Z", "A", "Two", 30),
	}
	if got := TotalListeningHours(plays); got != 2 {
		t.Errorf("TotalListeningHours = %d, want 2", got)
	}
	if got := TotalPlays(plays); got != 2 {
		t.Errorf("TotalPlays = %d, want 2", got)
	}
}

func TestGoldenYear(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2021-06-01T08:00:00Z", "A", "One", 100),
		musicPlay(t, "2022-06-01T08:00:00Z", "A", "Two", 300),
		musicPlay(t, "2023-06-01T08:00:00Z", "A", "Three", 200),
	}
	year, ok := GoldenYear(plays)
	if !ok {
		t.Fatal("GoldenYear found nothing")
	}
	if year != 2022 {
		t.Errorf("GoldenYear = %d, want 2022", year)
	}

	if _, ok := GoldenYear(nil); ok {
		t.Error("GoldenYear reported a year for no plays")
	}
}

func TestPeakDay(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2023-03-02T08:00:00Z", "A", "Two", 50),
		musicPlay(t, "2023-03-02T20:00:00Z", "A", "Three", 50),
	}
	day, ok := PeakDay(plays)
	if !ok {
		t.Fatal("PeakDay found nothing")
	}
	want := time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("PeakDay = %v, want %v", day, want)
	}
}

func TestCalculateStreaks(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2023-03-02T08:00:00Z", "A", "Two", 10),
		musicPlay(t, "2023-03-03T08:00:00Z", "A", "Three", 10),
		musicPlay(t, "2023-03-05T08:00:00Z", "A", "Four", 10),
	}
	now := time.Date(2023, 3, 6, 12, 0, 0, 0, time.UTC)

	streaks := CalculateStreaks(plays, now)
	if streaks.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", streaks.LongestStreak)
	}
	if streaks.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", streaks.CurrentStreak)
	}
	wantLast := time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC)
	if !streaks.LastListeningDate.Equal(wantLast) {
		t.Errorf("LastListeningDate = %v, want %v", streaks.LastListeningDate, wantLast)
	}
}

func TestCalculateStreaksStaleCurrentStreak(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2023-03-02T08:00:00Z", "A", "Two", 10),
	}
	// Last listening day is well in the past.
	now := time.Date(2023, 3, 10, 12, 0, 0, 0, time.UTC)

	streaks := CalculateStreaks(plays, now)
	if streaks.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", streaks.LongestStreak)
	}
	if streaks.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", streaks.CurrentStreak)
	}
}

func TestCalculateStreaksIgnoresSubMinuteDays(t *testing.T) {
	plays := []play.Play{
		musicPlay(t, "2023-03-01T08:00:00Z", "A", "One", 10),
		musicPlay(t, "2023-03-02T08:00:00Z", "A", "Blip", 0.5),
		musicPlay(t, "2023-03-03T08:00:00Z", "A", "Three", 10),
	}
	now := time.Date(2023, 3, 3, 12, 0, 0, 0, time.UTC)

	streaks := CalculateStreaks(plays, now)
	if streaks.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d, want 1 (middle day under a minute)", streaks.LongestStreak)
	}
	if streaks.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", streaks.CurrentStreak)
	}
}

func TestCalculateStreaksEmpty(t *testing.T) {
	streaks := CalculateStreaks(nil, time.Now())
	if streaks.LongestStreak != 0 || streaks.CurrentStreak != 0 {
		t.Errorf("streaks for no plays = %+v, want zeroes", streaks)
	}
}
