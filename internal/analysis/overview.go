package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// TotalListeningHours returns total listening time rounded to hours.
func TotalListeningHours(plays []play.Play) int {
	var totalMs int64
	for _, p := range plays {
		totalMs += p.MsPlayed
	}
	return int(math.Round(float64(totalMs) / 60000 / 60))
}

func TotalPlays(plays []play.Play) int {
	return len(plays)
}

// GoldenYear returns the year with the most listening minutes.
func GoldenYear(plays []play.Play) (int, bool) {
	yearly := ByYear(plays, MetricMinutes)
	if len(yearly) == 0 {
		return 0, false
	}
	var bestYear int
	var bestMinutes float64
	for year, minutes := range yearly {
		if minutes > bestMinutes {
			bestMinutes = minutes
			bestYear = year
		}
	}
	return bestYear, true
}

// PeakDay returns the single day with the most listening minutes.
func PeakDay(plays []play.Play) (time.Time, bool) {
	daily := ByDay(plays, MetricMinutes)
	if len(daily) == 0 {
		return time.Time{}, false
	}
	var bestDay string
	var bestMinutes float64
	for day, minutes := range daily {
		if minutes > bestMinutes {
			bestMinutes = minutes
			bestDay = day
		}
	}
	day, _ := time.Parse(dayFormat, bestDay)
	return day, true
}

// CalculateStreaks finds the longest run of consecutive listening days
// and the run ending at the most recent one. A listening day is any
// calendar day with at least one aggregated minute. The current streak
// only counts if the last listening day is today or yesterday relative
// to now, which callers inject so tests can pin it.
func CalculateStreaks(plays []play.Play, now time.Time) StreakData {
	daily := ByDay(plays, MetricMinutes)

	var days []string
	for day, minutes := range daily {
		if minutes >= 1 {
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return StreakData{}
	}
	sort.Strings(days)

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if dayDiff(days[i-1], days[i]) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	last, _ := time.Parse(dayFormat, days[len(days)-1])
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sinceLast := int(today.Sub(last).Hours() / 24)

	current := 0
	if sinceLast <= 1 {
		current = 1
		for i := len(days) - 2; i >= 0; i-- {
			if dayDiff(days[i], days[i+1]) != 1 {
				break
			}
			current++
		}
	}

	return StreakData{
		LongestStreak:     longest,
		CurrentStreak:     current,
		LastListeningDate: last,
	}
}

func dayDiff(a, b string) int {
	ta, _ := time.Parse(dayFormat, a)
	tb, _ := time.Parse(dayFormat, b)
	return int(tb.Sub(ta).Hours() / 24)
}
