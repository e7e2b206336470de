package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// TimeOfDayData returns exactly 24 entries, zero-filled for hours with
// no listening. The Minutes field carries the selected metric's value.
func TimeOfDayData(plays []play.Play, metric Metric) []TimeOfDayEntry {
	hourly := ByHour(plays, metric)
	entries := make([]TimeOfDayEntry, 0, 24)
	for hour := 0; hour < 24; hour++ {
		entries = append(entries, TimeOfDayEntry{
			Hour:    hour,
			Minutes: int(math.Round(hourly[hour])),
		})
	}
	return entries
}

// MonthlyData returns per-month totals sorted chronologically.
func MonthlyData(plays []play.Play, metric Metric) []MonthlyEntry {
	monthly := ByMonth(plays, metric)
	entries := make([]MonthlyEntry, 0, len(monthly))
	for key, value := range monthly {
		month, err := time.Parse(monthFormat, key)
		if err != nil {
			continue
		}
		entries = append(entries, MonthlyEntry{
			Year:    month.Year(),
			Month:   int(month.Month()),
			Minutes: int(math.Round(value)),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Year != entries[j].Year {
			return entries[i].Year < entries[j].Year
		}
		return entries[i].Month < entries[j].Month
	})
	return entries
}

// YearlyData returns per-year totals sorted chronologically.
func YearlyData(plays []play.Play, metric Metric) []YearlyEntry {
	yearly := ByYear(plays, metric)
	entries := make([]YearlyEntry, 0, len(yearly))
	for year, value := range yearly {
		entries = append(entries, YearlyEntry{
			Year:    year,
			Minutes: int(math.Round(value)),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Year < entries[j].Year
	})
	return entries
}

// DailyData returns per-day totals sorted chronologically. When both
// year and month are non-zero the play list is pre-filtered to that
// month before aggregating.
func DailyData(plays []play.Play, year, month int, metric Metric) []DailyEntry {
	filtered := plays
	if year != 0 && month != 0 {
		filtered = nil
		for _, p := range plays {
			if p.Timestamp.Year() == year && int(p.Timestamp.Month()) == month {
				filtered = append(filtered, p)
			}
		}
	}

	daily := ByDay(filtered, metric)
	entries := make([]DailyEntry, 0, len(daily))
	for key, value := range daily {
		date, err := time.Parse(dayFormat, key)
		if err != nil {
			continue
		}
		entries = append(entries, DailyEntry{
			Date:    date,
			Minutes: int(math.Round(value)),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// PeakHour returns the hour of day with the highest metric value.
func PeakHour(plays []play.Play, metric Metric) (int, bool) {
	hourly := ByHour(plays, metric)
	if len(hourly) == 0 {
		return 0, false
	}
	var bestHour int
	var bestValue float64
	for hour, value := range hourly {
		if value > bestValue {
			bestValue = value
			bestHour = hour
		}
	}
	return bestHour, true
}

// TimeOfDaySummary describes the span covered by the three busiest
// hours as a human sentence.
func TimeOfDaySummary(plays []play.Play, metric Metric) string {
	hourly := ByHour(plays, metric)

	var hours []int
	for hour := 0; hour < 24; hour++ {
		if hourly[hour] > 0 {
			hours = append(hours, hour)
		}
	}
	if len(hours) == 0 {
		return "No listening data"
	}

	sort.Slice(hours, func(i, j int) bool {
		return hourly[hours[i]] > hourly[hours[j]]
	})
	top := hours
	if len(top) > 3 {
		top = top[:3]
	}

	minHour, maxHour := top[0], top[0]
	for _, h := range top[1:] {
		if h < minHour {
			minHour = h
		}
		if h > maxHour {
			maxHour = h
		}
	}

	if minHour == maxHour {
		return fmt.Sprintf("You mostly listen at %02d:00.", minHour)
	}
	return fmt.Sprintf("You mostly listen between %02d:00 and %02d:00.", minHour, maxHour)
}
