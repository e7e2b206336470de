// Package analysis computes listening analytics over normalized play
// events. Every function is a pure computation over the play list it is
// given; callers pre-filter by content type or date where that matters.
package analysis

import (
	"fmt"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// Metric selects the unit analytics are expressed in.
type Metric string

const (
	MetricMinutes Metric = "minutes"
	MetricPlays   Metric = "plays"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricMinutes, MetricPlays:
		return Metric(s), nil
	}
	return "", fmt.Errorf("invalid metric %q (want minutes or plays)", s)
}

const (
	dayFormat   = "2006-01-02"
	monthFormat = "2006-01"
)

func metricValue(p play.Play, metric Metric) float64 {
	if metric == MetricPlays {
		return 1
	}
	return float64(p.MsPlayed) / 60000
}

// ByDay sums the metric per calendar date.
func ByDay(plays []play.Play, metric Metric) map[string]float64 {
	totals := make(map[string]float64)
	for _, p := range plays {
		totals[p.Timestamp.Format(dayFormat)] += metricValue(p, metric)
	}
	return totals
}

// ByMonth sums the metric per yyyy-mm month key.
func ByMonth(plays []play.Play, metric Metric) map[string]float64 {
	totals := make(map[string]float64)
	for _, p := range plays {
		totals[p.Timestamp.Format(monthFormat)] += metricValue(p, metric)
	}
	return totals
}

// ByYear sums the metric per year.
func ByYear(plays []play.Play, metric Metric) map[int]float64 {
	totals := make(map[int]float64)
	for _, p := range plays {
		totals[p.Timestamp.Year()] += metricValue(p, metric)
	}
	return totals
}

// ByHour sums the metric per hour of day (0-23).
func ByHour(plays []play.Play, metric Metric) map[int]float64 {
	totals := make(map[int]float64)
	for _, p := range plays {
		totals[p.Timestamp.Hour()] += metricValue(p, metric)
	}
	return totals
}

// ArtistTotals accumulates both metrics for one artist.
type ArtistTotals struct {
	Minutes float64
	Count   int
}

// ByArtist accumulates minutes and play counts per artist name, skipping
// plays with no artist.
func ByArtist(plays []play.Play) map[string]ArtistTotals {
	totals := make(map[string]ArtistTotals)
	for _, p := range plays {
		if p.ArtistName == "" {
			continue
		}
		t := totals[p.ArtistName]
		t.Minutes += float64(p.MsPlayed) / 60000
		t.Count++
		totals[p.ArtistName] = t
	}
	return totals
}

// TrackTotals accumulates both metrics for one artist+track pair.
type TrackTotals struct {
	TrackName  string
	ArtistName string
	Minutes    float64
	Count      int
}

// ByTrack accumulates minutes and play counts keyed by the
// artist|||track composite, so same-named tracks by different artists
// stay apart. Plays missing either name are skipped.
func ByTrack(plays []play.Play) map[string]TrackTotals {
	totals := make(map[string]TrackTotals)
	for _, p := range plays {
		if p.TrackName == "" || p.ArtistName == "" {
			continue
		}
		key := play.SongKeyFromNames(p.ArtistName, p.TrackName)
		t := totals[key]
		t.TrackName = p.TrackName
		t.ArtistName = p.ArtistName
		t.Minutes += float64(p.MsPlayed) / 60000
		t.Count++
		totals[key] = t
	}
	return totals
}

func musicOnly(plays []play.Play) []play.Play {
	var music []play.Play
	for _, p := range plays {
		if p.ContentType == play.ContentMusic {
			music = append(music, p)
		}
	}
	return music
}

func podcastOnly(plays []play.Play) []play.Play {
	var podcasts []play.Play
	for _, p := range plays {
		if p.ContentType == play.ContentPodcast {
			podcasts = append(podcasts, p)
		}
	}
	return podcasts
}

// groupByArtist buckets music plays per artist, dropping plays with no
// artist name.
func groupByArtist(plays []play.Play) map[string][]play.Play {
	grouped := make(map[string][]play.Play)
	for _, p := range plays {
		if p.ArtistName == "" {
			continue
		}
		grouped[p.ArtistName] = append(grouped[p.ArtistName], p)
	}
	return grouped
}
