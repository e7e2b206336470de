package analysis

import (
	"math"
	"sort"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// GetContentSplit breaks each year's listening into music and podcast
// minutes, with percentages relative to that year's music+podcast total.
func GetContentSplit(plays []play.Play) []ContentSplit {
	type yearTotals struct {
		music   float64
		podcast float64
	}
	totals := make(map[int]yearTotals)
	for _, p := range plays {
		year := p.Timestamp.Year()
		t := totals[year]
		minutes := float64(p.MsPlayed) / 60000
		switch p.ContentType {
		case play.ContentMusic:
			t.music += minutes
		case play.ContentPodcast:
			t.podcast += minutes
		}
		totals[year] = t
	}

	entries := make([]ContentSplit, 0, len(totals))
	for year, t := range totals {
		total := t.music + t.podcast
		entries = append(entries, ContentSplit{
			Year:              year,
			MusicMinutes:      int(math.Round(t.music)),
			PodcastMinutes:    int(math.Round(t.podcast)),
			MusicPercentage:   percentage(t.music, total),
			PodcastPercentage: percentage(t.podcast, total),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Year < entries[j].Year
	})
	return entries
}
