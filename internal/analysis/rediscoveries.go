package analysis

import (
	"sort"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// DefaultMinGapMonths is the smallest listening gap that counts as a
// rediscovery.
const DefaultMinGapMonths = 6

const (
	maxRediscoveries = 10

	// Plays within this many days of each other belong to the same
	// listening period.
	periodGapDays = 30

	// Minimum minutes from the rediscovery onward for it to count as
	// meaningful renewed listening.
	minRediscoveryMinutes = 30
)

type listeningPeriod struct {
	start time.Time
	end   time.Time
}

// DetectRediscoveries finds returns to an artist after a gap of at
// least minGapMonths whole calendar months, followed by at least half
// an hour of renewed listening. The ten largest gaps are returned.
func DetectRediscoveries(plays []play.Play, minGapMonths int) []Rediscovery {
	var rediscoveries []Rediscovery

	for artistName, artistList := range groupByArtist(musicOnly(plays)) {
		if len(artistList) < 2 {
			continue
		}

		sorted := make([]play.Play, len(artistList))
		copy(sorted, artistList)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		})

		periods := buildPeriods(sorted)

		for i := 1; i < len(periods); i++ {
			prev := periods[i-1]
			curr := periods[i]

			gapMonths := (curr.start.Year()-prev.end.Year())*12 +
				int(curr.start.Month()) - int(prev.end.Month())
			if gapMonths < minGapMonths {
				continue
			}

			var postGapMinutes float64
			for _, p := range artistList {
				if !p.Timestamp.Before(curr.start) {
					postGapMinutes += float64(p.MsPlayed) / 60000
				}
			}
			if postGapMinutes < minRediscoveryMinutes {
				continue
			}

			rediscoveries = append(rediscoveries, Rediscovery{
				ArtistName:        artistName,
				GapMonths:         gapMonths,
				RediscoveryDate:   curr.start,
				PreviousPeriodEnd: prev.end,
			})
		}
	}

	sort.Slice(rediscoveries, func(i, j int) bool {
		if rediscoveries[i].GapMonths != rediscoveries[j].GapMonths {
			return rediscoveries[i].GapMonths > rediscoveries[j].GapMonths
		}
		return rediscoveries[i].ArtistName < rediscoveries[j].ArtistName
	})
	if len(rediscoveries) > maxRediscoveries {
		rediscoveries = rediscoveries[:maxRediscoveries]
	}
	return rediscoveries
}

// buildPeriods folds chronologically sorted plays into listening
// periods, starting a new one whenever the day gap exceeds the period
// threshold.
func buildPeriods(sorted []play.Play) []listeningPeriod {
	var periods []listeningPeriod
	var current *listeningPeriod

	for _, p := range sorted {
		day := truncateToDay(p.Timestamp)
		if current == nil {
			current = &listeningPeriod{start: day, end: day}
			continue
		}
		if int(day.Sub(current.end).Hours()/24) <= periodGapDays {
			current.end = day
		} else {
			periods = append(periods, *current)
			current = &listeningPeriod{start: day, end: day}
		}
	}
	if current != nil {
		periods = append(periods, *current)
	}
	return periods
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
