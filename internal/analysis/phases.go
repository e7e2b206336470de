package analysis

import (
	"sort"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// DefaultPhaseThreshold is the minimum share (in percent) of a month's
// music listening an artist needs to hold for the month to qualify.
const DefaultPhaseThreshold = 5

const maxPhases = 5

// DetectPhases finds runs of months where a single artist dominates the
// listener's music time. A run must span at least two months to count;
// intensity is the highest monthly share seen within the run. The top
// five phases across all artists are returned, by intensity.
func DetectPhases(plays []play.Play, threshold float64, metric Metric) []Phase {
	music := musicOnly(plays)
	global := ByMonth(music, metric)

	var phases []Phase
	for artistName, artistList := range groupByArtist(music) {
		monthly := ByMonth(artistList, metric)

		type monthShare struct {
			key        string
			year       int
			month      int
			percentage float64
		}
		months := make([]monthShare, 0, len(monthly))
		for key, value := range monthly {
			t, err := time.Parse(monthFormat, key)
			if err != nil {
				continue
			}
			// A zero global month is treated as 1, which inflates the
			// share. Kept as-is: correcting it would silently reorder
			// existing rankings.
			globalValue := global[key]
			if globalValue == 0 {
				globalValue = 1
			}
			months = append(months, monthShare{
				key:        key,
				year:       t.Year(),
				month:      int(t.Month()),
				percentage: value / globalValue * 100,
			})
		}
		sort.Slice(months, func(i, j int) bool {
			return months[i].key < months[j].key
		})

		var start, end *YearMonth
		var intensity float64

		flush := func() {
			if start != nil && end != nil && monthSpan(*start, *end) >= 2 {
				phases = append(phases, Phase{
					ArtistName: artistName,
					StartMonth: *start,
					EndMonth:   *end,
					Intensity:  intensity,
				})
			}
			start, end = nil, nil
			intensity = 0
		}

		for _, m := range months {
			if m.percentage >= threshold {
				if start == nil {
					start = &YearMonth{Year: m.year, Month: m.month}
				}
				end = &YearMonth{Year: m.year, Month: m.month}
				if m.percentage > intensity {
					intensity = m.percentage
				}
			} else {
				flush()
			}
		}
		flush()
	}

	sort.Slice(phases, func(i, j int) bool {
		if phases[i].Intensity != phases[j].Intensity {
			return phases[i].Intensity > phases[j].Intensity
		}
		return phases[i].ArtistName < phases[j].ArtistName
	})
	if len(phases) > maxPhases {
		phases = phases[:maxPhases]
	}
	return phases
}

// monthSpan counts calendar months from start through end, inclusive.
func monthSpan(start, end YearMonth) int {
	return (end.Year-start.Year)*12 + (end.Month - start.Month) + 1
}
