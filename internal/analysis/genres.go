package analysis

import (
	"math"
	"sort"

	"github.com/pvannes/spotify-history-tools/internal/genre"
	"github.com/pvannes/spotify-history-tools/internal/play"
)

// TopGenres ranks canonical genres by the selected metric over music
// plays only. Artists without a mapping entry land in Other.
func TopGenres(plays []play.Play, metric Metric) []TopGenre {
	type genreTotals struct {
		minutes float64
		count   int
	}
	totals := make(map[string]genreTotals)
	for _, p := range musicOnly(plays) {
		g := genre.Resolve(p.ArtistID, p.ArtistName)
		t := totals[g]
		t.minutes += float64(p.MsPlayed) / 60000
		t.count++
		totals[g] = t
	}

	var total float64
	for _, t := range totals {
		total += metricOf(t.minutes, t.count, metric)
	}

	genres := make([]TopGenre, 0, len(totals))
	for name, t := range totals {
		genres = append(genres, TopGenre{
			Genre:      name,
			Minutes:    int(math.Round(t.minutes)),
			PlayCount:  t.count,
			Percentage: percentage(metricOf(t.minutes, t.count, metric), total),
		})
	}

	sort.Slice(genres, func(i, j int) bool {
		a := metricOf(float64(genres[i].Minutes), genres[i].PlayCount, metric)
		b := metricOf(float64(genres[j].Minutes), genres[j].PlayCount, metric)
		if a != b {
			return a > b
		}
		return genres[i].Genre < genres[j].Genre
	})
	return genres
}

// GenreEvolution computes each genre's share of a year's music minutes,
// per year. The metric here is always minutes.
func GenreEvolution(plays []play.Play) []GenreEvolutionEntry {
	byYear := make(map[int]map[string]float64)
	for _, p := range musicOnly(plays) {
		year := p.Timestamp.Year()
		if byYear[year] == nil {
			byYear[year] = make(map[string]float64)
		}
		g := genre.Resolve(p.ArtistID, p.ArtistName)
		byYear[year][g] += float64(p.MsPlayed) / 60000
	}

	entries := make([]GenreEvolutionEntry, 0, len(byYear))
	for year, genreMinutes := range byYear {
		var total float64
		for _, minutes := range genreMinutes {
			total += minutes
		}

		shares := make([]GenreShare, 0, len(genreMinutes))
		for name, minutes := range genreMinutes {
			shares = append(shares, GenreShare{
				Genre:      name,
				Percentage: percentage(minutes, total),
			})
		}
		sort.Slice(shares, func(i, j int) bool {
			if shares[i].Percentage != shares[j].Percentage {
				return shares[i].Percentage > shares[j].Percentage
			}
			return shares[i].Genre < shares[j].Genre
		})

		entries = append(entries, GenreEvolutionEntry{Year: year, Genres: shares})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Year < entries[j].Year
	})
	return entries
}
