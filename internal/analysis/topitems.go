package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

func metricOf(minutes float64, count int, metric Metric) float64 {
	if metric == MetricPlays {
		return float64(count)
	}
	return minutes
}

// percentage is relative to the total across returned entries, not
// across all plays.
func percentage(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total * 100
}

// TopSongs ranks music tracks by the selected metric. Only plays with
// both track and artist names count.
func TopSongs(plays []play.Play, limit int, metric Metric) []TopSong {
	tracks := ByTrack(musicOnly(plays))

	var total float64
	for _, t := range tracks {
		total += metricOf(t.Minutes, t.Count, metric)
	}

	songs := make([]TopSong, 0, len(tracks))
	for _, t := range tracks {
		songs = append(songs, TopSong{
			TrackName:  t.TrackName,
			ArtistName: t.ArtistName,
			Minutes:    int(math.Round(t.Minutes)),
			PlayCount:  t.Count,
			Percentage: percentage(metricOf(t.Minutes, t.Count, metric), total),
		})
	}

	sort.Slice(songs, func(i, j int) bool {
		a := metricOf(float64(songs[i].Minutes), songs[i].PlayCount, metric)
		b := metricOf(float64(songs[j].Minutes), songs[j].PlayCount, metric)
		if a != b {
			return a > b
		}
		return songs[i].TrackName < songs[j].TrackName
	})
	if limit > 0 && len(songs) > limit {
		songs = songs[:limit]
	}
	return songs
}

// TopArtists ranks artists by the selected metric. Podcast plays count
// too, with the show name standing in for the artist. PeakMonth is the
// artist's best month by minutes regardless of the selected metric.
func TopArtists(plays []play.Play, limit int, metric Metric) []TopArtist {
	grouped := groupByArtist(plays)

	var total float64
	for _, list := range grouped {
		t := artistTotals(list)
		total += metricOf(t.Minutes, t.Count, metric)
	}

	artists := make([]TopArtist, 0, len(grouped))
	for name, list := range grouped {
		t := artistTotals(list)
		artists = append(artists, TopArtist{
			ArtistName: name,
			Minutes:    int(math.Round(t.Minutes)),
			PlayCount:  t.Count,
			Percentage: percentage(metricOf(t.Minutes, t.Count, metric), total),
			PeakMonth:  peakMonth(list),
		})
	}

	sort.Slice(artists, func(i, j int) bool {
		a := metricOf(float64(artists[i].Minutes), artists[i].PlayCount, metric)
		b := metricOf(float64(artists[j].Minutes), artists[j].PlayCount, metric)
		if a != b {
			return a > b
		}
		return artists[i].ArtistName < artists[j].ArtistName
	})
	if limit > 0 && len(artists) > limit {
		artists = artists[:limit]
	}
	return artists
}

func artistTotals(plays []play.Play) ArtistTotals {
	var t ArtistTotals
	for _, p := range plays {
		t.Minutes += float64(p.MsPlayed) / 60000
		t.Count++
	}
	return t
}

func peakMonth(plays []play.Play) *YearMonth {
	monthly := ByMonth(plays, MetricMinutes)
	var bestKey string
	var bestMinutes float64
	for key, minutes := range monthly {
		if minutes > bestMinutes {
			bestMinutes = minutes
			bestKey = key
		}
	}
	if bestKey == "" {
		return nil
	}
	month, _ := time.Parse(monthFormat, bestKey)
	return &YearMonth{Year: month.Year(), Month: int(month.Month())}
}

// TopAlbums ranks music albums by the selected metric. Requires both
// album and artist names.
func TopAlbums(plays []play.Play, limit int, metric Metric) []TopAlbum {
	type albumTotals struct {
		albumName  string
		artistName string
		minutes    float64
		count      int
	}
	totals := make(map[string]albumTotals)
	for _, p := range musicOnly(plays) {
		if p.AlbumName == "" || p.ArtistName == "" {
			continue
		}
		key := p.ArtistName + "|||" + p.AlbumName
		t := totals[key]
		t.albumName = p.AlbumName
		t.artistName = p.ArtistName
		t.minutes += float64(p.MsPlayed) / 60000
		t.count++
		totals[key] = t
	}

	var total float64
	for _, t := range totals {
		total += metricOf(t.minutes, t.count, metric)
	}

	albums := make([]TopAlbum, 0, len(totals))
	for _, t := range totals {
		albums = append(albums, TopAlbum{
			AlbumName:  t.albumName,
			ArtistName: t.artistName,
			Minutes:    int(math.Round(t.minutes)),
			PlayCount:  t.count,
			Percentage: percentage(metricOf(t.minutes, t.count, metric), total),
		})
	}

	sort.Slice(albums, func(i, j int) bool {
		a := metricOf(float64(albums[i].Minutes), albums[i].PlayCount, metric)
		b := metricOf(float64(albums[j].Minutes), albums[j].PlayCount, metric)
		if a != b {
			return a > b
		}
		return albums[i].AlbumName < albums[j].AlbumName
	})
	if limit > 0 && len(albums) > limit {
		albums = albums[:limit]
	}
	return albums
}

// TopEpisodes ranks podcast episodes by the selected metric. The track
// name carries the episode name for podcast plays; a missing show name
// falls back to "Unknown Show".
func TopEpisodes(plays []play.Play, limit int, metric Metric) []TopEpisode {
	type episodeTotals struct {
		episodeName string
		showName    string
		minutes     float64
		count       int
	}
	totals := make(map[string]episodeTotals)
	for _, p := range podcastOnly(plays) {
		if p.TrackName == "" {
			continue
		}
		showName := p.ArtistName
		if showName == "" {
			showName = "Unknown Show"
		}
		key := showName + "|||" + p.TrackName
		t := totals[key]
		t.episodeName = p.TrackName
		t.showName = showName
		t.minutes += float64(p.MsPlayed) / 60000
		t.count++
		totals[key] = t
	}

	var total float64
	for _, t := range totals {
		total += metricOf(t.minutes, t.count, metric)
	}

	episodes := make([]TopEpisode, 0, len(totals))
	for _, t := range totals {
		episodes = append(episodes, TopEpisode{
			EpisodeName: t.episodeName,
			ShowName:    t.showName,
			Minutes:     int(math.Round(t.minutes)),
			PlayCount:   t.count,
			Percentage:  percentage(metricOf(t.minutes, t.count, metric), total),
		})
	}

	sort.Slice(episodes, func(i, j int) bool {
		a := metricOf(float64(episodes[i].Minutes), episodes[i].PlayCount, metric)
		b := metricOf(float64(episodes[j].Minutes), episodes[j].PlayCount, metric)
		if a != b {
			return a > b
		}
		return episodes[i].EpisodeName < episodes[j].EpisodeName
	})
	if limit > 0 && len(episodes) > limit {
		episodes = episodes[:limit]
	}
	return episodes
}

// TopSkippedSongs ranks music tracks by how often the export flagged
// them skipped. Tracks never skipped are left out.
func TopSkippedSongs(plays []play.Play, limit int) []SkippedSong {
	type skipTotals struct {
		trackName  string
		artistName string
		skips      int
		total      int
	}
	totals := make(map[string]skipTotals)
	for _, p := range musicOnly(plays) {
		if p.TrackName == "" || p.ArtistName == "" {
			continue
		}
		key := play.SongKeyFromNames(p.ArtistName, p.TrackName)
		t := totals[key]
		t.trackName = p.TrackName
		t.artistName = p.ArtistName
		t.total++
		if p.Skipped {
			t.skips++
		}
		totals[key] = t
	}

	var songs []SkippedSong
	for _, t := range totals {
		if t.skips == 0 {
			continue
		}
		songs = append(songs, SkippedSong{
			TrackName:  t.trackName,
			ArtistName: t.artistName,
			SkipCount:  t.skips,
			TotalPlays: t.total,
			SkipRate:   float64(t.skips) / float64(t.total) * 100,
		})
	}

	sort.Slice(songs, func(i, j int) bool {
		if songs[i].SkipCount != songs[j].SkipCount {
			return songs[i].SkipCount > songs[j].SkipCount
		}
		return songs[i].SkipRate > songs[j].SkipRate
	})
	if limit > 0 && len(songs) > limit {
		songs = songs[:limit]
	}
	return songs
}
