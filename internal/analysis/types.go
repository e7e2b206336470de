package analysis

import "time"

type TopSong struct {
	TrackName  string
	ArtistName string
	Minutes    int
	PlayCount  int
	Percentage float64
}

type TopArtist struct {
	ArtistName string
	Minutes    int
	PlayCount  int
	Percentage float64
	PeakMonth  *YearMonth
}

type TopAlbum struct {
	AlbumName  string
	ArtistName string
	Minutes    int
	PlayCount  int
	Percentage float64
}

type TopEpisode struct {
	EpisodeName string
	ShowName    string
	Minutes     int
	PlayCount   int
	Percentage  float64
}

type SkippedSong struct {
	TrackName  string
	ArtistName string
	SkipCount  int
	TotalPlays int
	SkipRate   float64
}

type TopGenre struct {
	Genre      string
	Minutes    int
	PlayCount  int
	Percentage float64
}

// GenreShare is one genre's slice of a year's music minutes.
type GenreShare struct {
	Genre      string
	Percentage float64
}

type GenreEvolutionEntry struct {
	Year   int
	Genres []GenreShare
}

type YearMonth struct {
	Year  int
	Month int
}

type TimeOfDayEntry struct {
	Hour    int
	Minutes int
}

type MonthlyEntry struct {
	Year    int
	Month   int
	Minutes int
}

type YearlyEntry struct {
	Year    int
	Minutes int
}

type DailyEntry struct {
	Date    time.Time
	Minutes int
}

type StreakData struct {
	LongestStreak     int
	CurrentStreak     int
	LastListeningDate time.Time
}

// Phase is a multi-month run where one artist holds an outsized share of
// monthly music listening.
type Phase struct {
	ArtistName string
	StartMonth YearMonth
	EndMonth   YearMonth
	Intensity  float64
}

// Rediscovery is a return to an artist after a long listening gap,
// followed by meaningful renewed listening.
type Rediscovery struct {
	ArtistName        string
	GapMonths         int
	RediscoveryDate   time.Time
	PreviousPeriodEnd time.Time
}

type ContentSplit struct {
	Year              int
	MusicMinutes      int
	PodcastMinutes    int
	MusicPercentage   float64
	PodcastPercentage float64
}
