package play

import "time"

// ContentType says what kind of content a play represents, decided from
// the raw record's fields rather than anything user-supplied.
type ContentType string

const (
	ContentMusic   ContentType = "music"
	ContentPodcast ContentType = "podcast"
	ContentOther   ContentType = "other"
)

// Play is one normalized listening event. Instances are immutable once
// created; the store only ever appends them.
type Play struct {
	ID          string
	Timestamp   time.Time
	ArtistName  string // show name for podcasts
	TrackName   string // episode name for podcasts
	AlbumName   string
	TrackURI    string
	ArtistID    string
	MsPlayed    int64
	ContentType ContentType
	SourceID    string
	Username    string
	Skipped     bool
}

// Source is one imported file or archive. Disabled sources are excluded
// from every analytics read.
type Source struct {
	ID               string
	Name             string
	DetectedUsername string
	Enabled          bool
}

// SongKey returns a stable identity for "this exact song": the track URI
// when the export carried one, otherwise the artist|||track composite.
func (p Play) SongKey() string {
	if p.TrackURI != "" {
		return p.TrackURI
	}
	return SongKeyFromNames(p.ArtistName, p.TrackName)
}

func SongKeyFromNames(artistName, trackName string) string {
	return artistName + "|||" + trackName
}
