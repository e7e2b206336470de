package play

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	timestampFields = []string{"ts", "endTime"}

	trackNameFields = []string{
		"trackName",
		"master_metadata_track_name",
		"track_name",
		"episode_name",
		"episodeName",
		"episode_show_name",
		"show_name",
	}

	artistNameFields = []string{
		"artistName",
		"master_metadata_artist_name",
		"master_metadata_album_artist_name",
		"artist_name",
		"episode_show_name",
		"show_name",
	}

	albumNameFields = []string{
		"albumName",
		"master_metadata_album_name",
		"master_metadata_album_album_name",
		"album_name",
	}

	trackURIFields = []string{"spotify_uri", "spotify_track_uri", "spotifyUri"}

	artistURIFields = []string{"spotify_artist_uri", "artist_uri"}

	durationFields = []string{"msPlayed", "ms_played"}

	usernameFields = []string{"username", "user_name", "platformUserName", "accountName"}
)

const artistURIPrefix = "spotify:artist:"

// Exports have used a few timestamp renditions over the years.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// stringField returns the first non-empty string among the candidate keys.
func (r RawRecord) stringField(keys ...string) string {
	for _, key := range keys {
		if s, ok := r[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// numberField returns the first numeric value among the candidate keys.
// JSON numbers decode as float64.
func (r RawRecord) numberField(keys ...string) (int64, bool) {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return int64(v), true
		case int64:
			return v, true
		case int:
			return int64(v), true
		}
	}
	return 0, false
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// artistID pulls the opaque artist identifier out of an artist URI when
// one is present, preferring the dedicated artist-URI fields over the
// album-artist fallback.
func artistID(record RawRecord) string {
	uri := record.stringField(artistURIFields...)
	if uri == "" {
		uri = record.stringField("master_metadata_album_artist_uri")
	}
	if strings.HasPrefix(uri, artistURIPrefix) {
		return strings.TrimPrefix(uri, artistURIPrefix)
	}
	return ""
}

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idSuffix guards against two plays of the same track landing on the
// same millisecond. Best-effort only: collisions are acceptable.
func idSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idSuffixAlphabet[rand.IntN(len(idSuffixAlphabet))]
	}
	return string(b)
}

// ParseRecord normalizes one raw record into a Play. Records with no
// parseable timestamp or with a non-positive play duration are rejected:
// exported histories routinely contain partial or metadata-only entries,
// and those should never surface as errors.
func ParseRecord(record RawRecord, sourceID string) (Play, bool) {
	raw := record.stringField(timestampFields...)
	if raw == "" {
		return Play{}, false
	}
	timestamp, ok := parseTimestamp(raw)
	if !ok {
		return Play{}, false
	}

	msPlayed, _ := record.numberField(durationFields...)
	if msPlayed <= 0 {
		return Play{}, false
	}

	skipped, _ := record["skipped"].(bool)

	return Play{
		ID:          fmt.Sprintf("%s-%d-%s", sourceID, timestamp.UnixMilli(), idSuffix(9)),
		Timestamp:   timestamp,
		ArtistName:  record.stringField(artistNameFields...),
		TrackName:   record.stringField(trackNameFields...),
		AlbumName:   record.stringField(albumNameFields...),
		TrackURI:    record.stringField(trackURIFields...),
		ArtistID:    artistID(record),
		MsPlayed:    msPlayed,
		ContentType: Classify(record),
		SourceID:    sourceID,
		Username:    record.stringField(usernameFields...),
		Skipped:     skipped,
	}, true
}

// ParseRecords normalizes a batch, silently dropping rejected records
// and preserving the relative order of the rest.
func ParseRecords(records []RawRecord, sourceID string) []Play {
	var plays []Play
	for _, record := range records {
		if p, ok := ParseRecord(record, sourceID); ok {
			plays = append(plays, p)
		}
	}
	return plays
}

// DetectUsername scans a batch for the first record naming an account.
func DetectUsername(records []RawRecord) string {
	for _, record := range records {
		if name := record.stringField(usernameFields...); name != "" {
			return name
		}
	}
	return ""
}
