package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

var testPlayCounter int

// musicPlay builds a music play at the given RFC3339 timestamp.
func musicPlay(t *testing.T, ts, artist, track string, minutes float64) play.Play {
	t.Helper()
	return testPlay(t, ts, artist, track, minutes, play.ContentMusic)
}

func podcastPlay(t *testing.T, ts, show, episode string, minutes float64) play.Play {
	t.Helper()
	return testPlay(t, ts, show, episode, minutes, play.ContentPodcast)
}

func testPlay(t *testing.T, ts, artist, track string, minutes float64, ct play.ContentType) play.Play {
	t.Helper()
	timestamp, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", ts, err)
	}
	testPlayCounter++
	return play.Play{
		ID:          fmt.Sprintf("test-%d", testPlayCounter),
		Timestamp:   timestamp,
		ArtistName:  artist,
		TrackName:   track,
		MsPlayed:    int64(minutes * 60000),
		ContentType: ct,
		SourceID:    "test-source",
	}
}
