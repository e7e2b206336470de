package play

import "testing"

func TestClassifyMusic(t *testing.T) {
	records := []RawRecord{
		{"track_name": "Song", "artist_name": "Artist"},
		{"master_metadata_track_name": "Song"},
		{"trackName": "Song", "artistName": "Artist"},
	}
	for i, record := range records {
		if got := Classify(record); got != ContentMusic {
			t.Errorf("record %d: Classify = %q, want music", i, got)
		}
	}
}

func TestClassifyPodcast(t *testing.T) {
	records := []RawRecord{
		{"episode_name": "Episode 1", "episode_show_name": "Some Show"},
		{"spotify_episode_uri": "spotify:episode:abc"},
		{"show_name": "Some Show"},
	}
	for i, record := range records {
		if got := Classify(record); got != ContentPodcast {
			t.Errorf("record %d: Classify = %q, want podcast", i, got)
		}
	}
}

func TestClassifyPodcastWinsOverMusic(t *testing.T) {
	// Some export variants carry track-like fields on episode records.
	record := RawRecord{
		"master_metadata_track_name": "Episode 12: The One About Go",
		"episode_name":               "Episode 12: The One About Go",
		"episode_show_name":          "Go Time",
	}
	if got := Classify(record); got != ContentPodcast {
		t.Errorf("Classify = %q, want podcast", got)
	}
}

func TestClassifyOther(t *testing.T) {
	records := []RawRecord{
		{},
		{"ms_played": float64(1000), "ts": "2023-01-01T00:00:00Z"},
		{"track_name": ""},
	}
	for i, record := range records {
		if got := Classify(record); got != ContentOther {
			t.Errorf("record %d: Classify = %q, want other", i, got)
		}
	}
}
