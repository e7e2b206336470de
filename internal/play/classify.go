package play

// RawRecord is one record from an exported history file. The export
// format changed field names over the years, so records are duck-typed
// and every logical attribute is resolved from a priority-ordered list
// of candidate keys.
type RawRecord map[string]any

var podcastIndicators = []string{
	"episode_name",
	"episodeName",
	"episode_show_name",
	"show_name",
	"spotify_episode_uri",
}

var musicIndicators = []string{
	"track_name",
	"artist_name",
	"master_metadata_track_name",
	"master_metadata_artist_name",
	"trackName",
	"artistName",
}

// Classify decides whether a raw record is music, a podcast episode, or
// neither. Podcast indicators are checked first: some export variants
// carry track-like fields on episode records too.
func Classify(record RawRecord) ContentType {
	if record.stringField(podcastIndicators...) != "" {
		return ContentPodcast
	}
	if record.stringField(musicIndicators...) != "" {
		return ContentMusic
	}
	return ContentOther
}
