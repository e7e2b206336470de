package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// GetSources lists all sources in insertion order.
func (s *Store) GetSources() ([]play.Source, error) {
	rows, err := s.db.Query("SELECT id, name, detected_username, enabled FROM Source ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	var sources []play.Source
	for rows.Next() {
		var src play.Source
		var username sql.NullString
		var enabled sql.NullInt64
		if err := rows.Scan(&src.ID, &src.Name, &username, &enabled); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		src.DetectedUsername = username.String
		// NULL means the source was never toggled, so it counts.
		src.Enabled = !enabled.Valid || enabled.Int64 != 0
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// GetPlays loads all plays from enabled sources in chronological order.
func (s *Store) GetPlays() ([]play.Play, error) {
	const query = `
	SELECT Play.id, Play.source, Play.timestamp, Play.artist_name, Play.track_name,
		Play.album_name, Play.track_uri, Play.artist_id, Play.ms_played,
		Play.content_type, Play.username, Play.skipped
	FROM Play
	INNER JOIN Source ON Source.id = Play.source
	WHERE Source.enabled IS NULL OR Source.enabled != 0
	ORDER BY Play.timestamp
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying plays: %w", err)
	}
	defer rows.Close()

	var plays []play.Play
	for rows.Next() {
		p, err := scanPlay(rows)
		if err != nil {
			return nil, err
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// CountPlays counts stored plays across all sources, disabled included.
func (s *Store) CountPlays() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM Play").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting plays: %w", err)
	}
	return count, nil
}

func scanPlay(rows *sql.Rows) (play.Play, error) {
	var p play.Play
	var timestamp string
	var artistName, trackName, albumName, trackURI, artistID, username sql.NullString
	var contentType string
	var skipped int

	err := rows.Scan(&p.ID, &p.SourceID, &timestamp, &artistName, &trackName,
		&albumName, &trackURI, &artistID, &p.MsPlayed, &contentType, &username, &skipped)
	if err != nil {
		return play.Play{}, fmt.Errorf("scanning play: %w", err)
	}

	p.Timestamp, err = time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return play.Play{}, fmt.Errorf("parsing play timestamp %q: %w", timestamp, err)
	}
	p.ArtistName = artistName.String
	p.TrackName = trackName.String
	p.AlbumName = albumName.String
	p.TrackURI = trackURI.String
	p.ArtistID = artistID.String
	p.ContentType = play.ContentType(contentType)
	p.Username = username.String
	p.Skipped = skipped != 0
	return p, nil
}
