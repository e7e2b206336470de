package store

import (
	"fmt"
	"time"

	"github.com/pvannes/spotify-history-tools/internal/play"
)

// AddSource records a new source. The enabled column is left NULL on
// creation, which reads back as enabled.
func (s *Store) AddSource(src play.Source) error {
	_, err := s.db.Exec(
		"INSERT INTO Source (id, name, detected_username) VALUES (?, ?, ?)",
		src.ID, src.Name, src.DetectedUsername)
	if err != nil {
		return fmt.Errorf("inserting source %q: %w", src.ID, err)
	}
	return nil
}

// AddPlays inserts a batch of plays transactionally.
func (s *Store) AddPlays(plays []play.Play) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO Play (id, source, timestamp, artist_name, track_name, album_name,
			track_uri, artist_id, ms_played, content_type, username, skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range plays {
		_, err := stmt.Exec(
			p.ID, p.SourceID, p.Timestamp.UTC().Format(time.RFC3339),
			p.ArtistName, p.TrackName, p.AlbumName,
			p.TrackURI, p.ArtistID, p.MsPlayed, string(p.ContentType),
			p.Username, boolToInt(p.Skipped))
		if err != nil {
			return fmt.Errorf("inserting play %q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *Store) RenameSource(id, name string) error {
	res, err := s.db.Exec("UPDATE Source SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("renaming source %q: %w", id, err)
	}
	return requireRow(res, id)
}

func (s *Store) SetSourceEnabled(id string, enabled bool) error {
	res, err := s.db.Exec("UPDATE Source SET enabled = ? WHERE id = ?", boolToInt(enabled), id)
	if err != nil {
		return fmt.Errorf("updating source %q: %w", id, err)
	}
	return requireRow(res, id)
}

func (s *Store) SetAllSourcesEnabled(enabled bool) error {
	_, err := s.db.Exec("UPDATE Source SET enabled = ?", boolToInt(enabled))
	if err != nil {
		return fmt.Errorf("updating sources: %w", err)
	}
	return nil
}

// RemoveSource deletes a source and its plays.
func (s *Store) RemoveSource(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Play WHERE source = ?", id); err != nil {
		return fmt.Errorf("deleting plays for source %q: %w", id, err)
	}
	res, err := tx.Exec("DELETE FROM Source WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting source %q: %w", id, err)
	}
	if err := requireRow(res, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Clear wipes all plays and sources.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Play"); err != nil {
		return fmt.Errorf("deleting plays: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM Source"); err != nil {
		return fmt.Errorf("deleting sources: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func requireRow(res interface{ RowsAffected() (int64, error) }, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no source with id %q", id)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
