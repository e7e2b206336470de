// Package migration holds the SQLite schema.
package migration

// Create is the schema applied when the database does not exist yet.
// Source.enabled is tri-state: NULL means enabled, so sources imported
// before the toggle existed stay included.
const Create = `
CREATE TABLE Source (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  detected_username TEXT,
  enabled INTEGER
);

CREATE TABLE Play (
  id TEXT PRIMARY KEY,
  source TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  artist_name TEXT,
  track_name TEXT,
  album_name TEXT,
  track_uri TEXT,
  artist_id TEXT,
  ms_played INTEGER NOT NULL,
  content_type TEXT NOT NULL,
  username TEXT,
  skipped INTEGER NOT NULL DEFAULT 0,
  FOREIGN KEY (source) REFERENCES Source(id)
);

CREATE INDEX idx_play_source ON Play(source);
CREATE INDEX idx_play_timestamp ON Play(timestamp);
`
