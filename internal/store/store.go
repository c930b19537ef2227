// Package store persists the track library and its connections to a
// SQLite database file.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"mixmem/internal/core"
)

const schemaSQL = `
	DROP TABLE IF EXISTS library;
	CREATE TABLE library(id INTEGER, artist TEXT, title TEXT);

	DROP TABLE IF EXISTS connections;
	CREATE TABLE connections(source_track_id INTEGER, target_track_id INTEGER);
	`

// Store wraps a SQLite database holding the library and connections
// tables. One interactive command runs against one database file at a
// time; no locking beyond SQLite's own is used.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Init drops both tables and recreates them empty.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// SaveLibrary replaces the library table with the given library's
// entries. The replacement runs in a transaction, so a failure leaves
// the previously committed rows intact.
func (s *Store) SaveLibrary(library *core.Library) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM library"); err != nil {
		return fmt.Errorf("failed to clear library table: %w", err)
	}
	for _, track := range library.Tracks() {
		_, err := tx.Exec(
			"INSERT INTO library (id, artist, title) VALUES (?, ?, ?)",
			int64(track.ID()), track.Artist, track.Title,
		)
		if err != nil {
			return fmt.Errorf("failed to insert track %s: %w", track, err)
		}
	}

	return tx.Commit()
}

// LoadLibrary reads the library table back into a Library, preserving
// the stored identifiers exactly.
func (s *Store) LoadLibrary() (*core.Library, error) {
	rows, err := s.db.Query("SELECT id, artist, title FROM library")
	if err != nil {
		return nil, fmt.Errorf("failed to query library table: %w", err)
	}
	defer rows.Close()

	entries := make(map[core.TrackID]core.Track)
	for rows.Next() {
		var id int64
		var artist, title string
		if err := rows.Scan(&id, &artist, &title); err != nil {
			return nil, fmt.Errorf("failed to scan library row: %w", err)
		}
		entries[core.TrackID(id)] = core.Track{Artist: artist, Title: title}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read library rows: %w", err)
	}

	return core.Restore(entries), nil
}

// SaveConnections replaces the connections table with the given edges.
// Bidirectional connections arrive as two directed rows.
func (s *Store) SaveConnections(connections []core.Connection) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM connections"); err != nil {
		return fmt.Errorf("failed to clear connections table: %w", err)
	}
	for _, c := range connections {
		_, err := tx.Exec(
			"INSERT INTO connections (source_track_id, target_track_id) VALUES (?, ?)",
			int64(c.Source), int64(c.Target),
		)
		if err != nil {
			return fmt.Errorf("failed to insert connection %d -> %d: %w", c.Source, c.Target, err)
		}
	}

	return tx.Commit()
}

// LoadConnections reads all directed edges from the connections table.
func (s *Store) LoadConnections() ([]core.Connection, error) {
	rows, err := s.db.Query("SELECT source_track_id, target_track_id FROM connections")
	if err != nil {
		return nil, fmt.Errorf("failed to query connections table: %w", err)
	}
	defer rows.Close()

	var connections []core.Connection
	for rows.Next() {
		var source, target int64
		if err := rows.Scan(&source, &target); err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		connections = append(connections, core.Connection{
			Source: core.TrackID(source),
			Target: core.TrackID(target),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read connection rows: %w", err)
	}

	return connections, nil
}

// LoadNetwork loads the library and connections and assembles a network.
func (s *Store) LoadNetwork() (*core.Network, error) {
	library, err := s.LoadLibrary()
	if err != nil {
		return nil, err
	}
	connections, err := s.LoadConnections()
	if err != nil {
		return nil, err
	}
	return core.NewNetworkWithConnections(library, connections)
}

// SaveNetwork persists a network's library and connections.
func (s *Store) SaveNetwork(network *core.Network) error {
	if err := s.SaveLibrary(network.Library()); err != nil {
		return err
	}
	return s.SaveConnections(network.Connections())
}
