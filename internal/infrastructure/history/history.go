// Package history persists the watch history in SQLite.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/domain/watch"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS watch_index (
	id          TEXT PRIMARY KEY,
	position    INTEGER NOT NULL,
	kind        TEXT NOT NULL,
	title       TEXT NOT NULL,
	author      TEXT NOT NULL DEFAULT '',
	author_id   TEXT NOT NULL DEFAULT '',
	thumbnail   TEXT NOT NULL DEFAULT '',
	watched_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS watch_detail (
	id     TEXT PRIMARY KEY REFERENCES watch_index(id) ON DELETE CASCADE,
	detail TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_watch_index_position ON watch_index(position);
`

// Manager handles loading and saving the watch history.
type Manager struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

// NewManager creates a history manager backed by the database at path.
// The database is opened lazily on first use.
func NewManager(path string) *Manager {
	return new(Manager{
		path: path,
	})
}

func (m *Manager) open() (*sql.DB, error) {
	if m.db != nil {
		return m.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	m.db = db
	return db, nil
}

// detail is the JSON blob stored per entry.
type detail struct {
	Item     video.Item      `json:"item"`
	Video    *video.Video    `json:"video,omitempty"`
	Playlist *video.Playlist `json:"playlist,omitempty"`
}

// Load returns the persisted entries, most recent first.
func (m *Manager) Load() ([]watch.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	db, err := m.open()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT i.id, i.kind, i.title, i.author, i.author_id, i.thumbnail, i.watched_at, COALESCE(d.detail, '')
		FROM watch_index i LEFT JOIN watch_detail d ON d.id = i.id
		ORDER BY i.position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []watch.Entry
	for rows.Next() {
		var (
			e         watch.Entry
			kind      string
			watchedAt int64
			blob      string
		)
		if err := rows.Scan(&e.Item.ID, &kind, &e.Item.Title, &e.Item.Author, &e.Item.AuthorID, &e.Item.Thumbnail, &watchedAt, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Item.Kind, _ = video.ParseKind(kind)
		e.WatchedAt = time.Unix(watchedAt, 0)

		if blob != "" {
			var d detail
			if err := json.Unmarshal([]byte(blob), &d); err == nil {
				e.Item = d.Item
				e.Video = d.Video
				e.Playlist = d.Playlist
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Save rewrites the history with the given entries in order.
func (m *Manager) Save(entries []watch.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	db, err := m.open()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM watch_detail`); err != nil {
		return fmt.Errorf("failed to clear history details: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM watch_index`); err != nil {
		return fmt.Errorf("failed to clear history index: %w", err)
	}

	insertIndex, err := tx.Prepare(`INSERT INTO watch_index (id, position, kind, title, author, author_id, thumbnail, watched_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer func() { _ = insertIndex.Close() }()

	insertDetail, err := tx.Prepare(`INSERT INTO watch_detail (id, detail) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare history detail insert: %w", err)
	}
	defer func() { _ = insertDetail.Close() }()

	for pos, e := range entries {
		item := e.Item
		if _, err := insertIndex.Exec(item.ID, pos, item.Kind.String(), item.Title, item.Author, item.AuthorID, item.Thumbnail, e.WatchedAt.Unix()); err != nil {
			return fmt.Errorf("failed to save history entry %s: %w", item.ID, err)
		}
		blob, err := json.Marshal(detail{Item: item, Video: e.Video, Playlist: e.Playlist})
		if err != nil {
			return fmt.Errorf("failed to encode history entry %s: %w", item.ID, err)
		}
		if _, err := insertDetail.Exec(item.ID, string(blob)); err != nil {
			return fmt.Errorf("failed to save history detail %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
