// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const (
	keyVideos       = "display.videos"
	keyActiveVideos = "display.active_videos"
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// get decodes the JSON value stored under key into v. A missing key leaves
// v untouched and reports found == false.
func (s *SQLiteStore) get(ctx context.Context, key string, v any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM device_kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// put replaces the value stored under key.
func (s *SQLiteStore) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO device_kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

type videoRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ListVideos returns the saved playlist.
func (s *SQLiteStore) ListVideos(ctx context.Context) ([]models.Video, error) {
	var records []videoRecord
	if _, err := s.get(ctx, keyVideos, &records); err != nil {
		return nil, err
	}
	videos := make([]models.Video, len(records))
	for i, r := range records {
		videos[i] = models.Video{ID: r.ID, Title: r.Title, URL: r.URL}
	}
	return videos, nil
}

// SaveVideos replaces the playlist, generating IDs for new videos.
func (s *SQLiteStore) SaveVideos(ctx context.Context, videos []models.Video) ([]models.Video, error) {
	saved := make([]models.Video, len(videos))
	records := make([]videoRecord, len(videos))
	seen := make(map[string]bool, len(videos))
	for i, v := range videos {
		if v.ID == "" {
			v.ID = uuid.New().String()
		}
		if seen[v.ID] {
			return nil, fmt.Errorf("%w: %s", storage.ErrDuplicateVideo, v.ID)
		}
		seen[v.ID] = true
		saved[i] = v
		records[i] = videoRecord{ID: v.ID, Title: v.Title, URL: v.URL}
	}
	if err := s.put(ctx, keyVideos, records); err != nil {
		return nil, err
	}
	return saved, nil
}

// ActiveVideoIDs returns the rotation.
func (s *SQLiteStore) ActiveVideoIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if _, err := s.get(ctx, keyActiveVideos, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveActiveVideoIDs replaces the rotation.
func (s *SQLiteStore) SaveActiveVideoIDs(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.put(ctx, keyActiveVideos, ids)
}
