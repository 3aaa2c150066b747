// Package storage provides abstractions for the terminal's local device storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tablepos/internal/models"
)

// ErrDuplicateVideo is returned when a playlist names the same video ID twice.
var ErrDuplicateVideo = errors.New("duplicate video id")

// Store is the key-value device storage behind the customer display.
// Lists are always read and written whole; orders are never stored.
type Store interface {
	// ListVideos returns the saved playlist, empty when nothing was saved.
	ListVideos(ctx context.Context) ([]models.Video, error)

	// SaveVideos replaces the playlist and returns it as stored, with
	// IDs generated for videos that had none. The input is not modified.
	SaveVideos(ctx context.Context, videos []models.Video) ([]models.Video, error)

	// ActiveVideoIDs returns the IDs of the videos currently in rotation.
	ActiveVideoIDs(ctx context.Context) ([]string, error)

	// SaveActiveVideoIDs replaces the rotation.
	SaveActiveVideoIDs(ctx context.Context, ids []string) error

	// Close releases any resources held by the store.
	Close() error
}
