package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "tablepos-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "device", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("empty store returns empty lists", func(t *testing.T) {
		videos, err := store.ListVideos(ctx)
		if err != nil {
			t.Fatalf("ListVideos failed: %v", err)
		}
		if len(videos) != 0 {
			t.Errorf("Expected no videos, got %d", len(videos))
		}

		ids, err := store.ActiveVideoIDs(ctx)
		if err != nil {
			t.Fatalf("ActiveVideoIDs failed: %v", err)
		}
		if ids == nil || len(ids) != 0 {
			t.Errorf("Expected empty non-nil id list, got %v", ids)
		}
	})

	t.Run("SaveVideos generates IDs and round-trips", func(t *testing.T) {
		videos := []models.Video{
			{Title: "Summer menu", URL: "https://cdn.example.com/summer.mp4"},
			{ID: "fixed-id", Title: "Happy hour", URL: "https://cdn.example.com/happy.mp4"},
		}
		saved, err := store.SaveVideos(ctx, videos)
		if err != nil {
			t.Fatalf("SaveVideos failed: %v", err)
		}
		if videos[0].ID != "" {
			t.Errorf("Input slice was modified: %+v", videos[0])
		}
		if saved[0].ID == "" {
			t.Error("Expected video ID to be generated")
		}
		if saved[1].ID != "fixed-id" {
			t.Errorf("Existing ID was replaced: %s", saved[1].ID)
		}

		got, err := store.ListVideos(ctx)
		if err != nil {
			t.Fatalf("ListVideos failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 videos, got %d", len(got))
		}
		for i := range got {
			if got[i] != saved[i] {
				t.Errorf("Video %d mismatch: got %+v, want %+v", i, got[i], saved[i])
			}
		}
	})

	t.Run("SaveVideos replaces the whole list", func(t *testing.T) {
		if _, err := store.SaveVideos(ctx, []models.Video{{ID: "only", Title: "Only one"}}); err != nil {
			t.Fatalf("SaveVideos failed: %v", err)
		}
		got, err := store.ListVideos(ctx)
		if err != nil {
			t.Fatalf("ListVideos failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "only" {
			t.Errorf("Expected only the new list, got %+v", got)
		}
	})

	t.Run("SaveVideos rejects duplicate IDs", func(t *testing.T) {
		dup := []models.Video{{ID: "x", Title: "One"}, {ID: "x", Title: "Two"}}
		if _, err := store.SaveVideos(ctx, dup); !errors.Is(err, storage.ErrDuplicateVideo) {
			t.Fatalf("Expected ErrDuplicateVideo, got %v", err)
		}
		got, err := store.ListVideos(ctx)
		if err != nil {
			t.Fatalf("ListVideos failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "only" {
			t.Errorf("Rejected save changed the playlist: %+v", got)
		}
	})

	t.Run("active IDs round-trip", func(t *testing.T) {
		if err := store.SaveActiveVideoIDs(ctx, []string{"only", "fixed-id"}); err != nil {
			t.Fatalf("SaveActiveVideoIDs failed: %v", err)
		}
		ids, err := store.ActiveVideoIDs(ctx)
		if err != nil {
			t.Fatalf("ActiveVideoIDs failed: %v", err)
		}
		if len(ids) != 2 || ids[0] != "only" || ids[1] != "fixed-id" {
			t.Errorf("Active IDs mismatch: got %v", ids)
		}

		if err := store.SaveActiveVideoIDs(ctx, nil); err != nil {
			t.Fatalf("SaveActiveVideoIDs(nil) failed: %v", err)
		}
		ids, err = store.ActiveVideoIDs(ctx)
		if err != nil {
			t.Fatalf("ActiveVideoIDs failed: %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("Expected cleared rotation, got %v", ids)
		}
	})

	t.Run("data survives reopening", func(t *testing.T) {
		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to reopen store: %v", err)
		}
		defer reopened.Close()

		got, err := reopened.ListVideos(ctx)
		if err != nil {
			t.Fatalf("ListVideos failed: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("Expected 1 video after reopen, got %d", len(got))
		}
	})
}
