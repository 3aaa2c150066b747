package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/internal/display"
	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/internal/storage"
	"github.com/mmynk/tablepos/pkg/api"
	"github.com/mmynk/tablepos/pkg/api/apiconnect"
)

var _ apiconnect.DisplayServiceHandler = (*DisplayService)(nil)

// DisplayService implements the Connect DisplayService: the idle-screen
// playlist kept in device storage and the live stream of screen states.
type DisplayService struct {
	store  storage.Store
	hub    *display.Hub
	screen *display.Screen
}

// NewDisplayService serves the playlist from store and screen states from
// hub. screen mirrors what the customer display currently shows.
func NewDisplayService(store storage.Store, hub *display.Hub, screen *display.Screen) *DisplayService {
	return &DisplayService{store: store, hub: hub, screen: screen}
}

func (s *DisplayService) playlist(ctx context.Context) (*connect.Response[api.PlaylistResponse], error) {
	videos, err := s.store.ListVideos(ctx)
	if err != nil {
		slog.Error("ListVideos failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	active, err := s.store.ActiveVideoIDs(ctx)
	if err != nil {
		slog.Error("ActiveVideoIDs failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.PlaylistResponse{Playlist: toAPIPlaylist(videos, active)}), nil
}

func (s *DisplayService) GetPlaylist(ctx context.Context, req *connect.Request[api.GetPlaylistRequest]) (*connect.Response[api.PlaylistResponse], error) {
	return s.playlist(ctx)
}

// SavePlaylist replaces the playlist. Active IDs that no longer name a
// video are dropped from the rotation.
func (s *DisplayService) SavePlaylist(ctx context.Context, req *connect.Request[api.SavePlaylistRequest]) (*connect.Response[api.PlaylistResponse], error) {
	videos := make([]models.Video, len(req.Msg.Videos))
	for i, v := range req.Msg.Videos {
		if strings.TrimSpace(v.URL) == "" {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("video %d has no url", i+1))
		}
		videos[i] = models.Video{ID: v.ID, Title: v.Title, URL: v.URL}
	}
	saved, err := s.store.SaveVideos(ctx, videos)
	if errors.Is(err, storage.ErrDuplicateVideo) {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err != nil {
		slog.Error("SaveVideos failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	active, err := s.store.ActiveVideoIDs(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	known := make(map[string]bool, len(saved))
	for _, v := range saved {
		known[v.ID] = true
	}
	kept := active[:0:0]
	for _, id := range active {
		if known[id] {
			kept = append(kept, id)
		}
	}
	if len(kept) != len(active) {
		if err := s.store.SaveActiveVideoIDs(ctx, kept); err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	slog.Info("Playlist saved", "videos", len(saved), "active", len(kept))
	return s.playlist(ctx)
}

// SetActiveVideos replaces the rotation. Every ID must name a saved video;
// duplicates are ignored.
func (s *DisplayService) SetActiveVideos(ctx context.Context, req *connect.Request[api.SetActiveVideosRequest]) (*connect.Response[api.PlaylistResponse], error) {
	videos, err := s.store.ListVideos(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	known := make(map[string]bool, len(videos))
	for _, v := range videos {
		known[v.ID] = true
	}

	seen := make(map[string]bool, len(req.Msg.IDs))
	ids := make([]string, 0, len(req.Msg.IDs))
	for _, id := range req.Msg.IDs {
		if !known[id] {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown video %q", id))
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if err := s.store.SaveActiveVideoIDs(ctx, ids); err != nil {
		slog.Error("SaveActiveVideoIDs failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return s.playlist(ctx)
}

// Watch streams screen states to a customer display, starting with the
// current one. It ends when the client goes away.
func (s *DisplayService) Watch(ctx context.Context, req *connect.Request[api.WatchDisplayRequest], stream *connect.ServerStream[api.DisplayMessage]) error {
	ch, unsubscribe := s.hub.Subscribe()
	defer unsubscribe()

	slog.Info("Display connected", "peer", req.Peer().Addr, "subscribers", s.hub.Subscribers())
	defer slog.Info("Display disconnected", "peer", req.Peer().Addr)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(toAPIMessage(msg)); err != nil {
				return err
			}
		}
	}
}

// GetScreen returns the screen state the customer display is showing, for
// terminals that poll instead of streaming.
func (s *DisplayService) GetScreen(ctx context.Context, req *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error) {
	return connect.NewResponse(&api.GetScreenResponse{Screen: toAPIMessage(s.screen.Current())}), nil
}
