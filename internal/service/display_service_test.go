package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/pkg/api"
)

func TestPlaylist(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	resp, err := ts.display.GetPlaylist(ctx, connect.NewRequest(&api.GetPlaylistRequest{}))
	if err != nil {
		t.Fatalf("GetPlaylist failed: %v", err)
	}
	if len(resp.Msg.Playlist.Videos) != 0 || len(resp.Msg.Playlist.ActiveIDs) != 0 {
		t.Fatalf("expected empty playlist, got %+v", resp.Msg.Playlist)
	}

	resp, err = ts.display.SavePlaylist(ctx, connect.NewRequest(&api.SavePlaylistRequest{
		Videos: []api.Video{
			{Title: "Summer menu", URL: "file:///media/summer.mp4"},
			{Title: "Happy hour", URL: "file:///media/happy-hour.mp4"},
		},
	}))
	if err != nil {
		t.Fatalf("SavePlaylist failed: %v", err)
	}
	videos := resp.Msg.Playlist.Videos
	if len(videos) != 2 || videos[0].ID == "" || videos[1].ID == "" {
		t.Fatalf("expected 2 videos with IDs, got %+v", videos)
	}

	resp, err = ts.display.SetActiveVideos(ctx, connect.NewRequest(&api.SetActiveVideosRequest{
		IDs: []string{videos[0].ID, videos[1].ID, videos[0].ID},
	}))
	if err != nil {
		t.Fatalf("SetActiveVideos failed: %v", err)
	}
	if got := resp.Msg.Playlist.ActiveIDs; len(got) != 2 {
		t.Errorf("expected duplicates dropped, got %v", got)
	}

	// Dropping a video from the playlist takes it out of rotation too.
	resp, err = ts.display.SavePlaylist(ctx, connect.NewRequest(&api.SavePlaylistRequest{Videos: videos[1:]}))
	if err != nil {
		t.Fatalf("SavePlaylist failed: %v", err)
	}
	if got := resp.Msg.Playlist.ActiveIDs; len(got) != 1 || got[0] != videos[1].ID {
		t.Errorf("expected only %s active, got %v", videos[1].ID, got)
	}

	_, err = ts.display.SetActiveVideos(ctx, connect.NewRequest(&api.SetActiveVideosRequest{IDs: []string{videos[0].ID}}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.display.SavePlaylist(ctx, connect.NewRequest(&api.SavePlaylistRequest{Videos: []api.Video{{Title: "No source"}}}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestSavePlaylistRejectsDuplicateIDs(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	_, err := ts.display.SavePlaylist(ctx, connect.NewRequest(&api.SavePlaylistRequest{
		Videos: []api.Video{
			{ID: "promo", Title: "Summer menu", URL: "file:///media/summer.mp4"},
			{ID: "promo", Title: "Happy hour", URL: "file:///media/happy-hour.mp4"},
		},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := ts.display.GetPlaylist(ctx, connect.NewRequest(&api.GetPlaylistRequest{}))
	if err != nil {
		t.Fatalf("GetPlaylist failed: %v", err)
	}
	if len(resp.Msg.Playlist.Videos) != 0 {
		t.Errorf("rejected playlist was stored: %+v", resp.Msg.Playlist.Videos)
	}
}

func TestWatchFollowsOrder(t *testing.T) {
	ts := setupTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	o := openOrder(t, ts)

	stream, err := ts.display.Watch(ctx, connect.NewRequest(&api.WatchDisplayRequest{}))
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stream.Close()

	next := func() *api.DisplayMessage {
		t.Helper()
		if !stream.Receive() {
			t.Fatalf("stream ended: %v", stream.Err())
		}
		return stream.Msg()
	}

	// The latest state is replayed to a screen that connects late.
	msg := next()
	if msg.Type != "ORDER_UPDATE" || msg.OrderID != o.ID || msg.CustomerName != "Dana" {
		t.Fatalf("unexpected first message: %+v", msg)
	}

	if _, err := ts.orders.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{OrderID: o.ID, ProductID: "cola"})); err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	msg = next()
	if len(msg.OrderItems) != 1 || msg.OrderItems[0].Name != "Cola" || !approx(msg.Total, 3.2) {
		t.Errorf("unexpected update: %+v", msg)
	}

	if _, err := ts.orders.AddPayment(ctx, connect.NewRequest(&api.AddPaymentRequest{OrderID: o.ID, Kind: "cash", Amount: 5})); err != nil {
		t.Fatalf("AddPayment failed: %v", err)
	}
	next()
	if _, err := ts.orders.CompleteOrder(ctx, connect.NewRequest(&api.CompleteOrderRequest{OrderID: o.ID})); err != nil {
		t.Fatalf("CompleteOrder failed: %v", err)
	}
	msg = next()
	if msg.Type != "PAYMENT_COMPLETE" || msg.PaymentInfo == nil {
		t.Fatalf("expected PAYMENT_COMPLETE with payment info, got %+v", msg)
	}
	if !approx(msg.PaymentInfo.PaidAmount, 5) || !approx(msg.PaymentInfo.ChangeAmount, 1.8) || msg.PaymentInfo.PaymentMethod != "cash" {
		t.Errorf("unexpected payment info: %+v", msg.PaymentInfo)
	}

	if _, err := ts.orders.CloseOrder(ctx, connect.NewRequest(&api.CloseOrderRequest{OrderID: o.ID})); err != nil {
		t.Fatalf("CloseOrder failed: %v", err)
	}
	if msg = next(); msg.Type != "SHOW_WELCOME" {
		t.Errorf("expected SHOW_WELCOME, got %s", msg.Type)
	}
}

func TestGetScreenMirrorsDisplay(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	screen := func() *api.DisplayMessage {
		t.Helper()
		resp, err := ts.display.GetScreen(ctx, connect.NewRequest(&api.GetScreenRequest{}))
		if err != nil {
			t.Fatalf("GetScreen failed: %v", err)
		}
		return resp.Msg.Screen
	}

	if got := screen(); got.Type != "SHOW_WELCOME" {
		t.Fatalf("expected welcome screen at start, got %+v", got)
	}

	o := openOrder(t, ts)
	if _, err := ts.orders.AddProduct(ctx, connect.NewRequest(&api.AddProductRequest{OrderID: o.ID, ProductID: "espresso"})); err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	waitFor(t, "espresso on screen", func() bool {
		got := screen()
		return got.Type == "ORDER_UPDATE" && len(got.OrderItems) == 1 && approx(got.Total, 2.4)
	})

	if _, err := ts.orders.CloseOrder(ctx, connect.NewRequest(&api.CloseOrderRequest{OrderID: o.ID})); err != nil {
		t.Fatalf("CloseOrder failed: %v", err)
	}
	waitFor(t, "welcome screen", func() bool { return screen().Type == "SHOW_WELCOME" })
}
