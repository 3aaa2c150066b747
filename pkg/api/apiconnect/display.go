package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/pkg/api"
)

// DisplayServiceName is the fully-qualified name of the DisplayService service.
const DisplayServiceName = "tablepos.v1.DisplayService"

const (
	DisplayServiceGetPlaylistProcedure     = "/tablepos.v1.DisplayService/GetPlaylist"
	DisplayServiceSavePlaylistProcedure    = "/tablepos.v1.DisplayService/SavePlaylist"
	DisplayServiceSetActiveVideosProcedure = "/tablepos.v1.DisplayService/SetActiveVideos"
	DisplayServiceWatchProcedure           = "/tablepos.v1.DisplayService/Watch"
	DisplayServiceGetScreenProcedure       = "/tablepos.v1.DisplayService/GetScreen"
)

// DisplayServiceHandler serves the customer display: its playlist and the
// stream of screen states.
type DisplayServiceHandler interface {
	GetPlaylist(context.Context, *connect.Request[api.GetPlaylistRequest]) (*connect.Response[api.PlaylistResponse], error)
	SavePlaylist(context.Context, *connect.Request[api.SavePlaylistRequest]) (*connect.Response[api.PlaylistResponse], error)
	SetActiveVideos(context.Context, *connect.Request[api.SetActiveVideosRequest]) (*connect.Response[api.PlaylistResponse], error)
	Watch(context.Context, *connect.Request[api.WatchDisplayRequest], *connect.ServerStream[api.DisplayMessage]) error
	GetScreen(context.Context, *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error)
}

func NewDisplayServiceHandler(svc DisplayServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		DisplayServiceGetPlaylistProcedure:     connect.NewUnaryHandler(DisplayServiceGetPlaylistProcedure, svc.GetPlaylist, opts...),
		DisplayServiceSavePlaylistProcedure:    connect.NewUnaryHandler(DisplayServiceSavePlaylistProcedure, svc.SavePlaylist, opts...),
		DisplayServiceSetActiveVideosProcedure: connect.NewUnaryHandler(DisplayServiceSetActiveVideosProcedure, svc.SetActiveVideos, opts...),
		DisplayServiceWatchProcedure:           connect.NewServerStreamHandler(DisplayServiceWatchProcedure, svc.Watch, opts...),
		DisplayServiceGetScreenProcedure:       connect.NewUnaryHandler(DisplayServiceGetScreenProcedure, svc.GetScreen, opts...),
	}
	return "/" + DisplayServiceName + "/", router(routes)
}

type DisplayServiceClient interface {
	GetPlaylist(context.Context, *connect.Request[api.GetPlaylistRequest]) (*connect.Response[api.PlaylistResponse], error)
	SavePlaylist(context.Context, *connect.Request[api.SavePlaylistRequest]) (*connect.Response[api.PlaylistResponse], error)
	SetActiveVideos(context.Context, *connect.Request[api.SetActiveVideosRequest]) (*connect.Response[api.PlaylistResponse], error)
	Watch(context.Context, *connect.Request[api.WatchDisplayRequest]) (*connect.ServerStreamForClient[api.DisplayMessage], error)
	GetScreen(context.Context, *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error)
}

func NewDisplayServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DisplayServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &displayServiceClient{
		getPlaylist:     connect.NewClient[api.GetPlaylistRequest, api.PlaylistResponse](httpClient, baseURL+DisplayServiceGetPlaylistProcedure, opts...),
		savePlaylist:    connect.NewClient[api.SavePlaylistRequest, api.PlaylistResponse](httpClient, baseURL+DisplayServiceSavePlaylistProcedure, opts...),
		setActiveVideos: connect.NewClient[api.SetActiveVideosRequest, api.PlaylistResponse](httpClient, baseURL+DisplayServiceSetActiveVideosProcedure, opts...),
		watch:           connect.NewClient[api.WatchDisplayRequest, api.DisplayMessage](httpClient, baseURL+DisplayServiceWatchProcedure, opts...),
		getScreen:       connect.NewClient[api.GetScreenRequest, api.GetScreenResponse](httpClient, baseURL+DisplayServiceGetScreenProcedure, opts...),
	}
}

type displayServiceClient struct {
	getPlaylist     *connect.Client[api.GetPlaylistRequest, api.PlaylistResponse]
	savePlaylist    *connect.Client[api.SavePlaylistRequest, api.PlaylistResponse]
	setActiveVideos *connect.Client[api.SetActiveVideosRequest, api.PlaylistResponse]
	watch           *connect.Client[api.WatchDisplayRequest, api.DisplayMessage]
	getScreen       *connect.Client[api.GetScreenRequest, api.GetScreenResponse]
}

func (c *displayServiceClient) GetPlaylist(ctx context.Context, req *connect.Request[api.GetPlaylistRequest]) (*connect.Response[api.PlaylistResponse], error) {
	return c.getPlaylist.CallUnary(ctx, req)
}

func (c *displayServiceClient) SavePlaylist(ctx context.Context, req *connect.Request[api.SavePlaylistRequest]) (*connect.Response[api.PlaylistResponse], error) {
	return c.savePlaylist.CallUnary(ctx, req)
}

func (c *displayServiceClient) SetActiveVideos(ctx context.Context, req *connect.Request[api.SetActiveVideosRequest]) (*connect.Response[api.PlaylistResponse], error) {
	return c.setActiveVideos.CallUnary(ctx, req)
}

func (c *displayServiceClient) Watch(ctx context.Context, req *connect.Request[api.WatchDisplayRequest]) (*connect.ServerStreamForClient[api.DisplayMessage], error) {
	return c.watch.CallServerStream(ctx, req)
}

func (c *displayServiceClient) GetScreen(ctx context.Context, req *connect.Request[api.GetScreenRequest]) (*connect.Response[api.GetScreenResponse], error) {
	return c.getScreen.CallUnary(ctx, req)
}
