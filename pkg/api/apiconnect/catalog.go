package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/pkg/api"
)

// CatalogServiceName is the fully-qualified name of the CatalogService service.
const CatalogServiceName = "tablepos.v1.CatalogService"

const (
	CatalogServiceListCatalogProcedure      = "/tablepos.v1.CatalogService/ListCatalog"
	CatalogServiceListPaymentKindsProcedure = "/tablepos.v1.CatalogService/ListPaymentKinds"
	CatalogServicePreviewComboProcedure     = "/tablepos.v1.CatalogService/PreviewCombo"
)

type CatalogServiceHandler interface {
	ListCatalog(context.Context, *connect.Request[api.ListCatalogRequest]) (*connect.Response[api.ListCatalogResponse], error)
	ListPaymentKinds(context.Context, *connect.Request[api.ListPaymentKindsRequest]) (*connect.Response[api.ListPaymentKindsResponse], error)
	PreviewCombo(context.Context, *connect.Request[api.PreviewComboRequest]) (*connect.Response[api.PreviewComboResponse], error)
}

func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		CatalogServiceListCatalogProcedure:      connect.NewUnaryHandler(CatalogServiceListCatalogProcedure, svc.ListCatalog, opts...),
		CatalogServiceListPaymentKindsProcedure: connect.NewUnaryHandler(CatalogServiceListPaymentKindsProcedure, svc.ListPaymentKinds, opts...),
		CatalogServicePreviewComboProcedure:     connect.NewUnaryHandler(CatalogServicePreviewComboProcedure, svc.PreviewCombo, opts...),
	}
	return "/" + CatalogServiceName + "/", router(routes)
}

type CatalogServiceClient interface {
	ListCatalog(context.Context, *connect.Request[api.ListCatalogRequest]) (*connect.Response[api.ListCatalogResponse], error)
	ListPaymentKinds(context.Context, *connect.Request[api.ListPaymentKindsRequest]) (*connect.Response[api.ListPaymentKindsResponse], error)
	PreviewCombo(context.Context, *connect.Request[api.PreviewComboRequest]) (*connect.Response[api.PreviewComboResponse], error)
}

func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &catalogServiceClient{
		listCatalog:      connect.NewClient[api.ListCatalogRequest, api.ListCatalogResponse](httpClient, baseURL+CatalogServiceListCatalogProcedure, opts...),
		listPaymentKinds: connect.NewClient[api.ListPaymentKindsRequest, api.ListPaymentKindsResponse](httpClient, baseURL+CatalogServiceListPaymentKindsProcedure, opts...),
		previewCombo:     connect.NewClient[api.PreviewComboRequest, api.PreviewComboResponse](httpClient, baseURL+CatalogServicePreviewComboProcedure, opts...),
	}
}

type catalogServiceClient struct {
	listCatalog      *connect.Client[api.ListCatalogRequest, api.ListCatalogResponse]
	listPaymentKinds *connect.Client[api.ListPaymentKindsRequest, api.ListPaymentKindsResponse]
	previewCombo     *connect.Client[api.PreviewComboRequest, api.PreviewComboResponse]
}

func (c *catalogServiceClient) ListCatalog(ctx context.Context, req *connect.Request[api.ListCatalogRequest]) (*connect.Response[api.ListCatalogResponse], error) {
	return c.listCatalog.CallUnary(ctx, req)
}

func (c *catalogServiceClient) ListPaymentKinds(ctx context.Context, req *connect.Request[api.ListPaymentKindsRequest]) (*connect.Response[api.ListPaymentKindsResponse], error) {
	return c.listPaymentKinds.CallUnary(ctx, req)
}

func (c *catalogServiceClient) PreviewCombo(ctx context.Context, req *connect.Request[api.PreviewComboRequest]) (*connect.Response[api.PreviewComboResponse], error) {
	return c.previewCombo.CallUnary(ctx, req)
}
