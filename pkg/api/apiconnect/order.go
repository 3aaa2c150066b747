package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/pkg/api"
)

// OrderServiceName is the fully-qualified name of the OrderService service.
const OrderServiceName = "tablepos.v1.OrderService"

// Procedure paths of OrderService.
const (
	OrderServiceOpenOrderProcedure        = "/tablepos.v1.OrderService/OpenOrder"
	OrderServiceGetOrderProcedure         = "/tablepos.v1.OrderService/GetOrder"
	OrderServiceCloseOrderProcedure       = "/tablepos.v1.OrderService/CloseOrder"
	OrderServiceSetOrderDetailsProcedure  = "/tablepos.v1.OrderService/SetOrderDetails"
	OrderServiceAddProductProcedure       = "/tablepos.v1.OrderService/AddProduct"
	OrderServiceAddComboProcedure         = "/tablepos.v1.OrderService/AddCombo"
	OrderServiceChangeQuantityProcedure   = "/tablepos.v1.OrderService/ChangeQuantity"
	OrderServiceRemoveLineProcedure       = "/tablepos.v1.OrderService/RemoveLine"
	OrderServiceSetLineDiscountProcedure  = "/tablepos.v1.OrderService/SetLineDiscount"
	OrderServiceSetCheckDiscountProcedure = "/tablepos.v1.OrderService/SetCheckDiscount"
	OrderServiceAddPaymentProcedure       = "/tablepos.v1.OrderService/AddPayment"
	OrderServiceRemovePaymentProcedure    = "/tablepos.v1.OrderService/RemovePayment"
	OrderServiceCompleteOrderProcedure    = "/tablepos.v1.OrderService/CompleteOrder"
)

// OrderServiceHandler is implemented by the order-entry service.
type OrderServiceHandler interface {
	OpenOrder(context.Context, *connect.Request[api.OpenOrderRequest]) (*connect.Response[api.OrderResponse], error)
	GetOrder(context.Context, *connect.Request[api.GetOrderRequest]) (*connect.Response[api.OrderResponse], error)
	CloseOrder(context.Context, *connect.Request[api.CloseOrderRequest]) (*connect.Response[api.CloseOrderResponse], error)
	SetOrderDetails(context.Context, *connect.Request[api.SetOrderDetailsRequest]) (*connect.Response[api.OrderResponse], error)
	AddProduct(context.Context, *connect.Request[api.AddProductRequest]) (*connect.Response[api.OrderResponse], error)
	AddCombo(context.Context, *connect.Request[api.AddComboRequest]) (*connect.Response[api.OrderResponse], error)
	ChangeQuantity(context.Context, *connect.Request[api.ChangeQuantityRequest]) (*connect.Response[api.OrderResponse], error)
	RemoveLine(context.Context, *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.OrderResponse], error)
	SetLineDiscount(context.Context, *connect.Request[api.SetLineDiscountRequest]) (*connect.Response[api.OrderResponse], error)
	SetCheckDiscount(context.Context, *connect.Request[api.SetCheckDiscountRequest]) (*connect.Response[api.OrderResponse], error)
	AddPayment(context.Context, *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error)
	RemovePayment(context.Context, *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.OrderResponse], error)
	CompleteOrder(context.Context, *connect.Request[api.CompleteOrderRequest]) (*connect.Response[api.CompleteOrderResponse], error)
}

// NewOrderServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewOrderServiceHandler(svc OrderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		OrderServiceOpenOrderProcedure:        connect.NewUnaryHandler(OrderServiceOpenOrderProcedure, svc.OpenOrder, opts...),
		OrderServiceGetOrderProcedure:         connect.NewUnaryHandler(OrderServiceGetOrderProcedure, svc.GetOrder, opts...),
		OrderServiceCloseOrderProcedure:       connect.NewUnaryHandler(OrderServiceCloseOrderProcedure, svc.CloseOrder, opts...),
		OrderServiceSetOrderDetailsProcedure:  connect.NewUnaryHandler(OrderServiceSetOrderDetailsProcedure, svc.SetOrderDetails, opts...),
		OrderServiceAddProductProcedure:       connect.NewUnaryHandler(OrderServiceAddProductProcedure, svc.AddProduct, opts...),
		OrderServiceAddComboProcedure:         connect.NewUnaryHandler(OrderServiceAddComboProcedure, svc.AddCombo, opts...),
		OrderServiceChangeQuantityProcedure:   connect.NewUnaryHandler(OrderServiceChangeQuantityProcedure, svc.ChangeQuantity, opts...),
		OrderServiceRemoveLineProcedure:       connect.NewUnaryHandler(OrderServiceRemoveLineProcedure, svc.RemoveLine, opts...),
		OrderServiceSetLineDiscountProcedure:  connect.NewUnaryHandler(OrderServiceSetLineDiscountProcedure, svc.SetLineDiscount, opts...),
		OrderServiceSetCheckDiscountProcedure: connect.NewUnaryHandler(OrderServiceSetCheckDiscountProcedure, svc.SetCheckDiscount, opts...),
		OrderServiceAddPaymentProcedure:       connect.NewUnaryHandler(OrderServiceAddPaymentProcedure, svc.AddPayment, opts...),
		OrderServiceRemovePaymentProcedure:    connect.NewUnaryHandler(OrderServiceRemovePaymentProcedure, svc.RemovePayment, opts...),
		OrderServiceCompleteOrderProcedure:    connect.NewUnaryHandler(OrderServiceCompleteOrderProcedure, svc.CompleteOrder, opts...),
	}
	return "/" + OrderServiceName + "/", router(routes)
}

// OrderServiceClient is a client for the OrderService service.
type OrderServiceClient interface {
	OpenOrder(context.Context, *connect.Request[api.OpenOrderRequest]) (*connect.Response[api.OrderResponse], error)
	GetOrder(context.Context, *connect.Request[api.GetOrderRequest]) (*connect.Response[api.OrderResponse], error)
	CloseOrder(context.Context, *connect.Request[api.CloseOrderRequest]) (*connect.Response[api.CloseOrderResponse], error)
	SetOrderDetails(context.Context, *connect.Request[api.SetOrderDetailsRequest]) (*connect.Response[api.OrderResponse], error)
	AddProduct(context.Context, *connect.Request[api.AddProductRequest]) (*connect.Response[api.OrderResponse], error)
	AddCombo(context.Context, *connect.Request[api.AddComboRequest]) (*connect.Response[api.OrderResponse], error)
	ChangeQuantity(context.Context, *connect.Request[api.ChangeQuantityRequest]) (*connect.Response[api.OrderResponse], error)
	RemoveLine(context.Context, *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.OrderResponse], error)
	SetLineDiscount(context.Context, *connect.Request[api.SetLineDiscountRequest]) (*connect.Response[api.OrderResponse], error)
	SetCheckDiscount(context.Context, *connect.Request[api.SetCheckDiscountRequest]) (*connect.Response[api.OrderResponse], error)
	AddPayment(context.Context, *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error)
	RemovePayment(context.Context, *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.OrderResponse], error)
	CompleteOrder(context.Context, *connect.Request[api.CompleteOrderRequest]) (*connect.Response[api.CompleteOrderResponse], error)
}

// NewOrderServiceClient constructs a client for the OrderService service.
// baseURL is the scheme and host of the server, e.g. http://localhost:8080.
func NewOrderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) OrderServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &orderServiceClient{
		openOrder:        connect.NewClient[api.OpenOrderRequest, api.OrderResponse](httpClient, baseURL+OrderServiceOpenOrderProcedure, opts...),
		getOrder:         connect.NewClient[api.GetOrderRequest, api.OrderResponse](httpClient, baseURL+OrderServiceGetOrderProcedure, opts...),
		closeOrder:       connect.NewClient[api.CloseOrderRequest, api.CloseOrderResponse](httpClient, baseURL+OrderServiceCloseOrderProcedure, opts...),
		setOrderDetails:  connect.NewClient[api.SetOrderDetailsRequest, api.OrderResponse](httpClient, baseURL+OrderServiceSetOrderDetailsProcedure, opts...),
		addProduct:       connect.NewClient[api.AddProductRequest, api.OrderResponse](httpClient, baseURL+OrderServiceAddProductProcedure, opts...),
		addCombo:         connect.NewClient[api.AddComboRequest, api.OrderResponse](httpClient, baseURL+OrderServiceAddComboProcedure, opts...),
		changeQuantity:   connect.NewClient[api.ChangeQuantityRequest, api.OrderResponse](httpClient, baseURL+OrderServiceChangeQuantityProcedure, opts...),
		removeLine:       connect.NewClient[api.RemoveLineRequest, api.OrderResponse](httpClient, baseURL+OrderServiceRemoveLineProcedure, opts...),
		setLineDiscount:  connect.NewClient[api.SetLineDiscountRequest, api.OrderResponse](httpClient, baseURL+OrderServiceSetLineDiscountProcedure, opts...),
		setCheckDiscount: connect.NewClient[api.SetCheckDiscountRequest, api.OrderResponse](httpClient, baseURL+OrderServiceSetCheckDiscountProcedure, opts...),
		addPayment:       connect.NewClient[api.AddPaymentRequest, api.AddPaymentResponse](httpClient, baseURL+OrderServiceAddPaymentProcedure, opts...),
		removePayment:    connect.NewClient[api.RemovePaymentRequest, api.OrderResponse](httpClient, baseURL+OrderServiceRemovePaymentProcedure, opts...),
		completeOrder:    connect.NewClient[api.CompleteOrderRequest, api.CompleteOrderResponse](httpClient, baseURL+OrderServiceCompleteOrderProcedure, opts...),
	}
}

type orderServiceClient struct {
	openOrder        *connect.Client[api.OpenOrderRequest, api.OrderResponse]
	getOrder         *connect.Client[api.GetOrderRequest, api.OrderResponse]
	closeOrder       *connect.Client[api.CloseOrderRequest, api.CloseOrderResponse]
	setOrderDetails  *connect.Client[api.SetOrderDetailsRequest, api.OrderResponse]
	addProduct       *connect.Client[api.AddProductRequest, api.OrderResponse]
	addCombo         *connect.Client[api.AddComboRequest, api.OrderResponse]
	changeQuantity   *connect.Client[api.ChangeQuantityRequest, api.OrderResponse]
	removeLine       *connect.Client[api.RemoveLineRequest, api.OrderResponse]
	setLineDiscount  *connect.Client[api.SetLineDiscountRequest, api.OrderResponse]
	setCheckDiscount *connect.Client[api.SetCheckDiscountRequest, api.OrderResponse]
	addPayment       *connect.Client[api.AddPaymentRequest, api.AddPaymentResponse]
	removePayment    *connect.Client[api.RemovePaymentRequest, api.OrderResponse]
	completeOrder    *connect.Client[api.CompleteOrderRequest, api.CompleteOrderResponse]
}

func (c *orderServiceClient) OpenOrder(ctx context.Context, req *connect.Request[api.OpenOrderRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.openOrder.CallUnary(ctx, req)
}

func (c *orderServiceClient) GetOrder(ctx context.Context, req *connect.Request[api.GetOrderRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.getOrder.CallUnary(ctx, req)
}

func (c *orderServiceClient) CloseOrder(ctx context.Context, req *connect.Request[api.CloseOrderRequest]) (*connect.Response[api.CloseOrderResponse], error) {
	return c.closeOrder.CallUnary(ctx, req)
}

func (c *orderServiceClient) SetOrderDetails(ctx context.Context, req *connect.Request[api.SetOrderDetailsRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.setOrderDetails.CallUnary(ctx, req)
}

func (c *orderServiceClient) AddProduct(ctx context.Context, req *connect.Request[api.AddProductRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.addProduct.CallUnary(ctx, req)
}

func (c *orderServiceClient) AddCombo(ctx context.Context, req *connect.Request[api.AddComboRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.addCombo.CallUnary(ctx, req)
}

func (c *orderServiceClient) ChangeQuantity(ctx context.Context, req *connect.Request[api.ChangeQuantityRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.changeQuantity.CallUnary(ctx, req)
}

func (c *orderServiceClient) RemoveLine(ctx context.Context, req *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.removeLine.CallUnary(ctx, req)
}

func (c *orderServiceClient) SetLineDiscount(ctx context.Context, req *connect.Request[api.SetLineDiscountRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.setLineDiscount.CallUnary(ctx, req)
}

func (c *orderServiceClient) SetCheckDiscount(ctx context.Context, req *connect.Request[api.SetCheckDiscountRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.setCheckDiscount.CallUnary(ctx, req)
}

func (c *orderServiceClient) AddPayment(ctx context.Context, req *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error) {
	return c.addPayment.CallUnary(ctx, req)
}

func (c *orderServiceClient) RemovePayment(ctx context.Context, req *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.OrderResponse], error) {
	return c.removePayment.CallUnary(ctx, req)
}

func (c *orderServiceClient) CompleteOrder(ctx context.Context, req *connect.Request[api.CompleteOrderRequest]) (*connect.Response[api.CompleteOrderResponse], error) {
	return c.completeOrder.CallUnary(ctx, req)
}
