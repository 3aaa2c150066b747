package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/internal/calculator"
	"github.com/mmynk/tablepos/internal/catalog"
	"github.com/mmynk/tablepos/internal/display"
	"github.com/mmynk/tablepos/internal/metrics"
	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/internal/order"
	"github.com/mmynk/tablepos/pkg/api"
	"github.com/mmynk/tablepos/pkg/api/apiconnect"
)

var _ apiconnect.OrderServiceHandler = (*OrderService)(nil)

// OrderService implements the Connect OrderService. Open orders live in
// memory only; closing an order discards it.
type OrderService struct {
	catalog *catalog.Catalog
	display *display.Queue
	metrics *metrics.Metrics
	now     func() time.Time

	mu     sync.Mutex
	orders map[string]order.State
}

// displayBacklog bounds the display messages waiting on a slow channel.
const displayBacklog = 64

// NewOrderService creates a new OrderService over the loaded catalog. Every
// change to an order is pushed to pub from a background goroutine; call
// Close to flush and stop it.
func NewOrderService(cat *catalog.Catalog, pub display.Publisher, m *metrics.Metrics) *OrderService {
	return &OrderService{
		catalog: cat,
		display: display.NewQueue(pub, displayBacklog, m.DisplayDropped.Inc),
		metrics: m,
		now:     time.Now,
		orders:  make(map[string]order.State),
	}
}

// Close delivers pending display messages and stops the delivery goroutine.
func (s *OrderService) Close() {
	s.display.Close()
}

// publish enqueues msg without blocking. Callers hold s.mu so the queue
// order matches the order changes were applied in.
func (s *OrderService) publish(ctx context.Context, msg display.Message) {
	if err := s.display.Publish(ctx, msg); err != nil {
		slog.Warn("Display publish failed", "type", msg.Type, "order_id", msg.OrderID, "error", err)
	}
}

// update applies fn to the order under the service lock, stores the result
// and queues its snapshot for the display. The display sees updates in the
// order they were applied.
func (s *OrderService) update(ctx context.Context, id string, fn func(order.State) (order.State, error)) (*connect.Response[api.OrderResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.orders[id]
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errOrderNotFound, id))
	}
	next, err := fn(st)
	if err != nil {
		return nil, toConnectError(err)
	}
	s.orders[id] = next
	s.publish(ctx, display.OrderUpdate(next))
	return connect.NewResponse(&api.OrderResponse{Order: toAPIOrder(next)}), nil
}

// OpenOrder starts an empty order.
func (s *OrderService) OpenOrder(ctx context.Context, req *connect.Request[api.OpenOrderRequest]) (*connect.Response[api.OrderResponse], error) {
	st, err := order.WithDetails(order.New("", s.now()), req.Msg.TableNumber, req.Msg.CustomerName, req.Msg.Note)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[st.ID] = st
	s.publish(ctx, display.OrderUpdate(st))

	slog.Info("Order opened", "order_id", st.ID, "table", st.TableNumber)
	return connect.NewResponse(&api.OrderResponse{Order: toAPIOrder(st)}), nil
}

// GetOrder returns the current state of an order.
func (s *OrderService) GetOrder(ctx context.Context, req *connect.Request[api.GetOrderRequest]) (*connect.Response[api.OrderResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.orders[req.Msg.OrderID]
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errOrderNotFound, req.Msg.OrderID))
	}
	return connect.NewResponse(&api.OrderResponse{Order: toAPIOrder(st)}), nil
}

// CloseOrder discards an order, paid or not, and returns the customer
// display to the welcome screen.
func (s *OrderService) CloseOrder(ctx context.Context, req *connect.Request[api.CloseOrderRequest]) (*connect.Response[api.CloseOrderResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.orders[req.Msg.OrderID]
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errOrderNotFound, req.Msg.OrderID))
	}
	delete(s.orders, st.ID)
	s.publish(ctx, display.Welcome())

	slog.Info("Order closed", "order_id", st.ID, "status", st.Status)
	return connect.NewResponse(&api.CloseOrderResponse{}), nil
}

func (s *OrderService) SetOrderDetails(ctx context.Context, req *connect.Request[api.SetOrderDetailsRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		return order.WithDetails(st, req.Msg.TableNumber, req.Msg.CustomerName, req.Msg.Note)
	})
}

// AddProduct adds a plain product, looked up by barcode when one is given.
func (s *OrderService) AddProduct(ctx context.Context, req *connect.Request[api.AddProductRequest]) (*connect.Response[api.OrderResponse], error) {
	var (
		p   models.Product
		err error
	)
	if req.Msg.Barcode != "" {
		p, err = s.catalog.ByBarcode(req.Msg.Barcode)
	} else {
		p, err = s.catalog.Product(req.Msg.ProductID)
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		return order.AddProduct(st, p)
	})
}

// AddCombo replays the picks against the combo's option groups and adds
// the finished meal.
func (s *OrderService) AddCombo(ctx context.Context, req *connect.Request[api.AddComboRequest]) (*connect.Response[api.OrderResponse], error) {
	p, err := s.catalog.Product(req.Msg.ProductID)
	if err != nil {
		return nil, toConnectError(err)
	}
	sel, err := buildSelection(p, req.Msg.Picks)
	if err != nil {
		return nil, toConnectError(err)
	}
	qty := req.Msg.Quantity
	if qty == 0 {
		qty = 1
	}
	return s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		return order.AddCombo(st, p, sel, qty)
	})
}

func (s *OrderService) ChangeQuantity(ctx context.Context, req *connect.Request[api.ChangeQuantityRequest]) (*connect.Response[api.OrderResponse], error) {
	var fn func(order.State) (order.State, error)
	switch req.Msg.Op {
	case api.QuantityIncrement:
		fn = func(st order.State) (order.State, error) { return order.Increment(st, req.Msg.LineID) }
	case api.QuantityDecrement:
		fn = func(st order.State) (order.State, error) { return order.Decrement(st, req.Msg.LineID) }
	case api.QuantitySet:
		fn = func(st order.State) (order.State, error) {
			return order.SetQuantity(st, req.Msg.LineID, req.Msg.Quantity)
		}
	default:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown quantity op %q", req.Msg.Op))
	}
	return s.update(ctx, req.Msg.OrderID, fn)
}

func (s *OrderService) RemoveLine(ctx context.Context, req *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		return order.RemoveLine(st, req.Msg.LineID)
	})
}

func (s *OrderService) SetLineDiscount(ctx context.Context, req *connect.Request[api.SetLineDiscountRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		return order.SetLineDiscount(st, req.Msg.LineID, req.Msg.Percent)
	})
}

func (s *OrderService) SetCheckDiscount(ctx context.Context, req *connect.Request[api.SetCheckDiscountRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		return order.SetCheckDiscount(st, req.Msg.Percent)
	})
}

// AddPayment tenders an amount against the order. Cash above the remaining
// balance comes back as change; other kinds may not exceed it.
func (s *OrderService) AddPayment(ctx context.Context, req *connect.Request[api.AddPaymentRequest]) (*connect.Response[api.AddPaymentResponse], error) {
	kind, ok := models.ParsePaymentKind(req.Msg.Kind)
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %q", calculator.ErrUnknownKind, req.Msg.Kind))
	}

	var change float64
	resp, err := s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		next, res, err := order.Pay(st, kind, req.Msg.Amount, s.now())
		change = res.Change
		return next, err
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Payment added", "order_id", req.Msg.OrderID, "kind", kind, "amount", req.Msg.Amount, "change", change)
	return connect.NewResponse(&api.AddPaymentResponse{
		Order:  resp.Msg.Order,
		Change: change,
	}), nil
}

func (s *OrderService) RemovePayment(ctx context.Context, req *connect.Request[api.RemovePaymentRequest]) (*connect.Response[api.OrderResponse], error) {
	return s.update(ctx, req.Msg.OrderID, func(st order.State) (order.State, error) {
		return order.RemovePayment(st, req.Msg.Index)
	})
}

// CompleteOrder closes a fully paid order and shows the payment summary
// on the customer display.
func (s *OrderService) CompleteOrder(ctx context.Context, req *connect.Request[api.CompleteOrderRequest]) (*connect.Response[api.CompleteOrderResponse], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.orders[req.Msg.OrderID]
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errOrderNotFound, req.Msg.OrderID))
	}
	done, err := order.Complete(st, s.now())
	if err != nil {
		return nil, toConnectError(err)
	}
	s.orders[done.ID] = done
	s.publish(ctx, display.PaymentComplete(done))

	change := order.Change(done)
	s.metrics.OrdersCompleted.Inc()
	for _, p := range done.Payments {
		s.metrics.Payments.WithLabelValues(p.Kind.String()).Add(p.Amount)
	}
	s.metrics.ChangeGiven.Add(change)

	slog.Info("Order completed",
		"order_id", done.ID,
		"net_total", order.Totals(done).NetTotal,
		"payments", len(done.Payments),
		"change", change,
	)
	return connect.NewResponse(&api.CompleteOrderResponse{
		Order:  toAPIOrder(done),
		Change: change,
	}), nil
}
