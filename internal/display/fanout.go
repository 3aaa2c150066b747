package display

import (
	"context"
	"errors"
	"log/slog"
)

// Fanout publishes every message to several channels. A failing channel
// does not stop delivery to the others.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, msg Message) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, msg); err != nil {
			slog.Warn("Display publish failed", "type", msg.Type, "order_id", msg.OrderID, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
