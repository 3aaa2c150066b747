package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/internal/calculator"
	"github.com/mmynk/tablepos/internal/catalog"
	"github.com/mmynk/tablepos/internal/order"
)

var errOrderNotFound = errors.New("order not found")

// toConnectError maps domain errors onto Connect codes. Anything not
// recognized is treated as a bad request.
func toConnectError(err error) error {
	var code connect.Code
	switch {
	case errors.Is(err, errOrderNotFound),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrLineNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, order.ErrOrderClosed),
		errors.Is(err, order.ErrNoPayments),
		errors.Is(err, order.ErrNotSettled),
		errors.Is(err, calculator.ErrOverpayment),
		errors.Is(err, calculator.ErrAlreadySettled):
		code = connect.CodeFailedPrecondition
	default:
		code = connect.CodeInvalidArgument
	}
	return connect.NewError(code, err)
}
