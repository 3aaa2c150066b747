package api

// OrderScoped is implemented by every request addressed to an open order.
type OrderScoped interface {
	GetOrderID() string
}

func (r *GetOrderRequest) GetOrderID() string         { return r.OrderID }
func (r *CloseOrderRequest) GetOrderID() string       { return r.OrderID }
func (r *SetOrderDetailsRequest) GetOrderID() string  { return r.OrderID }
func (r *AddProductRequest) GetOrderID() string       { return r.OrderID }
func (r *AddComboRequest) GetOrderID() string         { return r.OrderID }
func (r *ChangeQuantityRequest) GetOrderID() string   { return r.OrderID }
func (r *RemoveLineRequest) GetOrderID() string       { return r.OrderID }
func (r *SetLineDiscountRequest) GetOrderID() string  { return r.OrderID }
func (r *SetCheckDiscountRequest) GetOrderID() string { return r.OrderID }
func (r *AddPaymentRequest) GetOrderID() string       { return r.OrderID }
func (r *RemovePaymentRequest) GetOrderID() string    { return r.OrderID }
func (r *CompleteOrderRequest) GetOrderID() string    { return r.OrderID }
