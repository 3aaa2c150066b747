// Package api defines the wire messages of the tablepos RPC services.
// Messages are plain structs encoded as JSON; field names follow the
// lowerCamelCase convention of the front-end.
package api

// Catalog

type ComboItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ExtraPrice float64 `json:"extraPrice,omitempty"`
	Hint       string  `json:"hint,omitempty"`
}

type OptionGroup struct {
	ID     string      `json:"id"`
	Name   string      `json:"name,omitempty"`
	Slot   string      `json:"slot,omitempty"`
	Policy string      `json:"policy"`
	Max    int         `json:"max,omitempty"`
	Items  []ComboItem `json:"items"`
}

type Product struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    float64       `json:"price"`
	Barcode  string        `json:"barcode,omitempty"`
	Category string        `json:"category,omitempty"`
	Combo    bool          `json:"combo,omitempty"`
	Groups   []OptionGroup `json:"groups,omitempty"`
}

type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type ListCatalogRequest struct{}

type ListCatalogResponse struct {
	Categories []Category `json:"categories"`
}

type PaymentKind struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	GivesChange bool   `json:"givesChange"`
}

type ListPaymentKindsRequest struct{}

type ListPaymentKindsResponse struct {
	Kinds []PaymentKind `json:"kinds"`
}

// ComboPick is one tap on a combo option, replayed in order. Remove
// untaps an item chosen earlier.
type ComboPick struct {
	GroupID string `json:"groupId"`
	ItemID  string `json:"itemId"`
	Remove  bool   `json:"remove,omitempty"`
}

type PreviewComboRequest struct {
	ProductID string      `json:"productId"`
	Picks     []ComboPick `json:"picks"`
	Quantity  int         `json:"quantity"`
}

type PreviewComboResponse struct {
	Valid          bool                   `json:"valid"`
	MissingGroups  []string               `json:"missingGroups,omitempty"`
	OverfullGroups []string               `json:"overfullGroups,omitempty"`
	Selection      map[string][]ComboItem `json:"selection"`
	Name           string                 `json:"name"`
	UnitPrice      float64                `json:"unitPrice"`
	Total          float64                `json:"total"`
}

// Orders

type ComboChoice struct {
	GroupID string      `json:"groupId"`
	Slot    string      `json:"slot,omitempty"`
	Items   []ComboItem `json:"items"`
}

type OrderLine struct {
	ID              string        `json:"id"`
	ProductID       string        `json:"productId"`
	Name            string        `json:"name"`
	UnitPrice       float64       `json:"unitPrice"`
	Quantity        int           `json:"quantity"`
	DiscountPercent float64       `json:"discountPercent,omitempty"`
	LineTotal       float64       `json:"lineTotal"`
	Combo           []ComboChoice `json:"combo,omitempty"`
}

type Payment struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	Amount   float64 `json:"amount"`
	Tendered float64 `json:"tendered"`
	Change   float64 `json:"change,omitempty"`
	At       int64   `json:"at"`
}

type Totals struct {
	Subtotal        float64 `json:"subtotal"`
	ProductDiscount float64 `json:"productDiscount"`
	CheckDiscount   float64 `json:"checkDiscount"`
	NetTotal        float64 `json:"netTotal"`
	TotalPaid       float64 `json:"totalPaid"`
	Remaining       float64 `json:"remaining"`
	Settled         bool    `json:"settled"`
}

type Order struct {
	ID                   string      `json:"id"`
	TableNumber          string      `json:"tableNumber,omitempty"`
	CustomerName         string      `json:"customerName,omitempty"`
	Note                 string      `json:"note,omitempty"`
	Status               string      `json:"status"`
	Lines                []OrderLine `json:"lines"`
	CheckDiscountPercent float64     `json:"checkDiscountPercent,omitempty"`
	Payments             []Payment   `json:"payments"`
	Totals               Totals      `json:"totals"`
	OpenedAt             int64       `json:"openedAt"`
	CompletedAt          int64       `json:"completedAt,omitempty"`
}

// OrderResponse is returned by every call that changes an order.
type OrderResponse struct {
	Order Order `json:"order"`
}

type OpenOrderRequest struct {
	TableNumber  string `json:"tableNumber,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	Note         string `json:"note,omitempty"`
}

type GetOrderRequest struct {
	OrderID string `json:"orderId"`
}

type CloseOrderRequest struct {
	OrderID string `json:"orderId"`
}

type CloseOrderResponse struct{}

type SetOrderDetailsRequest struct {
	OrderID      string `json:"orderId"`
	TableNumber  string `json:"tableNumber,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	Note         string `json:"note,omitempty"`
}

// AddProductRequest adds a plain product by ID or by scanned barcode.
type AddProductRequest struct {
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
}

type AddComboRequest struct {
	OrderID   string      `json:"orderId"`
	ProductID string      `json:"productId"`
	Picks     []ComboPick `json:"picks"`
	Quantity  int         `json:"quantity"`
}

// Quantity operations.
const (
	QuantityIncrement = "increment"
	QuantityDecrement = "decrement"
	QuantitySet       = "set"
)

type ChangeQuantityRequest struct {
	OrderID  string `json:"orderId"`
	LineID   string `json:"lineId"`
	Op       string `json:"op"`
	Quantity int    `json:"quantity,omitempty"`
}

type RemoveLineRequest struct {
	OrderID string `json:"orderId"`
	LineID  string `json:"lineId"`
}

type SetLineDiscountRequest struct {
	OrderID string  `json:"orderId"`
	LineID  string  `json:"lineId"`
	Percent float64 `json:"percent"`
}

type SetCheckDiscountRequest struct {
	OrderID string  `json:"orderId"`
	Percent float64 `json:"percent"`
}

type AddPaymentRequest struct {
	OrderID string  `json:"orderId"`
	Kind    string  `json:"kind"`
	Amount  float64 `json:"amount"`
}

type AddPaymentResponse struct {
	Order  Order   `json:"order"`
	Change float64 `json:"change"`
}

type RemovePaymentRequest struct {
	OrderID string `json:"orderId"`
	Index   int    `json:"index"`
}

type CompleteOrderRequest struct {
	OrderID string `json:"orderId"`
}

type CompleteOrderResponse struct {
	Order  Order   `json:"order"`
	Change float64 `json:"change"`
}

// Customer display

type Video struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Playlist struct {
	Videos    []Video  `json:"videos"`
	ActiveIDs []string `json:"activeIds"`
}

type GetPlaylistRequest struct{}

type SavePlaylistRequest struct {
	Videos []Video `json:"videos"`
}

type SetActiveVideosRequest struct {
	IDs []string `json:"ids"`
}

type PlaylistResponse struct {
	Playlist Playlist `json:"playlist"`
}

type WatchDisplayRequest struct{}

type GetScreenRequest struct{}

type GetScreenResponse struct {
	Screen *DisplayMessage `json:"screen"`
}

type DisplayItem struct {
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount,omitempty"`
	LineTotal       float64 `json:"lineTotal"`
}

type DisplayPaymentInfo struct {
	PaidAmount    float64 `json:"paidAmount"`
	ChangeAmount  float64 `json:"changeAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// DisplayMessage is a full customer screen state.
type DisplayMessage struct {
	Type            string              `json:"type"`
	OrderID         string              `json:"orderId,omitempty"`
	OrderItems      []DisplayItem       `json:"orderItems,omitempty"`
	CustomerName    string              `json:"customerName,omitempty"`
	OrderNote       string              `json:"orderNote,omitempty"`
	CheckDiscount   float64             `json:"checkDiscount,omitempty"`
	ProductDiscount float64             `json:"productDiscount,omitempty"`
	Total           float64             `json:"total,omitempty"`
	PaymentInfo     *DisplayPaymentInfo `json:"paymentInfo,omitempty"`
}
