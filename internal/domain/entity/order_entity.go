package entity

// LineItem is the view of an order_line_items row carried inside an
// Order: which product and how many units. Repeated additions of the
// same product stay separate entries; nothing merges them at read time.
type LineItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order is a user's cart (IsCompleted false) or a finished purchase.
// LineItems is a point-in-time materialization from the line-item join,
// not a live reference.
type Order struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	IsCompleted bool       `json:"is_completed"`
	LineItems   []LineItem `json:"products"`
}

// OrderLineItem is the full line-item row, including its surrogate key.
type OrderLineItem struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
