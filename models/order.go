package models

import "github.com/shopspring/decimal"

// Order is a client's intended trade as loaded from the client_orders table.
// OrderDate is an ISO date (YYYY-MM-DD); matching against executions is
// exact-equality on the string, no normalization.
type Order struct {
	OrderID    string          `db:"order_id"`
	ClientID   string          `db:"client_id"`
	Symbol     string          `db:"symbol"`
	Quantity   int64           `db:"quantity"`
	OrderPrice decimal.Decimal `db:"order_price"`
	OrderDate  string          `db:"order_date"`
}
