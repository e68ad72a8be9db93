package entity

import "github.com/shopspring/decimal"

// Product belongs to exactly one category, referenced by id.
// Price is an exact decimal (NUMERIC in the database); it must never
// pass through a float.
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID int64           `json:"category_id"`
}
