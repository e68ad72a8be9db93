package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/storeward/storefront-api/internal/domain/entity"
)

// foldOrderRows collapses flat join rows (one per line item, columns
// order_id, user_id, is_completed, product_id, quantity) into nested
// orders. Grouping is an explicit map keyed on order id, so it does not
// depend on rows for the same order being contiguous; the first row
// seen for an order fixes its position in the result, and user_id /
// is_completed are constant within a group by construction of the join.
// Line items stay one entry per row: two rows for the same product are
// two entries.
func foldOrderRows(rows pgx.Rows) ([]entity.Order, error) {
	var out []entity.Order
	index := make(map[int64]int)

	for rows.Next() {
		var (
			orderID     int64
			userID      string
			isCompleted bool
			item        entity.LineItem
		)
		if err := rows.Scan(&orderID, &userID, &isCompleted, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}

		i, ok := index[orderID]
		if !ok {
			i = len(out)
			index[orderID] = i
			out = append(out, entity.Order{ID: orderID, UserID: userID, IsCompleted: isCompleted})
		}
		out[i].LineItems = append(out[i].LineItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanProducts reads product rows (id, name, price as text,
// category_id) keeping prices exact.
func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	var out []entity.Product
	for rows.Next() {
		var (
			p     entity.Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.CategoryID); err != nil {
			return nil, err
		}
		var err error
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
