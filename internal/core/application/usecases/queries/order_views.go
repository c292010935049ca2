// Package queries contains read operations. Handlers read straight from the
// database with SQL and return flat views; they never load aggregates.
package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order as listed to staff.
type OrderView struct {
	ID            kernel.UUID
	CustomerName  string
	Kind          string
	Status        string
	PaymentMethod *string
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItemView
}

// OrderItemView is one line of an OrderView.
type OrderItemView struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	VariantID   *kernel.UUID
	VariantName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Note        string
	PlateNumber int
}

// loadOrders runs the order select built by filter and attaches the items of
// every returned order with one extra query.
func loadOrders(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			kind,
			status,
			payment_method,
			total,
			created_at,
			updated_at
		FROM orders
		`+filter, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	ids := make([]string, 0)

	for rows.Next() {
		var view OrderView
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&view.CustomerName,
			&view.Kind,
			&view.Status,
			&view.PaymentMethod,
			&view.Total,
			&view.CreatedAt,
			&view.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		view.Items = make([]OrderItemView, 0)
		index[id] = len(orders)
		ids = append(ids, id.String())
		orders = append(orders, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			id,
			product_id,
			product_name,
			variant_id,
			variant_name,
			quantity,
			unit_price,
			note,
			plate_number
		FROM order_items
		WHERE order_id = ANY(?)
		ORDER BY order_id, position
	`, pq.Array(ids)).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item OrderItemView
		var orderID, id, productID uuid.UUID
		var variantID uuid.NullUUID

		if err = itemRows.Scan(
			&orderID,
			&id,
			&productID,
			&item.ProductName,
			&variantID,
			&item.VariantName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Note,
			&item.PlateNumber,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromGoogle(productID); err != nil {
			return nil, err
		}
		if variantID.Valid {
			v, vErr := kernel.UUIDFromGoogle(variantID.UUID)
			if vErr != nil {
				return nil, vErr
			}
			item.VariantID = &v
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
