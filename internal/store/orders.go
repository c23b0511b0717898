package store

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"restoflow/internal/database"
	"restoflow/internal/models"
	"restoflow/internal/pricing"
)

const (
	insertOrderSQL = `INSERT INTO orders (customer_id, order_type, total_price, order_date_time, created_by_user)
		VALUES ($1, $2, $3::numeric, NOW(), $4)
		RETURNING order_id, order_date_time`

	insertOrderItemSQL = `INSERT INTO order_items (order_id, item_id, quantity) VALUES ($1, $2, $3)`

	listOrdersSQL = `SELECT o.order_id, o.customer_id, COALESCE(c.name, '') AS customer_name,
			o.order_type, o.total_price::text, o.order_date_time, o.created_by_user
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.customer_id
		ORDER BY o.order_date_time DESC`
)

type OrderLine struct {
	ItemID   int64
	Quantity int
}

type PlaceOrderInput struct {
	Customer  models.CustomerInfo
	OrderType string
	// ClientTotal is the till's own figure. It is compared, never stored.
	ClientTotal *decimal.Decimal
	CreatedBy   string
	Items       []OrderLine
}

func (in PlaceOrderInput) Validate() error {
	if strings.TrimSpace(in.Customer.Name) == "" {
		return ValidationError{Field: "customer.name", Reason: "is required"}
	}
	if !models.IsOrderType(in.OrderType) {
		return ValidationError{Field: "orderType", Reason: "must be one of dine-in, take-out, delivery"}
	}
	if len(in.Items) == 0 {
		return ValidationError{Field: "cart", Reason: "must contain at least one item"}
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return ValidationError{Field: "cart.quantity", Reason: "must be at least 1"}
		}
	}
	return nil
}

type PlacedOrder struct {
	OrderID    int64
	CustomerID int64
	OrderType  string
	CreatedBy  string
	CreatedAt  time.Time
	Lines      []pricing.Line
	Totals     pricing.Totals
	// TotalMismatch is set when ClientTotal was given and differs from
	// Totals.Total by more than pricing.Tolerance.
	TotalMismatch bool
}

// PlaceOrder resolves the customer, prices the cart from current menu rows
// and writes the header and its line items in one transaction. On any error
// nothing is left behind.
func (s *Store) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlacedOrder, error) {
	if err := in.Validate(); err != nil {
		return PlacedOrder{}, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return PlacedOrder{}, database.Wrap("begin order", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	customerID, err := resolveCustomer(ctx, tx, in.Customer)
	if err != nil {
		return PlacedOrder{}, err
	}

	prices, err := menuPrices(ctx, tx, distinctItemIDs(in.Items))
	if err != nil {
		return PlacedOrder{}, err
	}

	cart := pricing.NewCart()
	for _, item := range in.Items {
		price, ok := prices[item.ItemID]
		if !ok {
			return PlacedOrder{}, ItemNotFoundError{ItemID: item.ItemID}
		}
		cart = cart.Add(item.ItemID, price, item.Quantity)
	}
	totals := cart.Totals().Rounded()

	placed := PlacedOrder{
		CustomerID: customerID,
		OrderType:  in.OrderType,
		CreatedBy:  in.CreatedBy,
		Lines:      cart.Lines(),
		Totals:     totals,
	}
	if in.ClientTotal != nil {
		placed.TotalMismatch = !pricing.WithinTolerance(*in.ClientTotal, totals.Total)
	}

	err = tx.QueryRow(ctx, insertOrderSQL,
		customerID, in.OrderType, totals.Total.StringFixed(2), in.CreatedBy,
	).Scan(&placed.OrderID, &placed.CreatedAt)
	if err != nil {
		return PlacedOrder{}, database.Wrap("insert order", err)
	}

	for _, line := range placed.Lines {
		if _, err := tx.Exec(ctx, insertOrderItemSQL, placed.OrderID, line.ItemID, line.Quantity); err != nil {
			return PlacedOrder{}, database.Wrap("insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return PlacedOrder{}, database.Wrap("commit order", err)
	}
	committed = true
	return placed, nil
}

func distinctItemIDs(items []OrderLine) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ItemID]; ok {
			continue
		}
		seen[item.ItemID] = struct{}{}
		ids = append(ids, item.ItemID)
	}
	return ids
}

// ListOrders returns every order, newest first.
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, database.Wrap("list orders", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var (
			o     models.Order
			total string
		)
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.OrderType, &total, &o.CreatedAt, &o.CreatedBy); err != nil {
			return nil, database.Wrap("scan order", err)
		}
		if o.TotalPrice, err = models.ParsePrice(total); err != nil {
			return nil, database.Wrap("scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Wrap("list orders", err)
	}
	return orders, nil
}
