package store

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"restoflow/internal/database"
	"restoflow/internal/models"
)

const (
	listMenuSQL = `SELECT item_id, name, category, price::text, is_available FROM menu_items ORDER BY item_id`

	insertMenuItemSQL = `INSERT INTO menu_items (name, category, price, is_available)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING item_id`

	updateMenuAvailabilitySQL = `UPDATE menu_items SET is_available = $1 WHERE item_id = $2`

	selectMenuPricesSQL = `SELECT item_id, price::text FROM menu_items WHERE item_id = ANY($1)`
)

type NewMenuItem struct {
	Name        string
	Category    string
	Price       models.Price
	IsAvailable bool
}

func (in NewMenuItem) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ValidationError{Field: "name", Reason: "is required"}
	}
	if !models.IsCategory(in.Category) {
		return ValidationError{Field: "category", Reason: "must be one of starter, main, dessert, drinks"}
	}
	if in.Price.IsNegative() {
		return ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

func (s *Store) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.Query(ctx, listMenuSQL)
	if err != nil {
		return nil, database.Wrap("list menu", err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var (
			item  models.MenuItem
			price string
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &price, &item.IsAvailable); err != nil {
			return nil, database.Wrap("scan menu item", err)
		}
		if item.Price, err = models.ParsePrice(price); err != nil {
			return nil, database.Wrap("scan menu item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Wrap("list menu", err)
	}
	return items, nil
}

func (s *Store) CreateMenuItem(ctx context.Context, in NewMenuItem) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := s.db.QueryRow(ctx, insertMenuItemSQL,
		strings.TrimSpace(in.Name), in.Category, in.Price.StringFixed(2), in.IsAvailable,
	).Scan(&id)
	if err != nil {
		return 0, database.Wrap("insert menu item", err)
	}
	return id, nil
}

// SetMenuItemAvailability changes is_available and nothing else.
func (s *Store) SetMenuItemAvailability(ctx context.Context, id int64, available bool) error {
	tag, err := s.db.Exec(ctx, updateMenuAvailabilitySQL, available, id)
	if err != nil {
		return database.Wrap("update menu availability", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// menuPrices loads the current price of each id. Ids with no row are simply
// absent from the result.
func menuPrices(ctx context.Context, q database.Querier, ids []int64) (map[int64]decimal.Decimal, error) {
	rows, err := q.Query(ctx, selectMenuPricesSQL, ids)
	if err != nil {
		return nil, database.Wrap("select menu prices", err)
	}
	defer rows.Close()

	prices := make(map[int64]decimal.Decimal, len(ids))
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, database.Wrap("scan menu price", err)
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, database.Wrap("parse menu price", err)
		}
		prices[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, database.Wrap("select menu prices", err)
	}
	return prices, nil
}
