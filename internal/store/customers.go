package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"restoflow/internal/database"
	"restoflow/internal/models"
)

const (
	selectCustomerIDSQL = `SELECT customer_id FROM customers WHERE name = $1 AND phone = $2`

	// The unique (name, phone) index turns a lost race into an empty
	// RETURNING set instead of a duplicate row.
	insertCustomerSQL = `INSERT INTO customers (name, phone, address) VALUES ($1, $2, $3)
		ON CONFLICT (name, phone) DO NOTHING
		RETURNING customer_id`

	listCustomersSQL = `SELECT customer_id, name, phone, address FROM customers ORDER BY customer_id`
)

// ResolveCustomer returns the id of the customer with this exact name and
// phone, creating the row when none exists. The address of an existing
// customer is never updated.
func (s *Store) ResolveCustomer(ctx context.Context, info models.CustomerInfo) (int64, error) {
	return resolveCustomer(ctx, s.db, info)
}

// FindCustomer is lookup only and returns ErrCustomerNotFound when absent.
func (s *Store) FindCustomer(ctx context.Context, name, phone string) (int64, error) {
	return findCustomer(ctx, s.db, name, phone)
}

func resolveCustomer(ctx context.Context, q database.Querier, info models.CustomerInfo) (int64, error) {
	id, err := findCustomer(ctx, q, info.Name, info.Phone)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrCustomerNotFound) {
		return 0, err
	}

	err = q.QueryRow(ctx, insertCustomerSQL, info.Name, info.Phone, info.Address).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, database.Wrap("insert customer", err)
	}

	// Another request inserted the same customer between our select and insert.
	return findCustomer(ctx, q, info.Name, info.Phone)
}

func findCustomer(ctx context.Context, q database.Querier, name, phone string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, selectCustomerIDSQL, name, phone).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrCustomerNotFound
	}
	if err != nil {
		return 0, database.Wrap("select customer", err)
	}
	return id, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.db.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, database.Wrap("list customers", err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address); err != nil {
			return nil, database.Wrap("scan customer", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Wrap("list customers", err)
	}
	return customers, nil
}
