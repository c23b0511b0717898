package database

import (
	"context"
	"log"
	"time"
)

var tableStatements = []struct {
	name string
	sql  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			user_id  BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			role     TEXT NOT NULL DEFAULT 'staff',
			UNIQUE (username, role)
		)`},
	{"customers", `
		CREATE TABLE IF NOT EXISTS customers (
			customer_id BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL,
			phone       TEXT NOT NULL DEFAULT '',
			address     TEXT NOT NULL DEFAULT ''
		)`},
	{"menu_items", `
		CREATE TABLE IF NOT EXISTS menu_items (
			item_id      BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			category     TEXT NOT NULL CHECK (category IN ('starter', 'main', 'dessert', 'drinks')),
			price        NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			is_available BOOLEAN NOT NULL DEFAULT TRUE
		)`},
	{"orders", `
		CREATE TABLE IF NOT EXISTS orders (
			order_id        BIGSERIAL PRIMARY KEY,
			customer_id     BIGINT NOT NULL REFERENCES customers (customer_id),
			order_type      TEXT NOT NULL CHECK (order_type IN ('dine-in', 'take-out', 'delivery')),
			total_price     NUMERIC(10, 2) NOT NULL,
			order_date_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_by_user TEXT NOT NULL DEFAULT ''
		)`},
	{"order_items", `
		CREATE TABLE IF NOT EXISTS order_items (
			order_item_id BIGSERIAL PRIMARY KEY,
			order_id      BIGINT NOT NULL REFERENCES orders (order_id) ON DELETE CASCADE,
			item_id       BIGINT NOT NULL REFERENCES menu_items (item_id),
			quantity      INTEGER NOT NULL CHECK (quantity >= 1)
		)`},
	{"payment", `
		CREATE TABLE IF NOT EXISTS payment (
			payment_id       BIGSERIAL PRIMARY KEY,
			customer_id      BIGINT NOT NULL REFERENCES customers (customer_id),
			card_id          TEXT NOT NULL DEFAULT '',
			card_holder_name TEXT NOT NULL DEFAULT '',
			card_last4       TEXT NOT NULL DEFAULT '',
			card_expiry      TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
}

func EnsureTables(db Querier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range tableStatements {
		log.Println("EnsureTables: creating table", table.name)
		if _, err := db.Exec(ctx, table.sql); err != nil {
			log.Println("EnsureTables:", table.name, "error:", err)
			return Wrap("create table "+table.name, err)
		}
	}
	log.Println("EnsureTables: all tables ready")
	return nil
}

// EnsureCustomerIndexes creates the (name, phone) unique index that makes
// customer resolution safe under concurrent orders. Order placement depends
// on it, so callers should treat failure as fatal.
func EnsureCustomerIndexes(db Querier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Println("EnsureCustomerIndexes: creating customers_name_phone_unique index")
	_, err := db.Exec(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS customers_name_phone_unique ON customers (name, phone)`)
	if err != nil {
		log.Println("EnsureCustomerIndexes: name/phone index error:", err)
		return Wrap("create customers_name_phone_unique", err)
	}
	log.Println("EnsureCustomerIndexes: customers_name_phone_unique index created")
	return nil
}

func EnsureOrderIndexes(db Querier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []struct {
		name string
		sql  string
	}{
		{"orders_customer_id_index", `CREATE INDEX IF NOT EXISTS orders_customer_id_index ON orders (customer_id)`},
		{"orders_date_time_index", `CREATE INDEX IF NOT EXISTS orders_date_time_index ON orders (order_date_time DESC)`},
		{"order_items_order_id_index", `CREATE INDEX IF NOT EXISTS order_items_order_id_index ON order_items (order_id)`},
	}

	for _, index := range indexes {
		log.Println("EnsureOrderIndexes: creating", index.name, "index")
		if _, err := db.Exec(ctx, index.sql); err != nil {
			log.Println("EnsureOrderIndexes:", index.name, "error:", err)
			return Wrap("create "+index.name, err)
		}
	}
	log.Println("EnsureOrderIndexes: order indexes created")
	return nil
}
