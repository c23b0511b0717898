package models

import "time"

const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeOut  = "take-out"
	OrderTypeDelivery = "delivery"
)

var OrderTypes = []string{OrderTypeDineIn, OrderTypeTakeOut, OrderTypeDelivery}

func IsOrderType(value string) bool {
	for _, t := range OrderTypes {
		if t == value {
			return true
		}
	}
	return false
}

// Order is an order header as listed, joined with the customer's name.
type Order struct {
	ID           int64     `json:"order_id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	OrderType    string    `json:"order_type"`
	TotalPrice   Price     `json:"total_price"`
	CreatedAt    time.Time `json:"order_date_time"`
	CreatedBy    string    `json:"created_by_user"`
}

