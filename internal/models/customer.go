package models

// Customer is matched by (Name, Phone); ID is never used for matching.
type Customer struct {
	ID      int64  `json:"customer_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerInfo is the identity block sent with orders and payments.
type CustomerInfo struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
