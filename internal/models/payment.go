package models

// CardInfo is the raw card block from the till. CardNumber is only read to
// derive the last four digits and must never be stored or logged.
type CardInfo struct {
	CardID         string `json:"card_id"`
	CardHolderName string `json:"card_holder_name"`
	CardNumber     string `json:"card_number"`
	CardExpiry     string `json:"card_expiry"`
}

// Payment is the persisted, masked card record.
type Payment struct {
	ID             int64  `json:"payment_id"`
	CustomerID     int64  `json:"customer_id"`
	CardID         string `json:"card_id"`
	CardHolderName string `json:"card_holder_name"`
	CardLast4      string `json:"card_last4"`
	CardExpiry     string `json:"card_expiry"`
}
