package store

import (
	"context"

	"restoflow/internal/database"
	"restoflow/internal/models"
)

const insertPaymentSQL = `INSERT INTO payment (customer_id, card_id, card_holder_name, card_last4, card_expiry)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING payment_id`

// MaskCardNumber keeps the last four characters. Anything shorter yields "".
// The number is not checked for format or checksum.
func MaskCardNumber(number string) string {
	runes := []rune(number)
	if len(runes) < 4 {
		return ""
	}
	return string(runes[len(runes)-4:])
}

// RecordPayment stores the masked card for an existing customer. Unlike
// order placement it never creates the customer, and it is not tied to any
// order.
func (s *Store) RecordPayment(ctx context.Context, customer models.CustomerInfo, card models.CardInfo) (models.Payment, error) {
	customerID, err := findCustomer(ctx, s.db, customer.Name, customer.Phone)
	if err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		CustomerID:     customerID,
		CardID:         card.CardID,
		CardHolderName: card.CardHolderName,
		CardLast4:      MaskCardNumber(card.CardNumber),
		CardExpiry:     card.CardExpiry,
	}

	err = s.db.QueryRow(ctx, insertPaymentSQL,
		payment.CustomerID, payment.CardID, payment.CardHolderName, payment.CardLast4, payment.CardExpiry,
	).Scan(&payment.ID)
	if err != nil {
		return models.Payment{}, database.Wrap("insert payment", err)
	}
	return payment, nil
}
