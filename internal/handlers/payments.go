package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"restoflow/internal/events"
	"restoflow/internal/middleware"
	"restoflow/internal/models"
	"restoflow/internal/store"
)

type recordPaymentRequest struct {
	Customer models.CustomerInfo `json:"customer" binding:"required"`
	Card     models.CardInfo     `json:"card"`
}

func RecordPayment(st *store.Store, publisher events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/payment"
		defer handlePanic(c, route)

		var req recordPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		payment, err := st.RecordPayment(ctx, req.Customer, req.Card)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[PAYMENT] [INFO] payment %d recorded for customer %d, card ending %s (request %s)",
			payment.ID, payment.CustomerID, payment.CardLast4, middleware.GetRequestID(c))

		pubCtx, pubCancel := context.WithTimeout(context.Background(), requestTimeout)
		defer pubCancel()
		err = publisher.PublishPaymentRecorded(pubCtx, events.PaymentRecorded{
			PaymentID:  payment.ID,
			CustomerID: payment.CustomerID,
			CardLast4:  payment.CardLast4,
		})
		if err != nil {
			log.Printf("[EVENTS] [WARN] payment %d event not published: %v", payment.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
	}
}
