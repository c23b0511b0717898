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

type cartItemRequest struct {
	ItemID   int64 `json:"item_id" binding:"required,min=1"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	Customer  models.CustomerInfo `json:"customer" binding:"required"`
	OrderType string              `json:"orderType" binding:"required,oneof=dine-in take-out delivery"`
	// Total is the till's own figure; the stored total is recomputed.
	Total     *models.Price     `json:"total"`
	CreatedBy string            `json:"createdBy"`
	Cart      []cartItemRequest `json:"cart" binding:"required,min=1,dive"`
}

func CreateOrder(st *store.Store, publisher events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		requestID := middleware.GetRequestID(c)
		if session := middleware.SessionUsername(c); session != "" && session != req.CreatedBy {
			log.Printf("[SECURITY] [WARN] order createdBy %q does not match session user %q (request %s)", req.CreatedBy, session, requestID)
		}

		in := store.PlaceOrderInput{
			Customer:  req.Customer,
			OrderType: req.OrderType,
			CreatedBy: req.CreatedBy,
			Items:     make([]store.OrderLine, 0, len(req.Cart)),
		}
		if req.Total != nil {
			in.ClientTotal = &req.Total.Decimal
		}
		for _, item := range req.Cart {
			in.Items = append(in.Items, store.OrderLine{ItemID: item.ItemID, Quantity: item.Quantity})
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		placed, err := st.PlaceOrder(ctx, in)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		if placed.TotalMismatch {
			log.Printf("[ORDER] [WARN] order %d client total %s differs from computed %s (request %s)",
				placed.OrderID, req.Total, placed.Totals.Total.StringFixed(2), requestID)
		}
		log.Printf("[ORDER] [INFO] order %d placed for customer %d by %q (request %s)",
			placed.OrderID, placed.CustomerID, placed.CreatedBy, requestID)

		publishOrderPlaced(publisher, placed)

		resp := gin.H{
			"message":     "Order placed successfully",
			"orderId":     placed.OrderID,
			"customerId":  placed.CustomerID,
			"subtotal":    models.NewPrice(placed.Totals.Subtotal),
			"tax":         models.NewPrice(placed.Totals.Tax),
			"total":       models.NewPrice(placed.Totals.Total),
			"clientTotal": nil,
		}
		if req.Total != nil {
			resp["clientTotal"] = *req.Total
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// publishOrderPlaced runs after commit, so a broker failure never changes
// the response.
func publishOrderPlaced(publisher events.Publisher, placed store.PlacedOrder) {
	event := events.OrderPlaced{
		OrderID:    placed.OrderID,
		CustomerID: placed.CustomerID,
		OrderType:  placed.OrderType,
		Subtotal:   placed.Totals.Subtotal.StringFixed(2),
		Tax:        placed.Totals.Tax.StringFixed(2),
		Total:      placed.Totals.Total.StringFixed(2),
		Items:      make([]events.OrderItem, 0, len(placed.Lines)),
		CreatedBy:  placed.CreatedBy,
		CreatedAt:  placed.CreatedAt,
	}
	for _, line := range placed.Lines {
		event.Items = append(event.Items, events.OrderItem{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := publisher.PublishOrderPlaced(ctx, event); err != nil {
		log.Printf("[EVENTS] [WARN] order %d event not published: %v", placed.OrderID, err)
	}
}

func GetOrders(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		orders, err := st.ListOrders(ctx)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

