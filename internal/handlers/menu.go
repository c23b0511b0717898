package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restoflow/internal/middleware"
	"restoflow/internal/models"
	"restoflow/internal/store"
)

type createMenuItemRequest struct {
	Name        string        `json:"name" binding:"required"`
	Category    string        `json:"category" binding:"required,oneof=starter main dessert drinks"`
	Price       *models.Price `json:"price" binding:"required"`
	IsAvailable *bool         `json:"is_available"`
}

type updateAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func GetMenu(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/menu"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		items, err := st.ListMenu(ctx)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func CreateMenuItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/menu"
		defer handlePanic(c, route)

		var req createMenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		// New items are on sale unless the request says otherwise.
		available := true
		if req.IsAvailable != nil {
			available = *req.IsAvailable
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		id, err := st.CreateMenuItem(ctx, store.NewMenuItem{
			Name:        req.Name,
			Category:    req.Category,
			Price:       *req.Price,
			IsAvailable: available,
		})
		if err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[MENU] [INFO] menu item %d added (request %s)", id, middleware.GetRequestID(c))
		c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "id": id})
	}
}

func UpdateMenuAvailability(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/menu/:id"
		defer handlePanic(c, route)

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid menu item id")
			return
		}

		var req updateAvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := st.SetMenuItemAvailability(ctx, id, *req.IsAvailable); err != nil {
			respondStoreError(c, route, err)
			return
		}

		log.Printf("[MENU] [INFO] menu item %d availability set to %t (request %s)", id, *req.IsAvailable, middleware.GetRequestID(c))
		c.JSON(http.StatusOK, gin.H{"message": "Menu item updated"})
	}
}
