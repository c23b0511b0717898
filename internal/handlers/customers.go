package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"restoflow/internal/store"
)

func GetCustomers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/customers"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		customers, err := st.ListCustomers(ctx)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
