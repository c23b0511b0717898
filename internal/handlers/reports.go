package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"restoflow/internal/store"
)

func GetSummary(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/reports/summary"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		summary, err := st.Summary(ctx)
		if err != nil {
			respondStoreError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
