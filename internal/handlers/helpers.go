package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"restoflow/internal/database"
	"restoflow/internal/middleware"
	"restoflow/internal/store"
)

const requestTimeout = 5 * time.Second

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] [ERROR] panic recovered (request %s): %v", route, middleware.GetRequestID(c), r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d (request %s): %s", route, status, middleware.GetRequestID(c), message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondValidationError lists the failing fields when the binding error came
// from validator tags, otherwise it reports a malformed body.
func respondValidationError(c *gin.Context, route string, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondWithError(c, http.StatusBadRequest, route, "invalid request body")
		return
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[lowerCamel(fe.Field())] = fe.Tag()
	}
	log.Printf("[%s] returning error %d (request %s): validation failed %v", route, http.StatusBadRequest, middleware.GetRequestID(c), details)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// respondStoreError maps store and database errors onto HTTP statuses.
func respondStoreError(c *gin.Context, route string, err error) {
	var (
		vErr    store.ValidationError
		itemErr store.ItemNotFoundError
		persist *database.PersistenceError
	)
	switch {
	case errors.As(err, &itemErr):
		log.Printf("[%s] returning error %d (request %s): %v", route, http.StatusBadRequest, middleware.GetRequestID(c), itemErr)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  itemErr.Error(),
			"itemId": itemErr.ItemID,
		})
	case errors.As(err, &vErr):
		respondWithError(c, http.StatusBadRequest, route, vErr.Error())
	case errors.Is(err, store.ErrCustomerNotFound):
		respondWithError(c, http.StatusBadRequest, route, "Customer not found")
	case errors.Is(err, store.ErrMenuItemNotFound):
		respondWithError(c, http.StatusNotFound, route, "Menu item not found")
	case errors.As(err, &persist):
		respondWithError(c, http.StatusInternalServerError, route, strings.TrimSpace(persist.Err.Error()))
	default:
		respondWithError(c, http.StatusInternalServerError, route, err.Error())
	}
}
