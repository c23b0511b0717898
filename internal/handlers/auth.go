package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"restoflow/internal/models"
	"restoflow/internal/store"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin staff"`
}

func Login(st *store.Store, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/login"
		defer handlePanic(c, route)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		user, err := st.FindUser(ctx, strings.TrimSpace(req.Username), req.Role)
		if errors.Is(err, store.ErrUserNotFound) {
			invalidCredentials(c)
			return
		}
		if err != nil {
			log.Println("[AUTH] [ERROR] user lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		if !passwordMatches(user.Password, req.Password) {
			invalidCredentials(c)
			return
		}

		resp := gin.H{"success": true, "user": user}
		if jwtSecret != "" {
			signed, err := issueToken(user, jwtSecret, accessTTL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "token generation failed"})
				return
			}
			resp["token"] = signed
		}

		log.Printf("[AUTH] [INFO] %s logged in as %s", user.Username, user.Role)
		c.JSON(http.StatusOK, resp)
	}
}

func invalidCredentials(c *gin.Context) {
	log.Println("[AUTH] [WARN] invalid credentials")
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
}

// passwordMatches accepts a bcrypt hash or, for legacy rows, the plaintext
// value.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func issueToken(user models.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
