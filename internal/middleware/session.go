package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionUsernameKey = "sessionUsername"
	sessionRoleKey     = "sessionRole"
)

// SessionAuth reads an optional bearer token issued by the login endpoint.
// Requests without a token pass through untouched; a token that is present
// but invalid is rejected. With an empty secret the header is ignored.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		claims, err := claimsFromHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			log.Println("[AUTH] [ERROR] token validation failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if claims != nil {
			username, _ := claims["username"].(string)
			role, _ := claims["role"].(string)
			c.Set(sessionUsernameKey, username)
			c.Set(sessionRoleKey, role)
		}
		c.Next()
	}
}

// SessionUsername is "" when the request carried no token.
func SessionUsername(c *gin.Context) string {
	return c.GetString(sessionUsernameKey)
}

func SessionRole(c *gin.Context) string {
	return c.GetString(sessionRoleKey)
}

func claimsFromHeader(header, secret string) (jwt.MapClaims, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid token format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if username, _ := claims["username"].(string); strings.TrimSpace(username) == "" {
		return nil, errors.New("username claim missing")
	}
	return claims, nil
}
