package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminIDKey = "adminID"

func jwtSecret() []byte {
	// main() refuses to start without JWT_SECRET, so this is always set
	return []byte(strings.TrimSpace(os.Getenv("JWT_SECRET")))
}

// IssueAdminToken returns a signed session token for a logged-in admin.
func IssueAdminToken(adminID uint, username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      username,
		"admin_id": adminID,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// RequireAuth guards the admin API: expects "Authorization: Bearer <jwt>".
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["admin_id"].(float64); ok {
				c.Set(adminIDKey, uint(id))
			}
		}
		c.Next()
	}
}
