package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserIDKey is the context key under which the authenticated user's ID is
// stored.
const UserIDKey = "userID"

// RequireLogin authenticates the bearer token and redirects anonymous or
// badly-authenticated requests to the login path instead of serving them.
func RequireLogin(jwtSecret, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userFromBearer(c, jwtSecret)
		if !ok {
			c.Redirect(http.StatusFound, loginPath+"?next="+c.Request.URL.Path)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func userFromBearer(c *gin.Context, jwtSecret string) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !parsedToken.Valid {
		return uuid.Nil, false
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// CurrentUserID reads the authenticated user from the request context.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
