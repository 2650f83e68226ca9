// Package middlewares holds the gin middleware shared by the API routes.
package middlewares

import (
	"bytes"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	v1 "github.com/commissaire-project/bootstrap-agent/api/v1"
)

// JWTAuth validates bearer tokens against the shared HMAC secret stored at
// secretPath. Surrounding whitespace in the secret file is ignored.
func JWTAuth(secretPath string) (gin.HandlerFunc, error) {
	secret, err := os.ReadFile(secretPath)
	if err != nil {
		return nil, err
	}
	key := bytes.TrimSpace(secret)

	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Message: "missing bearer token"})
			return
		}

		_, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Message: "invalid token"})
			return
		}

		c.Next()
	}, nil
}
