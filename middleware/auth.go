package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIVersionKey is where the api version bound to the presented key is
// stored in the request context.
const APIVersionKey = "api_version"

// APIKeyAuth checks the static api_key argument (query or form) against the
// configured key set. Keys map to the API version they were issued for.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.Query("api_key")
		if apiKey == "" {
			apiKey = c.PostForm("api_key")
		}
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
			return
		}

		version, ok := keys[apiKey]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid request"})
			return
		}

		c.Set(APIVersionKey, version)
		c.Next()
	}
}
