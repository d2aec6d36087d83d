package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows cross-domain requests from the admin frontend and mobile
// webviews. OPTIONS preflights are answered here and never reach the
// API key check.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "X-Requested-With, Content-Type")
		c.Header("Access-Control-Max-Age", "21600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
