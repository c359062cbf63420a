package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientIDHeader names the caller a dashboard frontend identifies itself
// with; used for UI-state keying and rate-limit bucketing.
const ClientIDHeader = "X-Client-ID"

// OperatorGate returns a Gin middleware enforcing the external "logged in"
// flag. Login itself is out of scope here; an upstream layer authenticates
// the operator and forwards the boolean marker in the configured header.
// Requests without `<header>: true` are rejected.
func OperatorGate(header string) gin.HandlerFunc {
	if header == "" {
		header = "X-Operator-Authenticated"
	}
	return func(c *gin.Context) {
		if c.GetHeader(header) != "true" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "operator not logged in"})
			return
		}
		c.Set("operator", true)
		c.Next()
	}
}

// ClientID extracts the caller's id for keying, falling back to client IP.
func ClientID(c *gin.Context) string {
	if id := c.GetHeader(ClientIDHeader); id != "" {
		return id
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return ip
}
