package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScopeHeader carries the client's storage scope id. A request without one
// gets a fresh scope, echoed back so the client can keep it.
const ScopeHeader = "X-Session-ID"

func resolveScope(c *gin.Context) string {
	if v, ok := c.Get("scope"); ok {
		if scope, ok := v.(string); ok && scope != "" {
			c.Header(ScopeHeader, scope)
			return scope
		}
	}

	scope := c.GetHeader(ScopeHeader)
	if scope == "" {
		scope = uuid.NewString()
	}
	c.Header(ScopeHeader, scope)
	return scope
}
