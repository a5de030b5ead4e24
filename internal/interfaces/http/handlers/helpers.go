// Package handlers holds the gin handlers for the public API surface.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/constants"
)

// actorID returns the authenticated agent's numeric ID, zero for anonymous
// callers.
func actorID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyAgentID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// actorRole returns the authenticated agent's role, defaulting to agent.
func actorRole(c *gin.Context) authorization.Role {
	return authorization.ParseRole(c.GetString(constants.ContextKeyAgentRole))
}
