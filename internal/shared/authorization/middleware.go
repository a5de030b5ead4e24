package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/shared/constants"
)

// RequireOperator aborts with 403 unless the authenticated actor carries the
// operator role.
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyAgentRole)
		if role != string(RoleOperator) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "operator access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessOwned reports whether the actor may touch a resource owned by
// ownerID. Operators may touch anything; agents only their own resources.
// A nil ownerID means the owner was deleted, leaving the resource
// operator-only.
func CanAccessOwned(actorID uint, role Role, ownerID *uint) bool {
	if role.IsOperator() {
		return true
	}
	return ownerID != nil && *ownerID == actorID
}
