package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/infrastructure/auth"
	"github.com/casaplex/casaplex/internal/shared/constants"
	"github.com/casaplex/casaplex/internal/shared/logger"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// AuthMiddleware verifies the bearer token and resolves the acting agent.
// The numeric agent ID and role land in the gin context under the shared
// constants keys.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	agentRepo  agent.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, agentRepo agent.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		agentRepo:  agentRepo,
		logger:     logger,
	}
}

// RequireAuth aborts with 401 unless a valid access token identifies an
// existing, active agent.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		a, err := m.agentRepo.GetBySID(c.Request.Context(), claims.AgentSID)
		if err != nil {
			m.logger.Errorw("failed to resolve agent from token", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}
		if a == nil || !a.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAgentID, a.ID())
		c.Set(constants.ContextKeyAgentRole, a.Role().String())
		c.Next()
	}
}

// OptionalAuth resolves the agent when a token is present but never aborts.
// Public pages use it so owners see their own unpublished content.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil || claims.TokenType != auth.TokenTypeAccess {
			c.Next()
			return
		}

		a, err := m.agentRepo.GetBySID(c.Request.Context(), claims.AgentSID)
		if err == nil && a != nil && a.IsActive() {
			c.Set(constants.ContextKeyAgentID, a.ID())
			c.Set(constants.ContextKeyAgentRole, a.Role().String())
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
