package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"
	actorKey       = "actor"
)

// Actor reads the identity headers set by the upstream auth proxy.
// Requests without X-User-ID pass through anonymous.
func Actor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.Next()
			return
		}

		role := domain.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(UserRoleHeader))))
		if role == "" {
			role = domain.RoleGuest
		}
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": "unknown user role"})
			return
		}

		c.Set(actorKey, domain.Actor{UserID: userID, Role: role})
		c.Next()
	}
}

// RequireRole rejects requests whose actor does not hold one of the roles.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing " + UserIDHeader})
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
	}
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
