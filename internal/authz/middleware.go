package authz

import (
	"phishsim-server/internal/apierrors"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects requests whose actor holds none of roles. It must run after the
// session middleware has stored an actor.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			apierrors.Unauthorized(c, "Authentication required")
			return
		}
		if !actor.HasRole(roles...) {
			apierrors.InsufficientPermissions(c)
			return
		}
		c.Next()
	}
}

// MustActor returns the request's actor, answering 401 when there is none.
func MustActor(c *gin.Context) (Actor, bool) {
	actor, ok := ActorFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "Authentication required")
		return Actor{}, false
	}
	return actor, true
}
