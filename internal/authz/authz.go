// Package authz holds the single access predicate applied to every tenant-scoped operation.
package authz

import (
	"errors"

	"phishsim-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	// ErrReadOnly is returned when a non-superadmin writes a global or platform-default row.
	ErrReadOnly = errors.New("resource is read-only")
	// ErrInsufficientRole is returned when the actor's role may not perform an operation.
	ErrInsufficientRole = errors.New("insufficient permissions")
)

const actorContextKey = "authz_actor"

// Actor is the authenticated user an operation runs on behalf of.
type Actor struct {
	UserID    uuid.UUID
	Role      string
	CompanyID *uuid.UUID
}

func (a Actor) IsSuperadmin() bool {
	return a.Role == store.UserRoleSuperadmin
}

// HasRole reports whether the actor holds one of roles.
func (a Actor) HasRole(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

type Action int

const (
	Read Action = iota
	Write
)

// Resource describes a row's ownership. Shared rows are global templates or landing pages
// and platform-default email services.
type Resource struct {
	CompanyID *uuid.UUID
	Shared    bool
}

// Owned describes a row that belongs to exactly one company.
func Owned(companyID uuid.UUID) Resource {
	return Resource{CompanyID: &companyID}
}

type Reason string

const (
	ReasonNone           Reason = ""
	ReasonTenant         Reason = "tenant"
	ReasonGlobalReadOnly Reason = "global_readonly"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

// CanAccess decides whether actor may perform action on resource. Superadmins may do anything.
// Everyone else may read shared rows and read or write rows of their own company.
func CanAccess(actor Actor, resource Resource, action Action) Decision {
	if actor.IsSuperadmin() {
		return Decision{Allowed: true}
	}
	if resource.Shared {
		if action == Read {
			return Decision{Allowed: true}
		}
		return Decision{Reason: ReasonGlobalReadOnly}
	}
	if actor.CompanyID != nil && resource.CompanyID != nil && *actor.CompanyID == *resource.CompanyID {
		return Decision{Allowed: true}
	}
	return Decision{Reason: ReasonTenant}
}

// Enforce turns a denied decision into an error. Tenant violations surface as notFound so
// the row's existence is not revealed.
func Enforce(actor Actor, resource Resource, action Action, notFound error) error {
	decision := CanAccess(actor, resource, action)
	switch {
	case decision.Allowed:
		return nil
	case decision.Reason == ReasonGlobalReadOnly:
		return ErrReadOnly
	default:
		return notFound
	}
}

// ScopeCompanyID resolves the tenant filter for list operations. Superadmins get what they
// asked for, where nil means every company. Everyone else is pinned to their own company.
func ScopeCompanyID(actor Actor, requested *uuid.UUID) *uuid.UUID {
	if actor.IsSuperadmin() {
		return requested
	}
	return actor.CompanyID
}

// SetActor stores the authenticated actor on the request context.
func SetActor(c *gin.Context, actor Actor) {
	c.Set(actorContextKey, actor)
}

// ActorFromContext returns the actor stored by SetActor.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}
