// Package auth carries the request-scoped identity and the role predicates
// that gate mutating operations.
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/models"
)

// identityKey is the gin context key the auth middleware stores the
// caller's identity under.
const identityKey = "identity"

// Identity describes the authenticated caller of a request. It is populated
// once at the request boundary by the auth middleware and passed down to
// services; nothing about the caller is stored between requests.
type Identity struct {
	UserID       int64
	Username     string
	Role         models.Role
	StudentID    *int64
	InstructorID *int64
}

// IsAuthenticated reports whether the identity belongs to a logged-in user.
func (id Identity) IsAuthenticated() bool {
	return id.UserID > 0
}

// CanManageRecords reports whether the caller may create, edit or delete
// students and courses.
func (id Identity) CanManageRecords() bool {
	return id.Role.CanManageRecords()
}

// IsAdmin reports whether the caller holds the Admin role exactly.
func (id Identity) IsAdmin() bool {
	return id.Role.IsAdmin()
}

// IsStudent reports whether the caller holds the Student role.
func (id Identity) IsStudent() bool {
	return id.Role == models.RoleStudent
}

// SetIdentity stores the identity in the gin context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// CurrentIdentity returns the identity stored by the auth middleware.
// The zero Identity is returned for anonymous requests.
func CurrentIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}
