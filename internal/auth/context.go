package auth

import (
	"context"

	"github.com/google/uuid"
)

// Role is an access level carried in the token's roles claim.
type Role string

const (
	// RoleAdmin can manage targets, import data and delete projects.
	RoleAdmin Role = "admin"
	// RoleSales can create and edit project records.
	RoleSales Role = "sales"
	// RoleViewer has read-only access to projects and the dashboard.
	RoleViewer Role = "viewer"
	// RoleAPIService is assigned to requests authenticated by API key.
	RoleAPIService Role = "api_service"
)

// UserContext holds authenticated user information
type UserContext struct {
	UserID      uuid.UUID
	DisplayName string
	Email       string
	Roles       []Role
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// HasRole checks if user has a specific role
func (u *UserContext) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole checks if user has any of the specified roles
func (u *UserContext) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if u.HasRole(role) {
			return true
		}
	}
	return false
}

// IsAdmin checks if user can perform administrative operations
func (u *UserContext) IsAdmin() bool {
	return u.HasAnyRole(RoleAdmin, RoleAPIService)
}

// CanWrite checks if user can create or modify project records
func (u *UserContext) CanWrite() bool {
	return u.HasAnyRole(RoleAdmin, RoleSales, RoleAPIService)
}

// RolesAsStrings returns roles as a slice of strings
func (u *UserContext) RolesAsStrings() []string {
	result := make([]string, len(u.Roles))
	for i, role := range u.Roles {
		result[i] = string(role)
	}
	return result
}
