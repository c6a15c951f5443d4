package graph

import (
	"context"

	"github.com/lennykioko/School-Mngmt-Backend/internal/models"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// WithUser stores the authenticated caller in the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated caller, or nil.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}
