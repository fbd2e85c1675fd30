package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// ctxString reads an identity value set by the auth middleware. Works with
// both a gin context (c.Set with string keys) and context.WithValue.
func ctxString(ctx context.Context, key domain.CtxKey) string {
	if v, ok := ctx.Value(string(key)).(string); ok && v != "" {
		return v
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

type actor struct {
	ID    string
	Email string
	Role  string
}

func actorFrom(ctx context.Context) actor {
	return actor{
		ID:    ctxString(ctx, domain.KeyUserID),
		Email: ctxString(ctx, domain.KeyUserEmail),
		Role:  ctxString(ctx, domain.KeyUserRole),
	}
}

// requireOwner checks that the authenticated user is userID.
func requireOwner(ctx context.Context, userID, forbiddenMsg string) error {
	ctxUserID := ctxString(ctx, domain.KeyUserID)
	if ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden(forbiddenMsg)
	}
	return nil
}

// requireAdmin checks if the current user has admin role
func requireAdmin(ctx context.Context) (actor, error) {
	a := actorFrom(ctx)
	if a.Role != domain.RoleAdmin {
		return a, apperror.Forbidden("Admin access required")
	}
	return a, nil
}

// normalizePage applies defaults and caps to pagination parameters.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
