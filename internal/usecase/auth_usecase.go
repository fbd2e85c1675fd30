package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/audit"
)

type authUsecase struct {
	userRepo domain.UserRepository
	audit    *audit.Logger
}

func NewAuthUsecase(userRepo domain.UserRepository, auditLog *audit.Logger) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, audit: auditLog}
}

// EnsureUserExists creates the local user row on first sync. An existing
// user is returned untouched: roles change only through AssignRole.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	// Self sign-up may pick candidate or employer, never admin
	if user.Role != domain.RoleEmployer {
		user.Role = domain.RoleCandidate
	}
	user.Email = strings.TrimSpace(user.Email)
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) AssignRole(ctx context.Context, userID string, role string) error {
	// Security: Only admin can assign roles
	admin := actorFrom(ctx)
	if admin.Role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can assign roles")
	}

	switch role {
	case domain.RoleCandidate, domain.RoleEmployer, domain.RoleAdmin:
	default:
		return apperror.BadRequest("Invalid role. Must be: candidate, employer, or admin")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	previous := user.Role
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}

	u.audit.Record(ctx, audit.Event{
		Action:     audit.ActionRoleAssigned,
		ActorID:    admin.ID,
		ActorEmail: admin.Email,
		TargetType: "user",
		TargetID:   userID,
		Details:    map[string]interface{}{"from": previous, "to": role},
	})
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
