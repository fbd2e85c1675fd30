package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, role, is_disabled, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.Role, user.IsDisabled, user.CreatedAt, user.UpdatedAt)
	return mapError(err, "User with this email already exists")
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, role, COALESCE(is_disabled, false), created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Role, &user.IsDisabled, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "")
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, role, COALESCE(is_disabled, false), created_at, updated_at FROM users WHERE LOWER(email) = LOWER($1)`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Role, &user.IsDisabled, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "")
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $2, role = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, user.ID, user.Email, user.Role, user.UpdatedAt)
	if err != nil {
		return mapError(err, "User with this email already exists")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
