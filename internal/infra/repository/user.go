package repository

import (
	"context"
	"time"

	"pricing-admin-api/internal/infra"
	"pricing-admin-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const updateLastLoginQuery = `
UPDATE users SET last_login = $2, updated_at = now()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, loginAt time.Time) error {
	_, err := dbtx.Exec(ctx, updateLastLoginQuery, userID, loginAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
