package readstore

import (
	"context"

	"pricing-admin-api/internal/infra"
	"pricing-admin-api/internal/infra/db"
	"pricing-admin-api/internal/pkg/pgconv"
	"pricing-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDQuery = `
SELECT id, username, role, tenant_id, store_id, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view     queries.AuthorizedUserView
		tenantID *string
		storeID  *string
	)

	err := r.db.QueryRow(ctx, findUserByIDQuery, id).Scan(
		&view.ID, &view.Username, &view.Role, &tenantID, &storeID, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.TenantID = tenantID
	view.StoreID = storeID
	return &view, nil
}

const findUserByUsernameQuery = `
SELECT id, username, password_hash, role, tenant_id, store_id, is_active
FROM users
WHERE username = $1`

// FindByUsername returns the read model together with the stored password
// hash, so the auth command can verify credentials in one round trip.
func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
		tenantID     *string
		storeID      *string
	)

	err := r.db.QueryRow(ctx, findUserByUsernameQuery, username).Scan(
		&view.ID, &view.Username, &passwordHash, &view.Role, &tenantID, &storeID, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	view.TenantID = tenantID
	view.StoreID = storeID
	return &view, passwordHash, nil
}
