//go:build unit || e2e

package builder

import (
	"pricing-admin-api/internal/domain/user"
	"pricing-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username     string
	PasswordHash string
	Role         string
	TenantID     *string
	StoreID      *string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	tenantID := "tenant-1"
	storeID := "store-1"
	return &UserBuilder{
		Username:     "test.operator",
		PasswordHash: "hashed_password",
		Role:         "operator",
		TenantID:     &tenantID,
		StoreID:      &storeID,
		IsActive:     true,
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, u.PasswordHash, role, u.TenantID, u.StoreID), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Username: u.Username,
		Role:     u.Role,
		TenantID: u.TenantID,
		StoreID:  u.StoreID,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithoutScope() *UserBuilder {
	u.TenantID = nil
	u.StoreID = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
