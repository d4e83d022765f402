package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Currently used for auth only.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
	tenantID     *string
	storeID      *string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, passwordHash string, role Role, tenantID, storeID *string) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		tenantID:     tenantID,
		storeID:      storeID,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Username() Username    { return u.username }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) TenantID() *string     { return u.tenantID }
func (u *User) StoreID() *string      { return u.storeID }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
