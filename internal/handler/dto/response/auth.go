package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"pricing-admin-api/internal/usecase/queries"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	TenantID *string   `json:"tenantId,omitempty"`
	StoreID  *string   `json:"storeId,omitempty"`
	IsActive bool      `json:"isActive"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
