package dto

type UserCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required"`
	Username    string   `json:"username" validate:"required"`
	Permissions []string `json:"permissions"`
	Disabled    *bool    `json:"disabled,omitempty"`
}

// UserUpdateRequest is a partial update. Submitting NewPassword requires
// Password to carry the current password for verification.
type UserUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Username    *string  `json:"username,omitempty"`
	Password    *string  `json:"password,omitempty"`
	NewPassword *string  `json:"new_password,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Disabled    *bool    `json:"disabled,omitempty"`
}

type UserResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	Disabled    bool     `json:"disabled"`
	Permissions []string `json:"permissions,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

type SortInput struct {
	Name string `json:"name"`
	Sort string `json:"sort"`
}

type UserPermissionsResponse struct {
	Permissions []string `json:"permissions"`
}
