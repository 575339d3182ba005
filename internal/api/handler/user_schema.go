package handler

type createUserRequest struct {
	Username string         `json:"username" validate:"required,min=3,max=50"`
	Email    string         `json:"email"    validate:"required,email"`
	Password string         `json:"password" validate:"required,min=8"`
	FullName string         `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type updateUserRequest struct {
	Email    *string        `json:"email,omitempty"     validate:"omitempty,email"`
	FullName *string        `json:"full_name,omitempty" validate:"omitempty,max=100"`
	IsActive *bool          `json:"is_active,omitempty"`
	Roles    []string       `json:"roles,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}
