package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account managed through the generic user CRUD surface.
// PasswordHash is never serialized to API responses.
type User struct {
	ID           string         `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	FullName     string         `json:"full_name,omitempty"`
	PasswordHash string         `json:"-"`
	IsActive     bool           `json:"is_active"`
	Roles        []string       `json:"roles"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// HasRole reports whether the user carries the given role string.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
