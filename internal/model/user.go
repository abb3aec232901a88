package model

// User is a shop staff account.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"isActive"`
}

// Sanitized returns a copy safe to send to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// LoginRequest represents the login form submission
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token and the authenticated user
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest represents the admin-panel new account form
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=3"`
	Name     string `json:"name" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=Admin Counter Designer Production Finisher Cashier"`
}

// SetUserActiveRequest toggles whether an account may log in
type SetUserActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
