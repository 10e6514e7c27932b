package domain

const RoleAdmin = "admin"

// UserRole grants one role label to one user; (UserID, Role) is unique.
type UserRole struct {
	UserID string
	Role   string
}

func (r UserRole) Validate() error {
	if r.UserID == "" {
		return NewValidation("user id is required")
	}
	if r.Role == "" {
		return NewValidation("role is required")
	}
	return nil
}
