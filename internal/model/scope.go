package model

// Scope carries the authenticated caller's identity through use cases.
type Scope struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the scope belongs to an administrator.
func (s Scope) IsAdmin() bool {
	return s.Role == "ADMIN"
}
