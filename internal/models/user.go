package models

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a till operator. Password holds either the plaintext value or a
// bcrypt hash.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
