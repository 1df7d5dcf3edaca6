package entity

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleUser, RoleProvider, RoleAdmin:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
}
