package auth

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)
