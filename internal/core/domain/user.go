package domain

// UserRole defines the application-wide role of a user.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleExternal UserRole = "EXTERNAL"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Email        string   `json:"email"`  // Unique login identifier
	PasswordHash string   `json:"-"`
	FullName     string   `json:"fullName"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	Role         UserRole `json:"role"`
	AuditFields
}
