package models

// User represents a row of the users table.
type User struct {
	UserID       string `db:"user_id"` // Primary Key (UUID)
	Email        string `db:"email"`   // Unique
	PasswordHash string `db:"password_hash"`
	FullName     string `db:"full_name"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	Role         string `db:"role"`
	AuditFields
}
