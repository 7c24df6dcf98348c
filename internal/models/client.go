package models

// Client represents a row of the clients table.
type Client struct {
	ClientID  string  `db:"client_id"` // Primary Key (UUID)
	CompanyID string  `db:"company_id"`
	UserID    *string `db:"user_id"` // Optional link to users
	Name      string  `db:"name"`
	Email     string  `db:"email"`
	Phone     string  `db:"phone"`
	Address   string  `db:"address"`
	AuditFields
}
