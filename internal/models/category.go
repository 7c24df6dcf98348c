package models

// Category represents a row of the categories table.
type Category struct {
	CategoryID  string `db:"category_id"` // Primary Key (UUID)
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}
