package models

// Company represents a row of the companies table.
type Company struct {
	CompanyID string `db:"company_id"` // Primary Key (UUID)
	TaxID     string `db:"tax_id"`     // Unique
	Name      string `db:"name"`
	Address   string `db:"address"`
	Phone     string `db:"phone"`
	AuditFields
}
