package domain

// Category groups products within a company.
type Category struct {
	CategoryID  string `json:"categoryID"` // Primary Key (UUID)
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AuditFields
}
