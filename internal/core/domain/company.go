package domain

// Company represents a tenant company that owns products, clients and orders.
type Company struct {
	CompanyID string `json:"companyID"` // Primary Key (UUID)
	TaxID     string `json:"taxID"`     // Unique fiscal identifier
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AuditFields
}
