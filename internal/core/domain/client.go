package domain

// Client represents a customer of a company. A client may optionally be
// linked to an application user account.
type Client struct {
	ClientID  string  `json:"clientID"` // Primary Key (UUID)
	CompanyID string  `json:"companyID"`
	UserID    *string `json:"userID,omitempty"` // Optional link to a user account
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Address   string  `json:"address,omitempty"`
	AuditFields
}
