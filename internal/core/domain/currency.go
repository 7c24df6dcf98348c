package domain

// Currency represents a supported currency in the domain.
// The set of currencies is closed and seeded at startup.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	Symbol       string `json:"symbol"`       // e.g., "$"
	AuditFields
}

// SeededCurrencies returns the closed currency catalog the application supports.
func SeededCurrencies() []Currency {
	return []Currency{
		{CurrencyCode: "COP", Name: "Colombian Peso", Symbol: "$"},
		{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$"},
		{CurrencyCode: "EUR", Name: "Euro", Symbol: "€"},
		{CurrencyCode: "GBP", Name: "British Pound", Symbol: "£"},
		{CurrencyCode: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	}
}
