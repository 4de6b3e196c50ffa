package cqrs

// GetAccountQuery fetches a single account by ID.
type GetAccountQuery struct {
	AccountID string
}

// GetAccountByTaxIDQuery fetches a single account by CPF, formatted or not.
type GetAccountByTaxIDQuery struct {
	TaxID string
}

// ListAccountsQuery fetches every account in creation order.
type ListAccountsQuery struct{}
