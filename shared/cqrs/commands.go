package cqrs

// CreateAccountCommand opens a new account. Zero-valued numbers fall back to
// the service defaults.
type CreateAccountCommand struct {
	HolderName     string
	TaxID          string
	InitialBalance Number
	CreditLimit    Number
}

type DepositCommand struct {
	AccountID string
	Amount    Number
}

type WithdrawCommand struct {
	AccountID string
	Amount    Number
}

// TransferCommand moves Amount from OriginID to DestinationID.
type TransferCommand struct {
	OriginID      string
	DestinationID string
	Amount        Number
}

type DeactivateAccountCommand struct {
	AccountID string
}

type ReactivateAccountCommand struct {
	AccountID string
}
