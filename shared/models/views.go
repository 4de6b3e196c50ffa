package models

import (
	"encoding/json"
	"time"
)

// AccountView is the JSON projection of an account returned by the API.
// Money fields are JSON number literals written with exactly two decimals.
type AccountView struct {
	ID               string      `json:"id"`
	HolderName       string      `json:"holderName"`
	TaxID            string      `json:"taxId"`
	FormattedTaxID   string      `json:"formattedTaxId"`
	Balance          json.Number `json:"balance"`
	CreditLimit      json.Number `json:"creditLimit"`
	AvailableBalance json.Number `json:"availableBalance"`
	Active           bool        `json:"active"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// TransferView carries both sides of a completed transfer.
type TransferView struct {
	Origin      AccountView `json:"origin"`
	Destination AccountView `json:"destination"`
}
