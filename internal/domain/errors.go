package domain

import "errors"

// Kind classifies a domain failure so the HTTP boundary can pick a status
// code without inspecting the message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindBusiness
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusiness:
		return "business"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a domain failure carrying its Kind alongside a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Entity failures.
var (
	ErrInvalidHolder      = newError(KindValidation, "holder name is required")
	ErrInvalidTaxID       = newError(KindValidation, "invalid CPF")
	ErrInvalidBalance     = newError(KindValidation, "initial balance must be a valid non-negative number")
	ErrInvalidCreditLimit = newError(KindValidation, "credit limit must be a valid non-negative number")
	ErrInvalidAmount      = newError(KindValidation, "amount must be a positive number")
	ErrInvalidDestination = newError(KindValidation, "invalid destination account")

	ErrInactiveAccount   = newError(KindBusiness, "account is inactive")
	ErrInsufficientFunds = newError(KindBusiness, "insufficient funds")
	ErrSameAccount       = newError(KindBusiness, "cannot transfer to the same account")
	ErrAlreadyInactive   = newError(KindBusiness, "account is already inactive")
	ErrAlreadyActive     = newError(KindBusiness, "account is already active")
)

// Service failures.
var (
	ErrMissingHolder        = newError(KindValidation, "holder name is required")
	ErrMissingTaxID         = newError(KindValidation, "CPF is required")
	ErrMissingID            = newError(KindValidation, "account id is required")
	ErrMissingOriginID      = newError(KindValidation, "origin account id is required")
	ErrMissingDestinationID = newError(KindValidation, "destination account id is required")

	ErrDuplicateTaxID = newError(KindBusiness, "an account with this CPF already exists")

	ErrNotFound = newError(KindNotFound, "account not found")
)
