package cqrs

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotANumber is returned by Number.Decimal when the raw value does not parse.
	ErrNotANumber = errors.New("not a number")
	// ErrOutOfRange is returned by Number.Decimal for values outside the money range.
	ErrOutOfRange = errors.New("number out of range")
)

// Money values carry at most 15 integer digits and 18 fractional digits.
const (
	maxRawLength   = 64
	minExponent    = -18
	maxExponent    = 18
	maxIntegerPart = 15
)

var maxMagnitude = decimal.New(1, maxIntegerPart)

// Number is a loosely typed numeric field. It accepts a JSON number or a
// string holding one and defers parsing to Decimal, so callers decide which
// error a bad value maps to.
type Number struct {
	raw string
	set bool
}

// NumberOf wraps s as a present Number.
func NumberOf(s string) Number {
	return Number{raw: s, set: true}
}

// IsSet reports whether a value was supplied. JSON null counts as absent.
func (n Number) IsSet() bool { return n.set }

func (n Number) String() string { return n.raw }

// Decimal parses the value. Blank strings are rejected, and so is anything
// whose magnitude reaches 10^15 or whose precision is finer than 10^-18.
// The exponent is checked before any comparison so that an input such as
// "1e50000000" is never expanded.
func (n Number) Decimal() (decimal.Decimal, error) {
	s := strings.TrimSpace(n.raw)
	if s == "" {
		return decimal.Zero, ErrNotANumber
	}
	if len(s) > maxRawLength {
		return decimal.Zero, ErrOutOfRange
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	if exp := v.Exponent(); exp < minExponent || exp > maxExponent {
		return decimal.Zero, ErrOutOfRange
	}
	if v.Abs().GreaterThanOrEqual(maxMagnitude) {
		return decimal.Zero, ErrOutOfRange
	}
	return v, nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberOf(s)
		return nil
	}
	// Anything else is kept verbatim; booleans and objects fail in Decimal.
	*n = NumberOf(string(b))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	if v, err := n.Decimal(); err == nil {
		return []byte(v.String()), nil
	}
	return json.Marshal(n.raw)
}
