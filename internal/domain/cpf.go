package domain

import "github.com/eaglebank/contas/shared/utils"

const cpfLength = 11

// ValidateTaxID reports whether taxID is a well-formed CPF. Punctuation is
// ignored; the eleven remaining digits must not all be equal and must end in
// the two mod-11 check digits.
func ValidateTaxID(taxID string) bool {
	digits := utils.DigitsOnly(taxID)
	if len(digits) != cpfLength || allSame(digits) {
		return false
	}

	d := make([]int, cpfLength)
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}

	return checkDigit(d[:9]) == d[9] && checkDigit(d[:10]) == d[10]
}

// checkDigit computes the CPF verifier for prefix, weighting the first digit
// with len(prefix)+1 down to 2 for the last.
func checkDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, v := range prefix {
		sum += v * weight
		weight--
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// FormatTaxID renders taxID as XXX.XXX.XXX-XX. Values that do not strip down
// to exactly eleven digits are returned unchanged.
func FormatTaxID(taxID string) string {
	digits := utils.DigitsOnly(taxID)
	if len(digits) != cpfLength {
		return taxID
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}
