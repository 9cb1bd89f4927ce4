package models

import (
	"regexp"
	"strings"
)

var (
	phoneInvalid = regexp.MustCompile(`[^0-9+]`)
	whitespace   = regexp.MustCompile(`\s`)
	nonDigit     = regexp.MustCompile(`[^0-9]`)
)

// NormalizePhone strips every character that is not a digit or a plus
// sign, then strips every plus sign that is not the leading character.
func NormalizePhone(phone string) string {
	phone = phoneInvalid.ReplaceAllString(phone, "")
	if phone == "" {
		return phone
	}
	return string(phone[0]) + strings.ReplaceAll(phone[1:], "+", "")
}

// NormalizeEmail lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// NormalizeTaxCode upper-cases the code and removes all whitespace.
func NormalizeTaxCode(code string) string {
	return whitespace.ReplaceAllString(strings.ToUpper(code), "")
}

// NormalizeZipcode keeps digits only.
func NormalizeZipcode(zip string) string {
	return nonDigit.ReplaceAllString(zip, "")
}

// Normalize applies the field normalization rules in place. Safe to call
// repeatedly; all rules are idempotent.
func (e *Employee) Normalize() {
	e.Phone = NormalizePhone(e.Phone)
	e.Email = NormalizeEmail(e.Email)
	e.TaxCode = NormalizeTaxCode(e.TaxCode)
	e.BirthplaceZipcode = NormalizeZipcode(e.BirthplaceZipcode)
	e.LivingplaceZipcode = NormalizeZipcode(e.LivingplaceZipcode)
}
