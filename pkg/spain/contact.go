package spain

import "regexp"

// Boundary collaborator checks. These are plain range/shape matches with no
// checksum arithmetic; they exist so callers validating Spanish contact data
// do not have to carry their own tables.
var (
	// Postal codes are five digits whose leading pair is a province code
	// between 01 and 52.
	postalCodeShape = regexp.MustCompile(`^(0[1-9]|[1-4][0-9]|5[0-2])\d{3}$`)

	// Phone numbers are nine digits starting with 6 (mobile), 7 (mobile),
	// 8, or 9 (landline and special services).
	phoneShape = regexp.MustCompile(`^[6789]\d{8}$`)
)

// ValidatePostalCode reports whether raw is a valid Spanish postal code.
func ValidatePostalCode(raw string) bool {
	return postalCodeShape.MatchString(Normalize(raw))
}

// ValidatePhoneNumber reports whether raw is a valid Spanish phone number.
// Separators are stripped before matching.
func ValidatePhoneNumber(raw string) bool {
	return phoneShape.MatchString(Normalize(raw))
}
