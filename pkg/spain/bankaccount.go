package spain

import (
	"regexp"
	"strconv"
)

// cccShape matches a normalized CCC: entity, office, check digits, account.
// Separators have already been stripped by Normalize, so the four groups are
// contiguous.
var cccShape = regexp.MustCompile(`^(\d{4})(\d{4})(\d{2})(\d{10})$`)

// cccComponents is the 4-4-2-10 decomposition of a bank account code,
// derived once per call and never mutated.
type cccComponents struct {
	entity  string
	office  string
	check   string
	account string
}

// ValidateBankAccount normalizes raw and validates it as a Spanish CCC
// (Código Cuenta Cliente). The two check digits are independent: the first
// covers "00" + entity + office, the second covers the ten-digit account
// number. On success the canonical form is the twenty digits with separators
// removed.
func ValidateBankAccount(raw string) Result {
	value := Normalize(raw)
	m := cccShape.FindStringSubmatch(value)
	if m == nil {
		return malformed()
	}
	c := cccComponents{entity: m[1], office: m[2], check: m[3], account: m[4]}

	want := strconv.Itoa(CCCControlDigit("00"+c.entity+c.office)) +
		strconv.Itoa(CCCControlDigit(c.account))
	if c.check != want {
		return checksumMismatch(KindCCC)
	}
	return valid(KindCCC, value)
}
