package spain

import "regexp"

// identityShape decomposes a normalized identifier into an optional type
// prefix, a run of digits, and an optional control suffix. The digit run is
// deliberately unbounded: NIF length is not checked (old numbers are shorter
// than eight digits, future ones may be longer), while CIF length is enforced
// separately after classification.
var identityShape = regexp.MustCompile(
	`^([` + cifTypeLetters + nieTypeLetters + `]?)(\d+)([` + nifControlAlphabet + cifControlAlphabet + `]?)$`,
)

// parsedIdentifier is the structural decomposition of a normalized input.
// Prefix and suffix are zero when absent.
type parsedIdentifier struct {
	prefix byte
	digits string
	suffix byte
}

// classify matches value against the prefix/digits/suffix shape. The second
// return is false when the value does not decompose, which callers report as
// malformed.
func classify(value string) (parsedIdentifier, bool) {
	m := identityShape.FindStringSubmatch(value)
	if m == nil {
		return parsedIdentifier{}, false
	}
	var p parsedIdentifier
	if m[1] != "" {
		p.prefix = m[1][0]
	}
	p.digits = m[2]
	if m[3] != "" {
		p.suffix = m[3][0]
	}
	return p, true
}

func isNIEPrefix(b byte) bool {
	return b == 'X' || b == 'Y' || b == 'Z'
}

func isCIFPrefix(b byte) bool {
	for i := 0; i < len(cifTypeLetters); i++ {
		if cifTypeLetters[i] == b {
			return true
		}
	}
	return false
}

// ValidateIdentityNumber normalizes raw and validates it as a NIF, NIE, or
// CIF. When onlyNIF is true, inputs that are structurally valid CIFs are
// rejected with ReasonKindDisallowed regardless of their checksum; NIF and
// NIE results are unaffected by the flag.
//
// Classification precedence: a bare digits+letter value is a NIF; an X/Y/Z
// prefix with a control suffix is a NIE; a company-type prefix with seven or
// eight digits is a CIF; anything else is malformed.
func ValidateIdentityNumber(raw string, onlyNIF bool) Result {
	value := Normalize(raw)
	p, ok := classify(value)
	if !ok {
		return malformed()
	}

	switch {
	case p.prefix == 0 && p.suffix != 0:
		if p.suffix != NIFControlLetter(p.digits) {
			return checksumMismatch(KindNIF)
		}
		return valid(KindNIF, value)

	case isNIEPrefix(p.prefix) && p.suffix != 0:
		// The NIE prefix stands in for a leading digit of the NIF payload.
		mapped := string('0'+p.prefix-'X') + p.digits
		if p.suffix != NIFControlLetter(mapped) {
			return checksumMismatch(KindNIE)
		}
		return valid(KindNIE, value)

	case isCIFPrefix(p.prefix) && (len(p.digits) == 7 || len(p.digits) == 8):
		if onlyNIF {
			return kindDisallowed()
		}
		return validateCIF(p, value)

	default:
		return malformed()
	}
}

// validateCIF checks the control character of a structurally valid CIF. When
// the match carried no suffix letter the last digit is itself the check
// character. Both the digit and the letter form of the checksum are accepted
// for every company type: the official per-type rules are not reliably
// documented and stricter mappings disagree with each other.
func validateCIF(p parsedIdentifier, canonical string) Result {
	number, check := p.digits, p.suffix
	if check == 0 {
		number, check = p.digits[:len(p.digits)-1], p.digits[len(p.digits)-1]
	}
	checksum := CIFControlDigit(number)
	if check != byte('0'+checksum) && check != cifControlAlphabet[checksum] {
		return checksumMismatch(KindCIF)
	}
	return valid(KindCIF, canonical)
}
