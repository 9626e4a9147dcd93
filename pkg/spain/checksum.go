package spain

// Control alphabets and type-letter sets. These are fixed by the Spanish tax
// agency and the banking standard; do not reorder them, the index of each
// letter is the checksum value it encodes.
const (
	// nifControlAlphabet is indexed by number mod 23.
	nifControlAlphabet = "TRWAGMYFPDXBNJZSQVHLCKE"

	// cifControlAlphabet is indexed by the CIF checksum digit.
	cifControlAlphabet = "JABCDEFGHI"

	// cifTypeLetters are the company-type prefixes a CIF may carry.
	cifTypeLetters = "ABCDEFGHJKLMNPQS"

	// nieTypeLetters are the NIE prefixes, each standing in for a leading
	// digit: X is 0, Y is 1, Z is 2.
	nieTypeLetters = "XYZ"
)

// cccWeights multiply the ten digits of a CCC segment positionally.
var cccWeights = [10]int{1, 2, 4, 8, 5, 10, 9, 7, 3, 6}

// NIFControlLetter returns the control letter for a NIF or NIE digit payload.
// The payload may be arbitrarily long (historical NIFs are shorter than eight
// digits and future ones may be longer), so the mod 23 is computed digit by
// digit instead of parsing the whole payload into an integer.
//
// The payload must contain only decimal digits.
func NIFControlLetter(digits string) byte {
	rem := 0
	for i := 0; i < len(digits); i++ {
		rem = (rem*10 + int(digits[i]-'0')) % 23
	}
	return nifControlAlphabet[rem]
}

// CIFControlDigit computes the CIF check value for a digit payload, the
// trailing check character excluded. Digits at odd 0-indexed positions are
// summed as-is; digits at even positions are doubled and the digits of the
// double are summed (8 doubles to 16 and contributes 1+6=7, not 16).
//
// The payload must contain only decimal digits.
func CIFControlDigit(number string) int {
	sum := 0
	for i := 0; i < len(number); i++ {
		d := int(number[i] - '0')
		if i%2 == 1 {
			sum += d
			continue
		}
		doubled := d * 2
		sum += doubled/10 + doubled%10
	}
	return (10 - sum%10) % 10
}

// CCCControlDigit computes the check digit for one ten-digit CCC segment.
// Shorter segments are padded with leading zeros. The weighted sum is taken
// mod 11 and subtracted from 11; the boundary outputs 10 and 11 map to 1 and
// 0 respectively.
//
// The segment must contain only decimal digits and at most ten of them.
func CCCControlDigit(segment string) int {
	sum := 0
	offset := 10 - len(segment)
	for i := 0; i < len(segment); i++ {
		sum += int(segment[i]-'0') * cccWeights[offset+i]
	}
	check := 11 - sum%11
	switch check {
	case 10:
		return 1
	case 11:
		return 0
	default:
		return check
	}
}
