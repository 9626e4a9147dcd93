// Package spain validates and normalizes Spanish identity and bank account
// identifiers: NIF (individuals), NIE (foreigners), CIF (companies), and the
// CCC bank account code, plus postal code and phone number boundary checks.
//
// Every operation is a pure function over an immutable input string. There is
// no I/O, no shared state, and no context.Context; callers may invoke the
// package concurrently without synchronization. Failures are reported as
// values, never as errors or panics, so callers branch on the outcome tag.
package spain

// Kind identifies which identifier family an input matched.
type Kind string

const (
	KindNIF Kind = "nif"
	KindNIE Kind = "nie"
	KindCIF Kind = "cif"
	KindCCC Kind = "ccc"
)

// Reason classifies why validation failed.
type Reason string

const (
	// ReasonMalformed means the input does not decompose into the expected
	// structural shape for any identifier kind.
	ReasonMalformed Reason = "malformed"

	// ReasonChecksumMismatch means the input is structurally valid but its
	// arithmetic check character does not match. Result.Kind names the kind
	// whose checksum failed.
	ReasonChecksumMismatch Reason = "checksum_mismatch"

	// ReasonKindDisallowed means the input is a structurally valid CIF but
	// the caller restricted validation to personal identifiers (NIF/NIE).
	ReasonKindDisallowed Reason = "kind_disallowed"
)

// Result is the outcome of a single validation call. When Valid is true,
// Kind and Canonical are set and Reason is empty; Canonical is the input with
// separators removed and case normalized, nothing more. When Valid is false,
// Reason is set, and Kind additionally names the offending kind for
// checksum mismatches.
type Result struct {
	Valid     bool
	Kind      Kind
	Canonical string
	Reason    Reason
}

func valid(kind Kind, canonical string) Result {
	return Result{Valid: true, Kind: kind, Canonical: canonical}
}

func malformed() Result {
	return Result{Reason: ReasonMalformed}
}

func checksumMismatch(kind Kind) Result {
	return Result{Kind: kind, Reason: ReasonChecksumMismatch}
}

func kindDisallowed() Result {
	return Result{Reason: ReasonKindDisallowed}
}
