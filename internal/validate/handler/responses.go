package handler

import "cotejo/pkg/spain"

// ValidationResponse is the HTTP response for identity and bank account
// validation.
type ValidationResponse struct {
	Valid     bool   `json:"valid"`
	Kind      string `json:"kind,omitempty"`
	Canonical string `json:"canonical,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// CheckResponse is the HTTP response for the boundary checks (postal code,
// phone number).
type CheckResponse struct {
	Valid bool `json:"valid"`
}

// FromResult converts a validation result to an HTTP response.
func FromResult(result spain.Result) *ValidationResponse {
	return &ValidationResponse{
		Valid:     result.Valid,
		Kind:      string(result.Kind),
		Canonical: result.Canonical,
		Reason:    string(result.Reason),
	}
}
