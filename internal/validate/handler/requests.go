package handler

import (
	"strings"

	dErrors "cotejo/pkg/domain-errors"
)

// maxValueLength bounds inputs before normalization. The longest well-formed
// identifier is a separator-heavy CCC, well under this cap.
const maxValueLength = 64

// IdentityRequest is the HTTP request body for POST /validate/identity.
type IdentityRequest struct {
	Value   string `json:"value"`
	OnlyNIF *bool  `json:"only_nif,omitempty"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *IdentityRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Value) > maxValueLength {
		return dErrors.New(dErrors.CodeValidation, "value must be at most 64 characters")
	}
	if strings.TrimSpace(r.Value) == "" {
		return dErrors.New(dErrors.CodeValidation, "value is required")
	}
	return nil
}

// ValueRequest is the HTTP request body for the single-value validation
// endpoints (bank account, postal code, phone number).
type ValueRequest struct {
	Value string `json:"value"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValueRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Value) > maxValueLength {
		return dErrors.New(dErrors.CodeValidation, "value must be at most 64 characters")
	}
	if strings.TrimSpace(r.Value) == "" {
		return dErrors.New(dErrors.CodeValidation, "value is required")
	}
	return nil
}
