// Package validate exposes the identifier validation operations as a service
// with logging, metrics, tracing, and audit emission around the pure checks.
package validate

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cotejo/internal/audit"
	"cotejo/internal/device"
	"cotejo/internal/validate/metrics"
	"cotejo/pkg/requestcontext"
	"cotejo/pkg/spain"
)

var tracer = otel.Tracer("cotejo.validate")

const (
	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
)

// IdentityRequest carries an identity validation call. OnlyNIF overrides the
// server default when set.
type IdentityRequest struct {
	Value   string
	OnlyNIF *bool
}

// Service runs validations and records their outcomes. The checks themselves
// are pure; the service adds the operational envelope.
type Service struct {
	logger         *slog.Logger
	metrics        *metrics.Metrics
	publisher      *audit.Publisher
	pseudonymizer  *audit.Pseudonymizer
	defaultOnlyNIF bool
}

// New constructs a validation service. Publisher may be nil when auditing is
// disabled.
func New(logger *slog.Logger, m *metrics.Metrics, publisher *audit.Publisher, pseudonymizer *audit.Pseudonymizer, defaultOnlyNIF bool) *Service {
	return &Service{
		logger:         logger,
		metrics:        m,
		publisher:      publisher,
		pseudonymizer:  pseudonymizer,
		defaultOnlyNIF: defaultOnlyNIF,
	}
}

// ValidateIdentity checks a NIF, NIE, or CIF and classifies the outcome.
func (s *Service) ValidateIdentity(ctx context.Context, req IdentityRequest) spain.Result {
	onlyNIF := s.defaultOnlyNIF
	if req.OnlyNIF != nil {
		onlyNIF = *req.OnlyNIF
	}

	ctx, span := tracer.Start(ctx, "validate.Identity", trace.WithAttributes(
		attribute.Bool("validate.only_nif", onlyNIF),
	))
	defer span.End()

	start := time.Now()
	result := spain.ValidateIdentityNumber(req.Value, onlyNIF)

	kind := string(result.Kind)
	if kind == "" {
		kind = "identity"
	}
	span.SetAttributes(
		attribute.String("validate.kind", kind),
		attribute.Bool("validate.valid", result.Valid),
	)

	s.record(ctx, kind, result.Valid, string(result.Reason), result.Canonical, req.Value, time.Since(start))
	return result
}

// ValidateBankAccount checks a CCC bank account code.
func (s *Service) ValidateBankAccount(ctx context.Context, value string) spain.Result {
	ctx, span := tracer.Start(ctx, "validate.BankAccount")
	defer span.End()

	start := time.Now()
	result := spain.ValidateBankAccount(value)

	span.SetAttributes(attribute.Bool("validate.valid", result.Valid))

	s.record(ctx, string(spain.KindCCC), result.Valid, string(result.Reason), result.Canonical, value, time.Since(start))
	return result
}

// ValidatePostalCode checks a Spanish postal code. Postal codes are not
// personal identifiers, so no audit event is emitted.
func (s *Service) ValidatePostalCode(ctx context.Context, value string) bool {
	_, span := tracer.Start(ctx, "validate.PostalCode")
	defer span.End()

	start := time.Now()
	ok := spain.ValidatePostalCode(value)

	span.SetAttributes(attribute.Bool("validate.valid", ok))
	s.observe("postal_code", ok, time.Since(start))
	return ok
}

// ValidatePhoneNumber checks a Spanish phone number.
func (s *Service) ValidatePhoneNumber(ctx context.Context, value string) bool {
	_, span := tracer.Start(ctx, "validate.PhoneNumber")
	defer span.End()

	start := time.Now()
	ok := spain.ValidatePhoneNumber(value)

	span.SetAttributes(attribute.Bool("validate.valid", ok))
	s.observe("phone", ok, time.Since(start))
	return ok
}

// record captures metrics and emits a pseudonymized audit event for the
// identifier kinds that carry personal or financial data.
func (s *Service) record(ctx context.Context, kind string, valid bool, reason, canonical, raw string, elapsed time.Duration) {
	outcome := outcomeValid
	if !valid {
		outcome = outcomeInvalid
	}
	s.metrics.IncrementOutcome(kind, outcome)
	s.metrics.ObserveValidateLatency(kind, elapsed)

	if s.publisher == nil {
		return
	}

	subjectInput := canonical
	if subjectInput == "" {
		subjectInput = spain.Normalize(raw)
	}
	s.publisher.Emit(ctx, audit.Event{
		RequestID: requestcontext.RequestID(ctx),
		Kind:      kind,
		Outcome:   outcome,
		Reason:    reason,
		Subject:   s.pseudonymizer.Subject(subjectInput),
		ClientIP:  requestcontext.ClientIP(ctx),
		Device:    device.ParseUserAgent(requestcontext.UserAgent(ctx)),
	})
}

func (s *Service) observe(kind string, valid bool, elapsed time.Duration) {
	outcome := outcomeValid
	if !valid {
		outcome = outcomeInvalid
	}
	s.metrics.IncrementOutcome(kind, outcome)
	s.metrics.ObserveValidateLatency(kind, elapsed)
}
