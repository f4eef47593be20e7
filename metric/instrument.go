package metric

import (
	stderrors "errors"

	"github.com/c360/meshproto/attributes"
	"github.com/c360/meshproto/errors"
	"github.com/c360/meshproto/uuid"
)

// InstrumentedValidator wraps a validator with verdict and violation
// counters. The verdict itself is untouched: the wrapped validator
// stays pure, only the observation is added.
type InstrumentedValidator struct {
	validator attributes.Validator
	metrics   *Metrics
}

// NewInstrumentedValidator wraps the validator variant for the given
// message type.
func NewInstrumentedValidator(msgType attributes.MessageType, metrics *Metrics) *InstrumentedValidator {
	return &InstrumentedValidator{
		validator: attributes.ValidatorFor(msgType),
		metrics:   metrics,
	}
}

// Validate runs the wrapped validator and records the outcome.
func (iv *InstrumentedValidator) Validate(a attributes.Attributes) error {
	err := iv.validator.Validate(a)
	msgType := iv.validator.Type().String()

	if err == nil {
		iv.metrics.ValidationVerdicts.WithLabelValues(msgType, "valid").Inc()
		return nil
	}

	iv.metrics.ValidationVerdicts.WithLabelValues(msgType, "invalid").Inc()

	var ve *errors.ValidationErrors
	if stderrors.As(err, &ve) {
		for _, violation := range ve.Violations() {
			iv.metrics.ValidationViolations.WithLabelValues(msgType, violation.Rule).Inc()
		}
	}
	return err
}

// IsExpired runs the expiry check and counts spent budgets.
func (iv *InstrumentedValidator) IsExpired(a attributes.Attributes, nowMs int64) bool {
	expired := a.IsExpired(nowMs)
	if expired {
		iv.metrics.MessagesExpired.Inc()
	}
	return expired
}

// InstrumentedFactory wraps an identifier factory with a generation
// counter.
type InstrumentedFactory struct {
	factory *uuid.Factory
	metrics *Metrics
}

// NewInstrumentedFactory wraps the given factory.
func NewInstrumentedFactory(factory *uuid.Factory, metrics *Metrics) *InstrumentedFactory {
	return &InstrumentedFactory{factory: factory, metrics: metrics}
}

// New generates an identifier and counts it.
func (f *InstrumentedFactory) New() uuid.UUID {
	f.metrics.IdentifiersGenerated.Inc()
	return f.factory.New()
}
