package errors

// Violation is a single failed validation rule. Rule names the rule that
// failed (e.g. "sink", "ttl", "priority"); Message is the human-readable
// diagnostic for that rule.
type Violation struct {
	Rule    string
	Message string
}

// Error implements the error interface.
func (v Violation) Error() string {
	return v.Message
}

// NewViolation creates a Violation for a named rule.
func NewViolation(rule, message string) Violation {
	return Violation{Rule: rule, Message: message}
}

// ValidationErrors is the aggregate verdict returned by a validator run.
// It preserves every independent rule failure in order, so a caller can
// fix all problems in one pass rather than discovering them one at a time.
//
// The rendered message is comma-joined, matching the historical verdict
// format; the typed violation list is available via Violations or
// errors.As.
type ValidationErrors struct {
	violations []Violation
}

// NewValidationErrors creates an aggregate from the given violations.
// Returns nil if the list is empty, so the result can be returned
// directly as an error value.
func NewValidationErrors(violations []Violation) *ValidationErrors {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationErrors{violations: violations}
}

// Error implements the error interface with the comma-joined legacy format.
func (ve *ValidationErrors) Error() string {
	parts := make([]string, len(ve.violations))
	for i, v := range ve.violations {
		parts[i] = v.Message
	}
	return joinMessages(parts)
}

// Violations returns the ordered list of rule failures.
func (ve *ValidationErrors) Violations() []Violation {
	out := make([]Violation, len(ve.violations))
	copy(out, ve.violations)
	return out
}

// Has reports whether the aggregate contains a failure for the named rule.
func (ve *ValidationErrors) Has(rule string) bool {
	for _, v := range ve.violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

// Len returns the number of rule failures.
func (ve *ValidationErrors) Len() int {
	return len(ve.violations)
}

// Unwrap exposes each violation to errors.Is/errors.As traversal.
func (ve *ValidationErrors) Unwrap() []error {
	out := make([]error, len(ve.violations))
	for i, v := range ve.violations {
		out[i] = v
	}
	return out
}
