package attributes

import (
	"fmt"

	"github.com/c360/meshproto/errors"
	"github.com/c360/meshproto/uri"
)

// Validator is the per-message-type rule set checking an Attributes
// record for internal consistency. Obtain one through ValidatorFor; the
// variant is selected by message type, and every rule is pure: same
// attributes, same verdict, no side effects.
//
// Validate runs the variant's whole rule set and collects every failing
// rule rather than stopping at the first, so a caller can fix all
// problems in one pass.
type Validator struct {
	msgType MessageType
}

// ValidatorFor selects the validator variant for a message type. The
// unspecified sentinel gets a validator that fails every record (its
// type rule can never pass).
func ValidatorFor(msgType MessageType) Validator {
	return Validator{msgType: msgType}
}

// Type returns the message type this variant validates.
func (v Validator) Type() MessageType {
	return v.msgType
}

// Validate runs the full applicable rule set and returns nil on
// success, or an *errors.ValidationErrors aggregate naming every
// violated rule.
func (v Validator) Validate(a Attributes) error {
	rules := []func(Attributes) error{
		v.ValidateType,
		v.ValidateID,
		v.ValidateSource,
		v.ValidateSink,
		v.ValidatePriority,
	}
	switch v.msgType {
	case TypeRequest:
		rules = append(rules, v.ValidateTTL)
	case TypeResponse:
		rules = append(rules, v.ValidateTTL, v.ValidateReqID, v.ValidateCommStatus)
	}

	var violations []errors.Violation
	for _, rule := range rules {
		if err := rule(a); err != nil {
			if violation, ok := err.(errors.Violation); ok {
				violations = append(violations, violation)
			} else {
				violations = append(violations, errors.NewViolation("internal", err.Error()))
			}
		}
	}

	if ve := errors.NewValidationErrors(violations); ve != nil {
		return ve
	}
	return nil
}

// ValidateType checks that the record's declared type matches this
// variant's type.
func (v Validator) ValidateType(a Attributes) error {
	if a.Type() != v.msgType {
		return errors.NewViolation("type",
			fmt.Sprintf("wrong attribute type [%s], expected [%s]", a.Type(), v.msgType))
	}
	return nil
}

// ValidateID checks that the message identifier is present and is a
// strict protocol identifier. Legacy v6 identifiers are deliberately
// rejected here even though IsValid accepts them elsewhere.
func (v Validator) ValidateID(a Attributes) error {
	if !a.ID().IsProtocol() {
		return errors.NewViolation("id", "missing or invalid message id")
	}
	return nil
}

// ValidateSource checks the source URI: present, wildcard-free, and
// shaped for the message type. Publish and notification sources are
// topics; a request's source is its reply-to address; a response's
// source is the invoked method.
func (v Validator) ValidateSource(a Attributes) error {
	source := a.Source()
	if err := uri.Validate(source); err != nil {
		return errors.NewViolation("source", "missing or unaddressable source uri")
	}
	if uri.HasWildcard(source) {
		return errors.NewViolation("source", "source uri must not contain wildcards")
	}

	switch v.msgType {
	case TypePublish, TypeNotification:
		if !uri.IsTopic(source) {
			return errors.NewViolation("source", "source must address a topic")
		}
	case TypeRequest:
		if err := uri.ValidateRPCResponse(source); err != nil {
			return errors.NewViolation("source", "request source must be the caller's rpc response slot")
		}
	case TypeResponse:
		if err := uri.ValidateRPCMethod(source); err != nil {
			return errors.NewViolation("source", "response source must address the invoked rpc method")
		}
	}
	return nil
}

// ValidateSink checks the sink URI against the shape the message type
// requires. Publish forbids a sink entirely; notification requires a
// plain destination; request requires an rpc method; response requires
// the caller's rpc response slot.
func (v Validator) ValidateSink(a Attributes) error {
	sink, present := a.Sink()

	switch v.msgType {
	case TypePublish:
		if present {
			return errors.NewViolation("sink", "sink should not be present")
		}
	case TypeNotification:
		if !present || !uri.IsNotificationDestination(sink) {
			return errors.NewViolation("sink", "sink must address a notification destination")
		}
	case TypeRequest:
		if !present || uri.ValidateRPCMethod(sink) != nil {
			return errors.NewViolation("sink", "sink must address an rpc method")
		}
	case TypeResponse:
		if !present || uri.ValidateRPCResponse(sink) != nil {
			return errors.NewViolation("sink", "sink must address the caller's rpc response slot")
		}
	}
	return nil
}

// ValidatePriority rejects the unspecified sentinel, and for RPC
// messages additionally enforces the real-time floor.
func (v Validator) ValidatePriority(a Attributes) error {
	p := a.Priority()
	if !p.IsValid() {
		return errors.NewViolation("priority", fmt.Sprintf("invalid priority [%s]", p))
	}
	if v.msgType == TypeRequest || v.msgType == TypeResponse {
		if p < MinRPCPriority {
			return errors.NewViolation("priority",
				fmt.Sprintf("priority [%s] below rpc floor [%s]", p, MinRPCPriority))
		}
	}
	return nil
}

// ValidateTTL checks that a time-to-live is present and strictly
// positive. The field is unsigned by construction, so only zero can be
// rejected.
func (v Validator) ValidateTTL(a Attributes) error {
	ttl, present := a.TTL()
	if !present || ttl == 0 {
		return errors.NewViolation("ttl", fmt.Sprintf("invalid ttl [%d]", ttl))
	}
	return nil
}

// ValidateReqID checks that the correlation identifier is present and
// is a strict protocol identifier.
func (v Validator) ValidateReqID(a Attributes) error {
	reqid, present := a.ReqID()
	if !present || !reqid.IsProtocol() {
		return errors.NewViolation("reqid", "missing or invalid correlation id")
	}
	return nil
}

// ValidateCommStatus checks the optional communication status code:
// absent is fine, present must be a recognized code.
func (v Validator) ValidateCommStatus(a Attributes) error {
	status, present := a.CommStatus()
	if present && !status.IsValid() {
		return errors.NewViolation("commstatus", fmt.Sprintf("invalid communication status [%d]", int(status)))
	}
	return nil
}
