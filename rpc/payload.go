package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/c360/meshproto/attributes"
	"github.com/c360/meshproto/errors"
)

// StatusPayloadType tags a payload carrying a terminal Status instead
// of the method's declared result type.
const StatusPayloadType = "core.status"

// Payload is the type-tagged body handed back by a completed call. The
// transport layer owns the bytes on the wire; by the time a payload
// reaches this package it is a tag plus raw JSON data.
type Payload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NewPayload builds a payload by encoding the given value under a type
// tag.
func NewPayload(payloadType string, value any) (*Payload, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Payload", "NewPayload", "encode value")
	}
	return &Payload{Type: payloadType, Data: data}, nil
}

// Status is the terminal status object a server returns in place of a
// result when a call fails at the application level.
type Status struct {
	Code    attributes.CommStatus `json:"code"`
	Message string                `json:"message,omitempty"`
}

// StatusPayload builds a payload carrying a terminal status.
func StatusPayload(code attributes.CommStatus, message string) *Payload {
	data, _ := json.Marshal(Status{Code: code, Message: message})
	return &Payload{Type: StatusPayloadType, Data: data}
}

// MapResponse maps a completed call outcome into a typed result. Every
// error path resolves to the failure variant, never a panic or a
// propagated error:
//
//   - callErr set: failure wrapping the upstream error
//   - nil payload: failure
//   - payload tagged as a terminal status with a non-OK code: failure
//     carrying the code and server message
//   - payload tag not matching want: failure with a diagnostic
//   - undecodable data: failure with a diagnostic
//
// Otherwise the decoded value is wrapped in the success variant. The
// one deliberate exception to "never propagate" is upstream
// cancellation, which Invoke surfaces as a hard error before mapping.
func MapResponse[T any](payload *Payload, callErr error, want string) Result[T] {
	if callErr != nil {
		return Fail[T](errors.Wrap(callErr, "rpc", "MapResponse", "upstream call"))
	}
	if payload == nil {
		return Fail[T](errors.ErrNilPayload)
	}

	if payload.Type == StatusPayloadType && want != StatusPayloadType {
		var status Status
		if err := json.Unmarshal(payload.Data, &status); err != nil {
			return Fail[T](errors.WrapInvalid(err, "rpc", "MapResponse", "decode status"))
		}
		if status.Code != attributes.StatusOK {
			return Failf[T]("call failed with status [%s]: %s", status.Code, status.Message)
		}
		// An OK status where a value was expected carries no result
		return Fail[T](fmt.Errorf("%w: got ok status, expected [%s]", errors.ErrTypeMismatch, want))
	}

	if payload.Type != want {
		return Fail[T](fmt.Errorf("%w: got [%s], expected [%s]",
			errors.ErrTypeMismatch, payload.Type, want))
	}

	var value T
	if err := json.Unmarshal(payload.Data, &value); err != nil {
		return Fail[T](errors.WrapInvalid(err, "rpc", "MapResponse", "decode payload"))
	}
	return Ok(value)
}
