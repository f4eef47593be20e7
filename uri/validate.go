package uri

import (
	"strings"

	"github.com/c360/meshproto/errors"
)

// Protocol wildcard markers. A URI containing any of them addresses a
// set of resources and is never a legal message source or sink.
const (
	// WildcardName matches any name segment.
	WildcardName = "*"
	// WildcardID matches any numeric id.
	WildcardID uint16 = 0xFFFF
	// WildcardVersion matches any major version.
	WildcardVersion uint8 = 0xFF
)

// HasWildcard reports whether any segment of the URI is a wildcard.
func HasWildcard(u URI) bool {
	return strings.Contains(u.Authority.Device, WildcardName) ||
		strings.Contains(u.Authority.Domain, WildcardName) ||
		strings.Contains(u.Entity.Name, WildcardName) ||
		strings.Contains(u.Resource.Name, WildcardName) ||
		strings.Contains(u.Resource.Instance, WildcardName) ||
		u.Entity.ID == WildcardID ||
		u.Resource.ID == WildcardID ||
		u.Entity.Version == WildcardVersion
}

// Validate checks the baseline shape every addressable URI must have:
// not empty, and an entity addressable by name or numeric id.
func Validate(u URI) error {
	if u.IsEmpty() {
		return errors.WrapInvalid(errors.ErrMissingRequired, "URI", "Validate", "uri is empty")
	}
	if u.Entity.Name == "" && u.Entity.ID == 0 {
		return errors.WrapInvalid(errors.ErrMissingRequired, "URI", "Validate",
			"entity must carry a name or numeric id")
	}
	return nil
}

// ValidateRPCMethod checks that the URI addresses an RPC method, the
// shape required of a request sink and a response source.
func ValidateRPCMethod(u URI) error {
	if err := Validate(u); err != nil {
		return err
	}
	if !u.Resource.IsRPCMethod() {
		return errors.WrapInvalid(errors.ErrInvalidData, "URI", "ValidateRPCMethod",
			"resource does not address an rpc method")
	}
	return nil
}

// ValidateRPCResponse checks that the URI addresses an RPC response
// slot, the shape required of a request source (the reply-to address)
// and a response sink.
func ValidateRPCResponse(u URI) error {
	if err := Validate(u); err != nil {
		return err
	}
	if !u.Resource.IsRPCResponse() {
		return errors.WrapInvalid(errors.ErrInvalidData, "URI", "ValidateRPCResponse",
			"resource is not the rpc response slot")
	}
	return nil
}

// IsTopic reports whether the URI addresses a publishable topic: a
// non-empty, non-RPC resource on an addressable entity.
func IsTopic(u URI) bool {
	if Validate(u) != nil {
		return false
	}
	if u.Resource.IsRPCMethod() || u.Resource.IsRPCResponse() {
		return false
	}
	return !u.Resource.IsEmpty()
}

// IsNotificationDestination reports whether the URI is shaped as a
// plain notification destination: an addressable entity, no wildcard,
// and no resource id (id 0), since notifications target the entity
// itself rather than one of its topics or methods.
func IsNotificationDestination(u URI) bool {
	if Validate(u) != nil || HasWildcard(u) {
		return false
	}
	if u.Resource.IsRPCMethod() || u.Resource.IsRPCResponse() {
		return false
	}
	return u.Resource.ID == 0
}
