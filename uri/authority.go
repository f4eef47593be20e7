// Package uri implements the structured addressing model of the protocol
// layer: an Authority (where an entity runs), an Entity (what software),
// a Resource (the manipulable unit within it), and their composition
// into a URI. Values are built through factory constructors that enforce
// the legal shapes and normalize names; predicates over the values are
// pure and side-effect free.
package uri

import (
	"net/netip"
	"strings"
)

// Authority represents where an entity runs: optionally a device name,
// a domain name, and/or a resolved network address. The zero value is
// the local authority. Names are folded to lowercase on construction.
type Authority struct {
	Device string
	Domain string
	// Address is the resolved network address of the device, when known.
	Address netip.Addr

	remote bool
}

// LocalAuthority returns the authority of the local deployment: no
// device, domain or address information.
func LocalAuthority() Authority {
	return Authority{}
}

// RemoteAuthority creates a remote authority addressed by device and
// domain name. Either may be empty, but an authority with neither is
// indistinguishable from local.
func RemoteAuthority(device, domain string) Authority {
	return Authority{
		Device: strings.ToLower(device),
		Domain: strings.ToLower(domain),
		remote: true,
	}
}

// RemoteAuthorityAddr creates a remote authority addressed directly by
// network address.
func RemoteAuthorityAddr(addr netip.Addr) Authority {
	return Authority{Address: addr, remote: true}
}

// ResolvedRemoteAuthority creates a remote authority carrying both its
// names and its resolved network address.
func ResolvedRemoteAuthority(device, domain string, addr netip.Addr) Authority {
	return Authority{
		Device:  strings.ToLower(device),
		Domain:  strings.ToLower(domain),
		Address: addr,
		remote:  true,
	}
}

// IsEmpty reports whether the authority carries no device, domain or
// address information.
func (a Authority) IsEmpty() bool {
	return a.Device == "" && a.Domain == "" && !a.Address.IsValid()
}

// IsLocal reports whether the authority addresses the local deployment.
// A partial authority never marked remote is treated as local.
func (a Authority) IsLocal() bool {
	return !a.remote
}

// IsRemote reports whether the authority was explicitly marked remote.
func (a Authority) IsRemote() bool {
	return a.remote
}

// IsResolved reports whether the authority needs no further lookup: a
// local authority trivially, a remote one once it carries both a device
// name and a network address.
func (a Authority) IsResolved() bool {
	if a.IsLocal() {
		return true
	}
	return a.Device != "" && a.Address.IsValid()
}

// IsLongForm reports whether the authority can serialize into the
// human-readable name-based wire form. Local authorities have nothing to
// serialize and qualify trivially.
func (a Authority) IsLongForm() bool {
	return a.IsLocal() || a.Device != ""
}

// IsMicroForm reports whether the authority can serialize into the
// compact address-based wire form.
func (a Authority) IsMicroForm() bool {
	return a.IsLocal() || a.Address.IsValid()
}
