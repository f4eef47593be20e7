package uri

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/meshproto/errors"
)

// Scheme is the URI scheme of the long wire form.
const Scheme = "up:"

// Serialize renders the URI into its long, human-readable wire form:
//
//	up://<device>.<domain>/<entity>/<version>/<resource>.<instance>#<message>
//
// Local authorities omit the "//authority" part. Trailing empty
// segments are dropped. URIs that cannot be expressed by name fail with
// an invalid-data error.
func Serialize(u URI) (string, error) {
	if u.IsEmpty() {
		return "", nil
	}
	if !u.IsLongForm() {
		return "", errors.WrapInvalid(errors.ErrInvalidData, "URI", "Serialize",
			"uri is not long-form capable")
	}

	var sb strings.Builder
	sb.WriteString(Scheme)

	if u.Authority.IsRemote() {
		sb.WriteString("//")
		sb.WriteString(u.Authority.Device)
		if u.Authority.Domain != "" {
			sb.WriteString(".")
			sb.WriteString(u.Authority.Domain)
		}
	}

	if u.Entity.Name == "" {
		return sb.String(), nil
	}
	sb.WriteString("/")
	sb.WriteString(u.Entity.Name)

	if u.Entity.Version != 0 {
		sb.WriteString("/")
		sb.WriteString(strconv.Itoa(int(u.Entity.Version)))
	} else if !u.Resource.IsEmpty() {
		// Keep the segment positions stable when a resource follows
		sb.WriteString("/")
	}

	if u.Resource.IsEmpty() {
		return sb.String(), nil
	}
	sb.WriteString("/")
	sb.WriteString(u.Resource.Name)
	if u.Resource.Instance != "" {
		sb.WriteString(".")
		sb.WriteString(u.Resource.Instance)
	}
	if u.Resource.Message != "" {
		sb.WriteString("#")
		sb.WriteString(u.Resource.Message)
	}

	return sb.String(), nil
}

// ParseLong reads a URI from its long wire form. The result satisfies
// the structural invariants of the component types; equality with other
// URIs remains structural, never textual.
func ParseLong(s string) (URI, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty(), nil
	}

	rest := strings.TrimPrefix(s, Scheme)

	var u URI
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		authority, tail, _ := strings.Cut(rest, "/")
		device, domain, _ := strings.Cut(authority, ".")
		u.Authority = RemoteAuthority(device, domain)
		rest = tail
	} else {
		rest = strings.TrimPrefix(rest, "/")
	}

	if rest == "" {
		return u, nil
	}

	segments := strings.SplitN(rest, "/", 3)
	u.Entity = EntityFromName(segments[0])

	if len(segments) > 1 && segments[1] != "" {
		version, err := strconv.ParseUint(segments[1], 10, 8)
		if err != nil {
			return Empty(), errors.WrapInvalid(errors.ErrParsingFailed, "URI", "ParseLong",
				fmt.Sprintf("version segment [%s]", segments[1]))
		}
		u.Entity.Version = uint8(version)
	}

	if len(segments) > 2 && segments[2] != "" {
		resource, message, _ := strings.Cut(segments[2], "#")
		name, instance, _ := strings.Cut(resource, ".")
		u.Resource = Resource{
			Name:     name,
			Instance: instance,
			Message:  message,
		}
	}

	return u, nil
}
