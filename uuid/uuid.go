package uuid

import (
	"encoding/binary"

	guuid "github.com/google/uuid"

	"github.com/c360/meshproto/errors"
)

// Version identifies the identifier scheme encoded in the version nibble.
type Version uint8

const (
	// VersionTimeOrdered is the protocol identifier version (RFC 9562 v7).
	VersionTimeOrdered Version = 7
	// VersionLegacy is the superseded time-ordered version (RFC 4122 v6),
	// recognized for backward compatibility only.
	VersionLegacy Version = 6
)

// variantRFC is the two-bit variant marker both recognized versions carry.
const variantRFC = 0b10

// Timestamp/counter layout constants for the most-significant word.
const (
	timeShift    = 16
	versionShift = 12
	versionMask  = 0xF
	counterMask  = 0xFFF

	// MaxCounter is the saturation value of the per-millisecond counter.
	MaxCounter = 0xFFF
)

// gregorianUnixTicks is the count of 100ns intervals between the
// Gregorian epoch (1582-10-15) and the Unix epoch, used to convert
// legacy v6 timestamps.
const gregorianUnixTicks = 0x01B21DD213814000

// UUID is an immutable 128-bit time-ordered identifier, stored as a
// most-significant and least-significant 64-bit word pair. The zero
// value is the null identifier, which is never valid.
type UUID struct {
	msb uint64
	lsb uint64
}

// FromWords builds a UUID from its raw 64-bit words. No validation is
// performed; use IsValid to check the result.
func FromWords(msb, lsb uint64) UUID {
	return UUID{msb: msb, lsb: lsb}
}

// Words returns the raw most-significant and least-significant words.
func (id UUID) Words() (msb, lsb uint64) {
	return id.msb, id.lsb
}

// IsZero reports whether the identifier is the null value.
func (id UUID) IsZero() bool {
	return id.msb == 0 && id.lsb == 0
}

// Version returns the version nibble from the most-significant word.
func (id UUID) Version() Version {
	return Version((id.msb >> versionShift) & versionMask)
}

// variant returns the two-bit variant marker from the least-significant word.
func (id UUID) variant() uint8 {
	return uint8(id.lsb >> 62)
}

// IsProtocol reports whether the identifier is a protocol identifier:
// version 7 with the RFC 9562 variant. Strict call sites (message id,
// correlation id) accept only protocol identifiers.
func (id UUID) IsProtocol() bool {
	return id.Version() == VersionTimeOrdered && id.variant() == variantRFC
}

// IsLegacy reports whether the identifier is a legacy v6 time-ordered
// identifier with the RFC 4122 variant.
func (id UUID) IsLegacy() bool {
	return id.Version() == VersionLegacy && id.variant() == variantRFC
}

// IsValid reports whether the identifier is either a protocol identifier
// or a recognized legacy identifier.
func (id UUID) IsValid() bool {
	return id.IsProtocol() || id.IsLegacy()
}

// Time extracts the creation instant as milliseconds since the Unix
// epoch. For protocol identifiers the timestamp is read directly from
// the high 48 bits; for legacy v6 identifiers the 60-bit Gregorian tick
// count is reassembled and converted. ok is false when the identifier is
// neither recognized version, so callers can choose a safe default
// instead of failing the hot path.
func (id UUID) Time() (ms int64, ok bool) {
	switch {
	case id.IsProtocol():
		return int64(id.msb >> timeShift), true
	case id.IsLegacy():
		ticks := (id.msb>>32)<<28 | (id.msb>>16&0xFFFF)<<12 | id.msb&0xFFF
		return (int64(ticks) - gregorianUnixTicks) / 10_000, true
	default:
		return 0, false
	}
}

// Counter returns the per-millisecond counter bits. Meaningful only for
// protocol identifiers.
func (id UUID) Counter() uint16 {
	return uint16(id.msb & counterMask)
}

// Compare orders two identifiers as unsigned 128-bit values. It returns
// -1, 0 or +1 in the usual way.
func (id UUID) Compare(other UUID) int {
	switch {
	case id.msb < other.msb:
		return -1
	case id.msb > other.msb:
		return 1
	case id.lsb < other.lsb:
		return -1
	case id.lsb > other.lsb:
		return 1
	default:
		return 0
	}
}

// Bytes returns the big-endian 16-byte form.
func (id UUID) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], id.msb)
	binary.BigEndian.PutUint64(b[8:], id.lsb)
	return b
}

// String returns the canonical hyphenated text form,
// e.g. "0185e3f7-7f00-7000-8000-8f607f2c9e41".
func (id UUID) String() string {
	b := id.Bytes()
	return guuid.UUID(b).String()
}

// Parse reads an identifier from its canonical hyphenated text form.
// The parsed value is not checked for version or variant; use IsValid.
func Parse(s string) (UUID, error) {
	parsed, err := guuid.Parse(s)
	if err != nil {
		return UUID{}, errors.WrapInvalid(err, "UUID", "Parse", "text form")
	}
	return UUID{
		msb: binary.BigEndian.Uint64(parsed[:8]),
		lsb: binary.BigEndian.Uint64(parsed[8:]),
	}, nil
}

// FromBytes reads an identifier from its big-endian 16-byte form.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return UUID{}, errors.WrapInvalid(errors.ErrInvalidData, "UUID", "FromBytes",
			"identifier must be exactly 16 bytes")
	}
	return UUID{
		msb: binary.BigEndian.Uint64(b[:8]),
		lsb: binary.BigEndian.Uint64(b[8:]),
	}, nil
}
