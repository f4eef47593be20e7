// Package uuid implements the 128-bit time-ordered identifier used as
// message ID and implicit timestamp throughout the protocol layer.
//
// # Layout
//
// An identifier is two 64-bit words. The most-significant word carries
// the creation instant and a monotonic counter:
//
//	bits [63:16]  milliseconds since the Unix epoch (48 bits, unsigned)
//	bits [15:12]  version nibble, always 7
//	bits [11:0]   counter, strictly increasing within one millisecond
//
// The least-significant word carries the RFC 9562 variant marker in its
// top two bits (0b10) and a per-factory random fill in the remaining 62.
// The fill is generated once per Factory so that identifiers from one
// process compare non-decreasing even when the counter saturates.
//
// # Ordering
//
// Identifiers produced by a single Factory are monotonically
// non-decreasing when compared as unsigned 128-bit values, including
// under concurrent callers. Within one millisecond the embedded counter
// provides the ordering; it saturates at 4095, after which further
// identifiers in that millisecond repeat the final counter value. That
// saturation is a documented property, not an error.
//
// # Legacy identifiers
//
// A version 6 time-ordered identifier with the RFC 4122 variant is
// recognized as valid for backward compatibility, and its timestamp can
// be extracted, but it is not a protocol identifier: strict call sites
// (message id, correlation id validation) reject it.
package uuid
