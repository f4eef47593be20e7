// Package meshproto provides the transport-agnostic protocol layer for
// a publish/subscribe and RPC messaging fabric: time-ordered
// identifiers, structured addressing, message attribute validation, and
// RPC correlation.
//
// # Architecture
//
// The module is a library of value-level operations with one stateful
// exception, layered leaves first:
//
//	┌─────────────────────────────────────┐
//	│              rpc                    │  request/response stamping,
//	│   (correlation, result mapping)     │  Result combinators
//	└─────────────────────────────────────┘
//	           ↓ builds on
//	┌─────────────────────────────────────┐
//	│           attributes                │  metadata record, builder,
//	│  (per-type validation engine)       │  aggregate verdicts
//	└─────────────────────────────────────┘
//	           ↓ builds on
//	┌──────────────────┬──────────────────┐
//	│       uuid       │       uri        │  identifiers and addressing
//	│ (factory, ttl)   │ (triple, codec)  │
//	└──────────────────┴──────────────────┘
//
// Everything above sits on errors (classification, violation
// aggregates) and pkg/timestamp (canonical millisecond time). config
// and metric are ambient: node identity and Prometheus observation.
//
// # Boundaries
//
// meshproto MUST NOT contain:
//   - Network I/O or broker bindings (transports call into this core)
//   - Persistence of any kind
//   - Wire encodings beyond the long-form URI string codec
//
// Transports hand decoded attribute records to the validation engine
// and consult the expiry predicates before dispatch; everything else
// about moving bytes is theirs.
//
// # Concurrency
//
// The identifier factory's millisecond/counter cell is the only shared
// state and is mutex-guarded. Validation and addressing are
// referentially transparent and safe to call from any number of
// goroutines.
package meshproto
