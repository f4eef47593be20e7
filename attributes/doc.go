// Package attributes implements the message metadata model and its
// validation engine.
//
// # Model
//
// Every message carries an Attributes record: a protocol identifier, a
// message type, a source URI, and a set of optional fields (sink,
// priority, time-to-live, permission level, communication status,
// correlation id, token, trace context). Records are assembled through
// a Builder and immutable afterwards.
//
// The builder deliberately performs no legality checking. Field
// legality depends on the message type - a publish message must not
// carry a sink, a request must, a response needs a correlation id - and
// encoding those rules in the builder would force callers to handle
// construction failures piecemeal. Instead the validation engine checks
// a finished record on demand and reports every violated rule at once.
//
// # Validation
//
// ValidatorFor selects one of four validator variants by message type.
// Each variant runs a fixed rule set over the record and collects all
// failures into an errors.ValidationErrors aggregate. Two identifier
// rules are intentionally stricter than the rest of the system: the
// message id and correlation id must be protocol identifiers, while
// legacy v6 identifiers - valid for timestamp extraction elsewhere -
// are rejected.
//
// Validation is pure: it never mutates the record, performs no I/O, and
// returns the same verdict for the same inputs.
package attributes
