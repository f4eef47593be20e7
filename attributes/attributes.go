package attributes

import (
	"github.com/c360/meshproto/uri"
	"github.com/c360/meshproto/uuid"
)

// Attributes is the metadata record attached to every message: its
// identifier, type, addressing, priority, lifetime, and the optional
// RPC correlation fields. Attributes are built once through a Builder
// at message-construction time and are immutable afterwards; legality
// is checked on demand by the validation engine, never by the builder.
type Attributes struct {
	id       uuid.UUID
	msgType  MessageType
	source   uri.URI
	sink     *uri.URI
	priority Priority

	ttl        *uint32
	plevel     *uint32
	commstatus *CommStatus
	reqid      uuid.UUID

	token       string
	traceparent string
}

// ID returns the message identifier.
func (a Attributes) ID() uuid.UUID {
	return a.id
}

// Type returns the declared message type.
func (a Attributes) Type() MessageType {
	return a.msgType
}

// Source returns the source URI: the topic for events, the reply-to
// address for requests, the invoked method for responses.
func (a Attributes) Source() uri.URI {
	return a.source
}

// Sink returns the sink URI when one was set.
func (a Attributes) Sink() (uri.URI, bool) {
	if a.sink == nil {
		return uri.Empty(), false
	}
	return *a.sink, true
}

// Priority returns the quality-of-service tier.
func (a Attributes) Priority() Priority {
	return a.priority
}

// TTL returns the time-to-live in milliseconds when one was set.
// Absent or zero means the message never expires.
func (a Attributes) TTL() (uint32, bool) {
	if a.ttl == nil {
		return 0, false
	}
	return *a.ttl, true
}

// PermissionLevel returns the permission level when one was set.
func (a Attributes) PermissionLevel() (uint32, bool) {
	if a.plevel == nil {
		return 0, false
	}
	return *a.plevel, true
}

// CommStatus returns the communication status code when one was set.
func (a Attributes) CommStatus() (CommStatus, bool) {
	if a.commstatus == nil {
		return StatusOK, false
	}
	return *a.commstatus, true
}

// ReqID returns the correlation identifier when one was set. A zero
// identifier means absent.
func (a Attributes) ReqID() (uuid.UUID, bool) {
	return a.reqid, !a.reqid.IsZero()
}

// Token returns the authorization token, legal only on requests.
func (a Attributes) Token() string {
	return a.token
}

// Traceparent returns the trace context string.
func (a Attributes) Traceparent() string {
	return a.traceparent
}

// IsExpired reports whether the message's time-to-live budget is spent
// at the given instant in epoch milliseconds. A message without a TTL,
// or with TTL zero, never expires; a message whose identifier carries
// no extractable timestamp cannot be judged and counts as not expired.
func (a Attributes) IsExpired(nowMs int64) bool {
	ttl, ok := a.TTL()
	if !ok || ttl == 0 {
		return false
	}
	return uuid.IsExpired(a.id, int64(ttl), nowMs)
}

// Builder assembles an Attributes record field by field. Build returns
// the immutable value; it performs no legality checking - that is the
// validation engine's job, so a caller can build an intentionally
// malformed record and learn every problem in one Validate pass.
type Builder struct {
	attrs Attributes
}

// NewBuilder starts a builder for the given message type, stamping the
// record with the identifier and source address every message carries.
func NewBuilder(msgType MessageType, id uuid.UUID, source uri.URI) *Builder {
	return &Builder{attrs: Attributes{
		id:      id,
		msgType: msgType,
		source:  source,
	}}
}

// WithSink sets the destination URI.
func (b *Builder) WithSink(sink uri.URI) *Builder {
	b.attrs.sink = &sink
	return b
}

// WithPriority sets the quality-of-service tier.
func (b *Builder) WithPriority(p Priority) *Builder {
	b.attrs.priority = p
	return b
}

// WithTTL sets the time-to-live in milliseconds.
func (b *Builder) WithTTL(ttlMs uint32) *Builder {
	b.attrs.ttl = &ttlMs
	return b
}

// WithPermissionLevel sets the permission level.
func (b *Builder) WithPermissionLevel(level uint32) *Builder {
	b.attrs.plevel = &level
	return b
}

// WithCommStatus sets the communication status code.
func (b *Builder) WithCommStatus(status CommStatus) *Builder {
	b.attrs.commstatus = &status
	return b
}

// WithReqID sets the correlation identifier linking a response to its
// request.
func (b *Builder) WithReqID(reqid uuid.UUID) *Builder {
	b.attrs.reqid = reqid
	return b
}

// WithToken sets the authorization token.
func (b *Builder) WithToken(token string) *Builder {
	b.attrs.token = token
	return b
}

// WithTraceparent sets the trace context string.
func (b *Builder) WithTraceparent(traceparent string) *Builder {
	b.attrs.traceparent = traceparent
	return b
}

// Build returns the assembled immutable Attributes value.
func (b *Builder) Build() Attributes {
	return b.attrs
}
