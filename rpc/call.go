package rpc

import (
	"context"

	"github.com/c360/meshproto/attributes"
	"github.com/c360/meshproto/errors"
	"github.com/c360/meshproto/uri"
	"github.com/c360/meshproto/uuid"
)

// RequestOption adjusts the attributes of an outgoing request.
type RequestOption func(*attributes.Builder)

// WithPriority overrides the default request priority. The validator
// still enforces the CS4 floor.
func WithPriority(p attributes.Priority) RequestOption {
	return func(b *attributes.Builder) {
		b.WithPriority(p)
	}
}

// WithToken attaches an authorization token to the request.
func WithToken(token string) RequestOption {
	return func(b *attributes.Builder) {
		b.WithToken(token)
	}
}

// WithTraceparent attaches a trace context string to the request.
func WithTraceparent(traceparent string) RequestOption {
	return func(b *attributes.Builder) {
		b.WithTraceparent(traceparent)
	}
}

// NewRequest stamps the attributes of an RPC request: a fresh
// identifier from the factory, the caller's reply-to address as source,
// the method address as sink, the given time-to-live, and the default
// real-time priority unless overridden.
func NewRequest(f *uuid.Factory, replyTo, method uri.URI, ttlMs uint32, opts ...RequestOption) attributes.Attributes {
	b := attributes.NewBuilder(attributes.TypeRequest, f.New(), replyTo).
		WithSink(method).
		WithTTL(ttlMs).
		WithPriority(attributes.MinRPCPriority)

	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// NewResponse stamps the attributes of the response matching a request:
// the request's identifier becomes the correlation id, source and sink
// swap (the invoked method answers toward the reply-to address), and
// priority and time-to-live carry over.
func NewResponse(f *uuid.Factory, request attributes.Attributes) attributes.Attributes {
	sink, _ := request.Sink()

	b := attributes.NewBuilder(attributes.TypeResponse, f.New(), sink).
		WithSink(request.Source()).
		WithReqID(request.ID()).
		WithPriority(request.Priority())

	if ttl, ok := request.TTL(); ok {
		b.WithTTL(ttl)
	}
	return b.Build()
}

// Correlates reports whether response was produced for request: the
// response's correlation id must equal the request's identifier.
func Correlates(request, response attributes.Attributes) bool {
	reqid, ok := response.ReqID()
	return ok && reqid == request.ID()
}

// Call performs an exchange and yields the raw payload or an error.
// Implementations are supplied by the transport layer.
type Call func(ctx context.Context) (*Payload, error)

// Invoke runs the call and maps its outcome into a typed result.
// Cancellation of ctx is the documented fail-fast path: it returns a
// hard error rather than a failure result, because the caller tore the
// exchange down and no verdict about the response exists. Every other
// outcome, success or failure, lands in the Result.
func Invoke[T any](ctx context.Context, call Call, want string) (Result[T], error) {
	payload, err := call(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result[T]{}, errors.WrapTransient(ctxErr, "rpc", "Invoke", "call cancelled")
	}
	return MapResponse[T](payload, err, want), nil
}
