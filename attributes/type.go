package attributes

// MessageType is the closed set of message kinds carried by the
// protocol. The zero value is the unspecified sentinel, which no
// validator accepts.
type MessageType int

const (
	// TypeUnspecified is the sentinel for an unset message type.
	TypeUnspecified MessageType = iota
	// TypePublish is a fire-and-forget event on a topic.
	TypePublish
	// TypeNotification is a directed event to a specific sink entity.
	TypeNotification
	// TypeRequest is an RPC invocation of a method.
	TypeRequest
	// TypeResponse is the RPC reply correlated to a request.
	TypeResponse
)

// String returns the message type name.
func (t MessageType) String() string {
	switch t {
	case TypePublish:
		return "publish"
	case TypeNotification:
		return "notification"
	case TypeRequest:
		return "request"
	case TypeResponse:
		return "response"
	default:
		return "unspecified"
	}
}

// IsValid reports whether the value is one of the four real message
// types.
func (t MessageType) IsValid() bool {
	switch t {
	case TypePublish, TypeNotification, TypeRequest, TypeResponse:
		return true
	default:
		return false
	}
}

// CommStatus is the communication status code a response may carry,
// mirroring the canonical RPC status code set.
type CommStatus int

const (
	// StatusOK signals successful completion.
	StatusOK CommStatus = iota
	StatusCancelled
	StatusUnknown
	StatusInvalidArgument
	StatusDeadlineExceeded
	StatusNotFound
	StatusAlreadyExists
	StatusPermissionDenied
	StatusResourceExhausted
	StatusFailedPrecondition
	StatusAborted
	StatusOutOfRange
	StatusUnimplemented
	StatusInternal
	StatusUnavailable
	StatusDataLoss
	StatusUnauthenticated

	// StatusUnrecognized is the sentinel for a code outside the closed
	// set. It is never a legal attribute value.
	StatusUnrecognized CommStatus = -1
)

// IsValid reports whether the code belongs to the recognized closed set.
func (s CommStatus) IsValid() bool {
	return s >= StatusOK && s <= StatusUnauthenticated
}

// String returns the status code name.
func (s CommStatus) String() string {
	names := [...]string{
		"OK", "CANCELLED", "UNKNOWN", "INVALID_ARGUMENT",
		"DEADLINE_EXCEEDED", "NOT_FOUND", "ALREADY_EXISTS",
		"PERMISSION_DENIED", "RESOURCE_EXHAUSTED", "FAILED_PRECONDITION",
		"ABORTED", "OUT_OF_RANGE", "UNIMPLEMENTED", "INTERNAL",
		"UNAVAILABLE", "DATA_LOSS", "UNAUTHENTICATED",
	}
	if s.IsValid() {
		return names[s]
	}
	return "UNRECOGNIZED"
}
