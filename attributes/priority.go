package attributes

// Priority is the ordered quality-of-service tier of a message. The
// seven real tiers CS0 through CS6 are ordered lowest to highest; the
// zero value is the unspecified sentinel, which the generic validation
// rule rejects.
type Priority int

const (
	// PriorityUnspecified is the sentinel for an unset priority.
	PriorityUnspecified Priority = iota
	// PriorityCS0 is the lowest tier, best effort.
	PriorityCS0
	// PriorityCS1 is standard, non-critical traffic.
	PriorityCS1
	// PriorityCS2 is operations and administration traffic.
	PriorityCS2
	// PriorityCS3 is multimedia streaming.
	PriorityCS3
	// PriorityCS4 is real-time interactive traffic, the minimum tier
	// for RPC requests and responses.
	PriorityCS4
	// PriorityCS5 is signaling.
	PriorityCS5
	// PriorityCS6 is the highest tier, network control.
	PriorityCS6
)

// MinRPCPriority is the floor the request and response validators
// enforce.
const MinRPCPriority = PriorityCS4

// String returns the tier name.
func (p Priority) String() string {
	if p >= PriorityCS0 && p <= PriorityCS6 {
		return [...]string{"CS0", "CS1", "CS2", "CS3", "CS4", "CS5", "CS6"}[p-PriorityCS0]
	}
	return "UNSPECIFIED"
}

// IsValid reports whether the value is one of the seven real tiers.
func (p Priority) IsValid() bool {
	return p >= PriorityCS0 && p <= PriorityCS6
}
