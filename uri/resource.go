package uri

import "strings"

const (
	// rpcName is the reserved resource name for RPC method and response
	// slots.
	rpcName = "rpc"
	// rpcResponseInstance is the reserved instance naming the RPC
	// response slot.
	rpcResponseInstance = "response"

	// MinTopicID is the protocol constant separating numeric resource
	// ids: ids at or above it address topics, ids below it (and above
	// zero) address RPC methods. Id zero is the RPC response slot.
	MinTopicID uint16 = 0x8000
)

// Resource represents a manipulable unit within an entity: a topic, an
// RPC method, or the reserved RPC response slot. A zero ID means
// "unassigned" except on the response slot, which owns id 0.
type Resource struct {
	// Name is the resource name, e.g. "door".
	Name string
	// Instance distinguishes instances of the resource, e.g.
	// "front_left". Required for the long wire form.
	Instance string
	// Message names the type of message the resource emits, e.g.
	// "Door".
	Message string
	// ID is the numeric resource identifier used by the micro wire
	// form.
	ID uint16
}

// EmptyResource returns the resource carrying no information.
func EmptyResource() Resource {
	return Resource{}
}

// ResourceFromName creates a named topic resource.
func ResourceFromName(name string) Resource {
	return Resource{Name: strings.TrimSpace(name)}
}

// TopicResource creates a fully-described topic resource.
func TopicResource(name, instance, message string, id uint16) Resource {
	r := ResourceFromName(name)
	r.Instance = strings.TrimSpace(instance)
	r.Message = message
	r.ID = id
	return r
}

// RPCMethod creates the resource addressing an RPC method by name,
// e.g. RPCMethod("UpdateDoor") -> "rpc.UpdateDoor".
func RPCMethod(method string) Resource {
	return Resource{Name: rpcName, Instance: strings.TrimSpace(method)}
}

// RPCMethodWithID creates an RPC method resource carrying both its name
// and its numeric id. Method ids live strictly below MinTopicID.
func RPCMethodWithID(method string, id uint16) Resource {
	r := RPCMethod(method)
	r.ID = id
	return r
}

// RPCResponse returns the reserved resource addressing the RPC response
// slot of an entity.
func RPCResponse() Resource {
	return Resource{Name: rpcName, Instance: rpcResponseInstance}
}

// IsEmpty reports whether the resource carries no information.
func (r Resource) IsEmpty() bool {
	return r.Name == "" && r.Instance == "" && r.Message == "" && r.ID == 0
}

// IsRPCMethod reports whether the resource addresses an RPC method,
// either by the reserved "rpc" name with a method instance or by a
// numeric id below the topic threshold.
func (r Resource) IsRPCMethod() bool {
	if r.Name == rpcName && r.Instance != "" && r.Instance != rpcResponseInstance {
		return true
	}
	return r.ID != 0 && r.ID < MinTopicID
}

// IsRPCResponse reports whether the resource is the reserved RPC
// response slot.
func (r Resource) IsRPCResponse() bool {
	return r.Name == rpcName && r.Instance == rpcResponseInstance
}

// IsResolved reports whether the resource carries enough information
// for either wire form: name and instance for the long form plus the
// numeric id for the micro form. The response slot is always resolved.
func (r Resource) IsResolved() bool {
	if r.IsRPCResponse() {
		return true
	}
	return r.Name != "" && r.Instance != "" && r.ID != 0
}

// IsLongForm reports whether the resource can serialize into the
// name-based wire form. The response slot qualifies by its reserved
// names; emptiness qualifies trivially.
func (r Resource) IsLongForm() bool {
	if r.IsEmpty() || r.IsRPCResponse() {
		return true
	}
	return r.Name != "" && r.Instance != ""
}

// IsMicroForm reports whether the resource can serialize into the
// compact numeric wire form. The response slot owns id 0 and qualifies.
func (r Resource) IsMicroForm() bool {
	return r.IsEmpty() || r.IsRPCResponse() || r.ID != 0
}
