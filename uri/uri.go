package uri

// URI is the (Authority, Entity, Resource) triple uniquely addressing a
// resource in the network. Equality is structural: two URIs are equal
// when all three components are field-wise equal, regardless of how
// they would serialize.
type URI struct {
	Authority Authority
	Entity    Entity
	Resource  Resource
}

// New composes a URI from its three components.
func New(authority Authority, entity Entity, resource Resource) URI {
	return URI{Authority: authority, Entity: entity, Resource: resource}
}

// Empty returns the empty URI: local authority, empty entity, empty
// resource.
func Empty() URI {
	return URI{}
}

// RPCURI addresses the named RPC method on an entity.
func RPCURI(authority Authority, entity Entity, method string) URI {
	return URI{Authority: authority, Entity: entity, Resource: RPCMethod(method)}
}

// ReplyTo addresses the RPC response slot of an entity, the reply-to
// address a request carries as its source.
func ReplyTo(authority Authority, entity Entity) URI {
	return URI{Authority: authority, Entity: entity, Resource: RPCResponse()}
}

// IsEmpty reports whether the URI carries no addressing information at
// all.
func (u URI) IsEmpty() bool {
	return u.Authority.IsEmpty() && u.Entity.IsEmpty() && u.Resource.IsEmpty()
}

// IsResolved reports whether every component can produce both wire
// forms without lookup. Resolution is component-local; the URI is
// resolved only if all three components are.
func (u URI) IsResolved() bool {
	return u.Authority.IsResolved() && u.Entity.IsResolved() && u.Resource.IsResolved()
}

// IsLongForm reports whether the URI can serialize into the
// human-readable name-based wire form.
func (u URI) IsLongForm() bool {
	return u.Authority.IsLongForm() && u.Entity.IsLongForm() && u.Resource.IsLongForm()
}

// IsMicroForm reports whether the URI can serialize into the compact
// numeric wire form.
func (u URI) IsMicroForm() bool {
	return u.Authority.IsMicroForm() && u.Entity.IsMicroForm() && u.Resource.IsMicroForm()
}

// IsRPCMethod reports whether the URI addresses an RPC method.
func (u URI) IsRPCMethod() bool {
	return u.Resource.IsRPCMethod()
}

// IsRPCResponse reports whether the URI addresses an RPC response slot.
func (u URI) IsRPCResponse() bool {
	return u.Resource.IsRPCResponse()
}
