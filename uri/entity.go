package uri

import "strings"

// Entity represents what software a URI addresses: a named, versioned
// service or application. A zero numeric field means "absent" - the
// protocol reserves 0 for unassigned ids and versions.
type Entity struct {
	// Name is the entity's name, e.g. "body.access". Required for the
	// long wire form.
	Name string
	// Version is the major version, 0 when unspecified.
	Version uint8
	// ID is the numeric entity identifier used by the micro wire form,
	// 0 when unassigned.
	ID uint16
}

// EmptyEntity returns the entity carrying no information.
func EmptyEntity() Entity {
	return Entity{}
}

// EntityFromName creates an entity addressed by name only.
func EntityFromName(name string) Entity {
	return Entity{Name: strings.TrimSpace(name)}
}

// EntityFromNameVersion creates an entity addressed by name and major
// version.
func EntityFromNameVersion(name string, version uint8) Entity {
	e := EntityFromName(name)
	e.Version = version
	return e
}

// ResolvedEntity creates an entity carrying both its name and numeric
// id, satisfying IsResolved.
func ResolvedEntity(name string, version uint8, id uint16) Entity {
	e := EntityFromNameVersion(name, version)
	e.ID = id
	return e
}

// IsEmpty reports whether the entity carries no information.
func (e Entity) IsEmpty() bool {
	return e.Name == "" && e.Version == 0 && e.ID == 0
}

// IsResolved reports whether both the name and the numeric id are
// present, so either wire form can be produced without lookup.
func (e Entity) IsResolved() bool {
	return e.Name != "" && e.ID != 0
}

// IsLongForm reports whether the entity can serialize into the
// name-based wire form. Emptiness qualifies trivially.
func (e Entity) IsLongForm() bool {
	return e.IsEmpty() || e.Name != ""
}

// IsMicroForm reports whether the entity can serialize into the compact
// numeric wire form.
func (e Entity) IsMicroForm() bool {
	return e.IsEmpty() || e.ID != 0
}
