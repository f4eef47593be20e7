package uri

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalAuthority(t *testing.T) {
	a := LocalAuthority()

	assert.True(t, a.IsEmpty())
	assert.True(t, a.IsLocal())
	assert.False(t, a.IsRemote())
	assert.True(t, a.IsResolved())
	assert.True(t, a.IsLongForm())
	assert.True(t, a.IsMicroForm())
}

func TestRemoteAuthority_CaseFoldsNames(t *testing.T) {
	a := RemoteAuthority("VCU", "MY_VIN.Vehicles")

	assert.Equal(t, "vcu", a.Device)
	assert.Equal(t, "my_vin.vehicles", a.Domain)
	assert.True(t, a.IsRemote())
	assert.False(t, a.IsLocal())
	assert.False(t, a.IsEmpty())
}

func TestRemoteAuthority_Forms(t *testing.T) {
	byName := RemoteAuthority("vcu", "vehicles")
	assert.True(t, byName.IsLongForm())
	assert.False(t, byName.IsMicroForm())
	assert.False(t, byName.IsResolved())

	byAddr := RemoteAuthorityAddr(netip.MustParseAddr("192.168.1.100"))
	assert.False(t, byAddr.IsLongForm())
	assert.True(t, byAddr.IsMicroForm())
	assert.False(t, byAddr.IsResolved(), "address without device name is not resolved")

	resolved := ResolvedRemoteAuthority("vcu", "vehicles", netip.MustParseAddr("192.168.1.100"))
	assert.True(t, resolved.IsResolved())
	assert.True(t, resolved.IsLongForm())
	assert.True(t, resolved.IsMicroForm())
}

func TestAuthority_StructuralEquality(t *testing.T) {
	assert.Equal(t, RemoteAuthority("VCU", "Cars"), RemoteAuthority("vcu", "cars"))
	assert.NotEqual(t, LocalAuthority(), RemoteAuthority("vcu", "cars"))
}
