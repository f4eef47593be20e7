package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func topicURI() URI {
	return New(LocalAuthority(), EntityFromName("body.access"), TopicResource("door", "front_left", "Door", 0x8001))
}

func TestHasWildcard(t *testing.T) {
	tests := []struct {
		name string
		uri  URI
		want bool
	}{
		{"clean topic", topicURI(), false},
		{"entity name wildcard", New(LocalAuthority(), EntityFromName("*"), EmptyResource()), true},
		{"resource instance wildcard", New(LocalAuthority(), EntityFromName("body.access"),
			TopicResource("door", "*", "", 0)), true},
		{"authority device wildcard", New(RemoteAuthority("*", "cars"), EntityFromName("body.access"),
			EmptyResource()), true},
		{"entity id wildcard", New(LocalAuthority(), Entity{Name: "body.access", ID: WildcardID},
			EmptyResource()), true},
		{"version wildcard", New(LocalAuthority(), Entity{Name: "body.access", Version: WildcardVersion},
			EmptyResource()), true},
		{"resource id wildcard", New(LocalAuthority(), EntityFromName("body.access"),
			Resource{Name: "door", ID: WildcardID}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasWildcard(tt.uri))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate(Empty()))
	assert.Error(t, Validate(New(RemoteAuthority("vcu", "cars"), EmptyEntity(), ResourceFromName("door"))))
	assert.NoError(t, Validate(topicURI()))
	assert.NoError(t, Validate(New(LocalAuthority(), Entity{ID: 0x12}, EmptyResource())))
}

func TestValidateRPCMethod(t *testing.T) {
	assert.NoError(t, ValidateRPCMethod(RPCURI(LocalAuthority(), EntityFromName("body.access"), "UpdateDoor")))

	// A topic is not a method
	assert.Error(t, ValidateRPCMethod(topicURI()))

	// The response slot is not a method
	assert.Error(t, ValidateRPCMethod(ReplyTo(LocalAuthority(), EntityFromName("body.access"))))

	assert.Error(t, ValidateRPCMethod(Empty()))
}

func TestValidateRPCResponse(t *testing.T) {
	assert.NoError(t, ValidateRPCResponse(ReplyTo(LocalAuthority(), EntityFromName("dashboard"))))
	assert.Error(t, ValidateRPCResponse(topicURI()))
	assert.Error(t, ValidateRPCResponse(RPCURI(LocalAuthority(), EntityFromName("body.access"), "UpdateDoor")))
	assert.Error(t, ValidateRPCResponse(Empty()))
}

func TestIsTopic(t *testing.T) {
	assert.True(t, IsTopic(topicURI()))

	assert.False(t, IsTopic(Empty()))
	assert.False(t, IsTopic(RPCURI(LocalAuthority(), EntityFromName("body.access"), "UpdateDoor")))
	assert.False(t, IsTopic(ReplyTo(LocalAuthority(), EntityFromName("body.access"))))

	// Entity alone is not a topic: a resource must be addressed
	assert.False(t, IsTopic(New(LocalAuthority(), EntityFromName("body.access"), EmptyResource())))
}

func TestIsNotificationDestination(t *testing.T) {
	// The plain destination addresses the entity itself
	dest := New(RemoteAuthority("vcu", "cars"), EntityFromName("dashboard"), EmptyResource())
	assert.True(t, IsNotificationDestination(dest))

	// A resource id makes it a topic address, not a destination
	assert.False(t, IsNotificationDestination(topicURI()))

	// Wildcards never address a destination
	wild := New(LocalAuthority(), EntityFromName("*"), EmptyResource())
	assert.False(t, IsNotificationDestination(wild))

	assert.False(t, IsNotificationDestination(RPCURI(LocalAuthority(), EntityFromName("x"), "M")))
	assert.False(t, IsNotificationDestination(Empty()))
}
