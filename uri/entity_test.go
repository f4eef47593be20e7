package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyEntity(t *testing.T) {
	e := EmptyEntity()

	assert.True(t, e.IsEmpty())
	assert.False(t, e.IsResolved())
	assert.True(t, e.IsLongForm())
	assert.True(t, e.IsMicroForm())
}

func TestEntityFromName(t *testing.T) {
	e := EntityFromName(" body.access ")

	assert.Equal(t, "body.access", e.Name)
	assert.False(t, e.IsEmpty())
	assert.True(t, e.IsLongForm())
	assert.False(t, e.IsMicroForm())
	assert.False(t, e.IsResolved(), "name without numeric id is not resolved")
}

func TestEntityFromNameVersion(t *testing.T) {
	e := EntityFromNameVersion("body.access", 1)

	assert.Equal(t, uint8(1), e.Version)
	assert.False(t, e.IsResolved())
}

func TestResolvedEntity(t *testing.T) {
	e := ResolvedEntity("body.access", 1, 0x12)

	assert.True(t, e.IsResolved())
	assert.True(t, e.IsLongForm())
	assert.True(t, e.IsMicroForm())
}

func TestEntity_IDOnlyIsMicroForm(t *testing.T) {
	e := Entity{ID: 0x12}

	assert.True(t, e.IsMicroForm())
	assert.False(t, e.IsLongForm())
	assert.False(t, e.IsResolved())
}
