package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroz/tilestage/event"
	"github.com/ajroz/tilestage/stage"
)

func TestRegistryDestroyIsDeferred(t *testing.T) {
	st := stage.New()
	reg := NewRegistry(st)

	a := &Entity{Name: "a"}
	b := &Entity{Name: "b"}
	reg.Add(a)
	reg.Add(b)
	assert.Len(t, st.Actors(), 2)

	reg.Destroy(a)
	// Nothing changes until the safe point.
	assert.Len(t, reg.Entities(), 2)
	assert.Len(t, st.Actors(), 2)

	reg.Flush()
	assert.Equal(t, []*Entity{b}, reg.Entities())
	assert.Len(t, st.Actors(), 1, "destroyed entity must be deregistered from the stage")
}

func TestRegistryAssignsIDs(t *testing.T) {
	reg := NewRegistry(stage.New())
	a := &Entity{}
	b := &Entity{}
	reg.Add(a)
	reg.Add(b)
	assert.NotZero(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegistryCullsOnMapChange(t *testing.T) {
	st := stage.New()
	reg := NewRegistry(st)
	reg.Add(&Entity{Name: "old_a"})
	reg.Add(&Entity{Name: "old_b"})

	consumed, err := reg.HandleMapChanged(event.MapChanged{})
	assert.NoError(t, err)
	assert.False(t, consumed, "map changes must propagate past the registry")

	reg.Flush()
	assert.Empty(t, reg.Entities())
	assert.Empty(t, st.Actors())
}
