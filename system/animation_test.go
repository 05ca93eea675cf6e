package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroz/tilestage/anim"
	"github.com/ajroz/tilestage/atlas"
	"github.com/ajroz/tilestage/entity"
	"github.com/ajroz/tilestage/stage"
)

func newAnimWorld(t *testing.T) (*entity.Registry, *AnimationSystem) {
	t.Helper()
	a := atlas.New()
	for i := 0; i < 5; i++ {
		a.Add(&atlas.Region{Name: "slime/attack", Index: i, W: 16, H: 16})
	}
	for i := 0; i < 4; i++ {
		a.Add(&atlas.Region{Name: "slime/idle", Index: i, W: 16, H: 16})
	}
	reg := entity.NewRegistry(stage.New())
	// 8 fps clips.
	sys := NewAnimationSystem(anim.NewCache(a, 0.125), reg)
	return reg, sys
}

func addAnimated(reg *entity.Registry, mode anim.PlayMode) *entity.Entity {
	e := &entity.Entity{Name: "slime", Anim: anim.NewState("slime", mode)}
	reg.Add(e)
	return e
}

func TestSwitchingTransition(t *testing.T) {
	reg, sys := newAnimWorld(t)
	e := addAnimated(reg, anim.Loop)
	e.Anim.SetClip("slime/attack")

	require.NoError(t, sys.Update(1.0/60))

	assert.False(t, e.Anim.Switching(), "pending clip must be cleared by the switch")
	assert.Equal(t, "slime/attack", e.Anim.ClipID)
	assert.Zero(t, e.Anim.Elapsed, "elapsed resets exactly when the switch applies")
	require.NotNil(t, e.Frame())
	assert.Equal(t, 0, e.Frame().Index, "the switch presents frame 0")
}

func TestPlayingAdvancesFrames(t *testing.T) {
	reg, sys := newAnimWorld(t)
	e := addAnimated(reg, anim.Loop)
	e.Anim.SetClip("slime/attack")
	require.NoError(t, sys.Update(1.0/60))

	// One frame lasts 0.125s; step well into frame 2.
	require.NoError(t, sys.Update(0.3))
	assert.InDelta(t, 0.3, e.Anim.Elapsed, 1e-9)
	assert.Equal(t, 2, e.Frame().Index)
}

func TestModeChangeBetweenTicksIsApplied(t *testing.T) {
	reg, sys := newAnimWorld(t)
	e := addAnimated(reg, anim.Loop)
	e.Anim.SetClip("slime/attack")
	require.NoError(t, sys.Update(1.0/60))
	require.NoError(t, sys.Update(0.1))

	// External write between ticks; the next tick must honor it.
	e.Anim.Mode = anim.LoopReversed
	require.NoError(t, sys.Update(0.1))
	assert.Equal(t, 3, e.Frame().Index, "reversed indexing from the end of 5 frames at elapsed 0.2")
}

func TestNewClipRequestForcesSwitch(t *testing.T) {
	reg, sys := newAnimWorld(t)
	e := addAnimated(reg, anim.Loop)
	e.Anim.SetClip("slime/attack")
	require.NoError(t, sys.Update(1.0/60))
	require.NoError(t, sys.Update(0.4))

	e.Anim.SetClip("slime/idle")
	require.NoError(t, sys.Update(1.0/60))
	assert.Equal(t, "slime/idle", e.Anim.ClipID)
	assert.Zero(t, e.Anim.Elapsed)
	assert.Equal(t, 0, e.Frame().Index)
}

func TestFailedSwitchAbortsOnlyThatEntity(t *testing.T) {
	reg, sys := newAnimWorld(t)
	broken := addAnimated(reg, anim.Loop)
	broken.Anim.SetClip("slime/dance")
	ok := addAnimated(reg, anim.Loop)
	ok.Anim.SetClip("slime/idle")

	err := sys.Update(1.0 / 60)
	require.Error(t, err)
	var assetErr *atlas.AssetError
	assert.True(t, errors.As(err, &assetErr))

	// The healthy entity still switched.
	assert.Equal(t, "slime/idle", ok.Anim.ClipID)
	// The broken one dropped its pending request and keeps no clip.
	assert.False(t, broken.Anim.Switching())
	assert.Empty(t, broken.Anim.ClipID)
}

func TestFinished(t *testing.T) {
	reg, sys := newAnimWorld(t)
	e := addAnimated(reg, anim.Normal)
	e.Anim.SetClip("slime/attack")
	require.NoError(t, sys.Update(1.0/60))

	assert.False(t, sys.Finished(e))
	// 5 frames at 0.125s: done at 0.625s.
	require.NoError(t, sys.Update(0.7))
	assert.True(t, sys.Finished(e))

	e.Anim.Mode = anim.Loop
	assert.False(t, sys.Finished(e), "loop modes never finish")
}

func TestEntitiesWithoutStateAreSkipped(t *testing.T) {
	reg, sys := newAnimWorld(t)
	reg.Add(&entity.Entity{Name: "static"})
	assert.NoError(t, sys.Update(1.0/60))
}
