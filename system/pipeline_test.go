package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroz/tilestage/anim"
	"github.com/ajroz/tilestage/atlas"
	"github.com/ajroz/tilestage/entity"
	"github.com/ajroz/tilestage/event"
	"github.com/ajroz/tilestage/stage"
	"github.com/ajroz/tilestage/tilemap"
)

// pipeline mirrors the game's wiring: dispatcher order and the tick-start
// safe point, without a window.
type pipeline struct {
	stage        *stage.Stage
	registry     *entity.Registry
	materializer *entity.Materializer
	resolver     *SpawnResolver
	animation    *AnimationSystem
	render       *RenderSystem
	dispatcher   *event.Dispatcher
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	a := atlas.New()
	for i := 0; i < 4; i++ {
		a.Add(&atlas.Region{Name: "player/idle", Index: i, W: 32, H: 32})
	}
	for i := 0; i < 2; i++ {
		a.Add(&atlas.Region{Name: "slime/idle", Index: i, W: 16, H: 16})
	}

	st := stage.New()
	reg := entity.NewRegistry(st)
	clips := anim.NewCache(a, 0.125)

	p := &pipeline{
		stage:        st,
		registry:     reg,
		materializer: entity.NewMaterializer(reg, clips, 16, nil),
		resolver:     NewSpawnResolver(),
		animation:    NewAnimationSystem(clips, reg),
		render:       NewRenderSystem(st, a),
		dispatcher:   &event.Dispatcher{},
	}
	p.dispatcher.Subscribe(p.render)
	p.dispatcher.Subscribe(p.registry)
	p.dispatcher.Subscribe(p.resolver)
	return p
}

func (p *pipeline) tick(t *testing.T, delta float64) {
	t.Helper()
	p.registry.Flush()
	for _, req := range p.resolver.Drain() {
		if _, err := p.materializer.Materialize(req); err != nil {
			t.Fatalf("materialize %q: %v", req.EntityType, err)
		}
	}
	require.NoError(t, p.animation.Update(delta))
	p.stage.Act(delta)
}

func TestMapChangeToFirstFrame(t *testing.T) {
	p := newPipeline(t)

	m := &tilemap.Map{
		Width: 4, Height: 4, TileSize: 16,
		TileLayers: []*tilemap.TileLayer{
			{Name: "ground", Tiles: make([]int, 16)},
			{Name: "fgd_roof", Tiles: make([]int, 16)},
		},
		ObjectLayers: []tilemap.ObjectLayer{{
			Name: tilemap.EntitiesLayerName,
			Objects: []tilemap.MapObject{
				{ID: 1, Type: "Player", X: 2, Y: 3},
				{ID: 2, Type: "Slime", X: 5, Y: 3},
				{ID: 3, Type: "Slime", X: 1, Y: 3},
			},
		}},
	}
	require.NoError(t, p.dispatcher.Publish(event.MapChanged{Map: m}))

	// Nothing is visible before the next tick's safe point.
	assert.Empty(t, p.registry.Entities())
	assert.Equal(t, 3, p.resolver.Pending())

	p.tick(t, 1.0/60)

	ents := p.registry.Entities()
	require.Len(t, ents, 3)
	for _, e := range ents {
		assert.False(t, e.Anim.Switching(), "first tick applies the idle switch")
		require.NotNil(t, e.Frame())
		assert.Equal(t, 0, e.Frame().Index)
	}

	// Same layer everywhere: draw order is right-to-left by x.
	p.stage.SortActors(actorDrawsBefore)
	xs := make([]float64, 0, 3)
	for _, a := range p.stage.Actors() {
		xs = append(xs, a.(*entity.Entity).Rect.X)
	}
	assert.Equal(t, []float64{5, 2, 1}, xs)

	assert.Len(t, p.render.Background(), 1)
	assert.Len(t, p.render.Foreground(), 1)
}

func TestSecondMapReplacesFirst(t *testing.T) {
	p := newPipeline(t)

	first := &tilemap.Map{
		Width: 1, Height: 1,
		ObjectLayers: []tilemap.ObjectLayer{{
			Name:    tilemap.EntitiesLayerName,
			Objects: []tilemap.MapObject{{ID: 1, Type: "Player", X: 0, Y: 0}},
		}},
	}
	require.NoError(t, p.dispatcher.Publish(event.MapChanged{Map: first}))
	p.tick(t, 1.0/60)
	require.Len(t, p.registry.Entities(), 1)

	second := &tilemap.Map{
		Width: 1, Height: 1,
		ObjectLayers: []tilemap.ObjectLayer{{
			Name: tilemap.EntitiesLayerName,
			Objects: []tilemap.MapObject{
				{ID: 1, Type: "Slime", X: 0, Y: 0},
				{ID: 2, Type: "Slime", X: 1, Y: 0},
			},
		}},
	}
	require.NoError(t, p.dispatcher.Publish(event.MapChanged{Map: second}))
	p.tick(t, 1.0/60)

	ents := p.registry.Entities()
	require.Len(t, ents, 2, "old map's entities are culled before new spawns land")
	for _, e := range ents {
		assert.Equal(t, "Slime", e.Name)
	}
	assert.Len(t, p.stage.Actors(), 2)
}
