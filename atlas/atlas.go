package atlas

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Region is a single named frame inside an atlas. W and H are the native
// pixel dimensions; Img may be nil when the atlas was built without a
// graphics context (tools, tests).
type Region struct {
	Name  string
	Index int
	W     int
	H     int
	Img   *ebiten.Image
}

// Atlas is a catalog of named regions. Regions that share a name form an
// ordered frame sequence.
type Atlas struct {
	regions []*Region
	byName  map[string][]*Region
}

// New creates an empty atlas.
func New() *Atlas {
	return &Atlas{byName: make(map[string][]*Region)}
}

// Add registers a region. Regions are kept in insertion order; lookups by
// name additionally order by Index.
func (a *Atlas) Add(r *Region) {
	if a == nil || r == nil || r.Name == "" {
		return
	}
	a.regions = append(a.regions, r)
	a.byName[r.Name] = append(a.byName[r.Name], r)
}

// FindRegions returns every region whose name matches key, ordered by Index
// then insertion order. The result is never nil; an unknown key yields an
// empty slice.
func (a *Atlas) FindRegions(key string) []*Region {
	if a == nil || key == "" {
		return []*Region{}
	}
	found := a.byName[key]
	out := make([]*Region, len(found))
	copy(out, found)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}

// Len returns the total number of registered regions.
func (a *Atlas) Len() int {
	if a == nil {
		return 0
	}
	return len(a.regions)
}
