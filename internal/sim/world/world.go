package world

import (
	"sort"
	"sync"

	"tileworld.gg/internal/sim/sprite"
	"tileworld.gg/internal/sim/world/gen"
)

// TileKey addresses one tile in the placed-object overlay. A struct key keeps
// negative coordinates unambiguous, unlike separator-joined strings.
type TileKey struct {
	X int
	Y int
}

// Tile is the fully resolved result of a world query.
type Tile struct {
	X, Y    int
	Terrain gen.Terrain
	Biome   gen.Biome
	Object  gen.Object // empty if none, or whenever Custom is set
	Custom  *sprite.Sprite
	Variant int // cosmetic, [0,gen.VariantCount)
}

// PlacedObject is one overlay entry in serialized form.
type PlacedObject struct {
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Sprite sprite.Sprite `json:"sprite"`
}

// World resolves tiles of an infinite seeded map. Generation is stateless;
// the placed-object overlay is the only mutable state and is guarded so that
// placements and queries may run on different goroutines.
type World struct {
	seed  string
	noise gen.Noise

	mu     sync.RWMutex
	placed map[TileKey]sprite.Sprite
}

func New(seed string) *World {
	return &World{
		seed:   seed,
		noise:  gen.NewNoise(seed),
		placed: map[TileKey]sprite.Sprite{},
	}
}

func (w *World) Seed() string { return w.seed }

// GetTile resolves the tile at integer coordinates. Same seed and same
// coordinates always yield the same tile; there is no caching here.
func (w *World) GetTile(x, y int) Tile {
	fx := float64(x)
	fy := float64(y)

	biome := gen.BiomeFor(w.noise.Smooth(fx*gen.BiomeScale, fy*gen.BiomeScale))
	terrain := gen.TerrainFor(biome, w.noise.Smooth(fx*gen.ElevationScale, fy*gen.ElevationScale))

	t := Tile{
		X:       x,
		Y:       y,
		Terrain: terrain,
		Biome:   biome,
		Variant: gen.VariantFor(w.noise.At(fx, fy, 2)),
	}

	w.mu.RLock()
	custom, ok := w.placed[TileKey{X: x, Y: y}]
	w.mu.RUnlock()
	if ok {
		// A placed sprite is authoritative: procedural scatter is skipped,
		// terrain and biome stay as computed.
		t.Custom = &custom
		return t
	}

	t.Object = gen.ObjectFor(biome, terrain, w.noise.At(fx, fy, 1))
	return t
}

// PlaceObject inserts or overwrites the overlay entry at (x,y).
// Last write wins; sprite content is not interpreted here.
func (w *World) PlaceObject(x, y int, s sprite.Sprite) {
	w.mu.Lock()
	w.placed[TileKey{X: x, Y: y}] = s
	w.mu.Unlock()
}

// PlacedCount reports the number of overlay entries.
func (w *World) PlacedCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.placed)
}

// PlacedObjects exports every overlay entry, sorted by (Y,X) so repeated
// exports of the same overlay encode identically.
func (w *World) PlacedObjects() []PlacedObject {
	w.mu.RLock()
	out := make([]PlacedObject, 0, len(w.placed))
	for k, s := range w.placed {
		out = append(out, PlacedObject{X: k.X, Y: k.Y, Sprite: s})
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// SetPlacedObjects replaces the whole overlay with the given entries,
// discarding prior placements. Used for save-game restore; not a merge.
// Duplicate coordinates resolve to the last entry.
func (w *World) SetPlacedObjects(entries []PlacedObject) {
	next := make(map[TileKey]sprite.Sprite, len(entries))
	for _, e := range entries {
		next[TileKey{X: e.X, Y: e.Y}] = e.Sprite
	}
	w.mu.Lock()
	w.placed = next
	w.mu.Unlock()
}
