// Package catalogs holds the render-facing lookup tables: the color each
// terrain draws with and the stock sprites for procedural objects. Catalogs
// load from a config dir when present, fall back to built-in defaults, and
// advertise sha256 digests so clients can cache.
package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"tileworld.gg/internal/sim/world/gen"
)

type Catalogs struct {
	Terrain TerrainCatalog
	Objects ObjectCatalog
}

type TerrainCatalog struct {
	Colors map[gen.Terrain]string // terrain -> #rrggbb
	Digest string
}

type ObjectCatalog struct {
	Defs   map[gen.Object]ObjectDef
	Digest string
}

type ObjectDef struct {
	ID       string `json:"id"`
	Color    string `json:"color"`
	Blocking bool   `json:"blocking"` // simple tile blocking, resolved by the caller
}

var defaultTerrainColors = map[gen.Terrain]string{
	gen.TerrainDeepWater: "#1a4480",
	gen.TerrainWater:     "#2d6cc0",
	gen.TerrainSand:      "#e8d48b",
	gen.TerrainGrass:     "#58a843",
	gen.TerrainForest:    "#2e6b2a",
	gen.TerrainDirt:      "#8a6442",
	gen.TerrainStone:     "#8d8d8d",
	gen.TerrainMountain:  "#5c5c66",
	gen.TerrainSnow:      "#eef2f5",
}

var defaultObjectDefs = map[gen.Object]ObjectDef{
	gen.ObjectTree:       {ID: "tree", Color: "#1d4f1b", Blocking: true},
	gen.ObjectSmallRock:  {ID: "small_rock", Color: "#6f6f6f", Blocking: true},
	gen.ObjectRedFlower:  {ID: "red_flower", Color: "#d2403a", Blocking: false},
	gen.ObjectBlueFlower: {ID: "blue_flower", Color: "#3a62d2", Blocking: false},
	gen.ObjectSmallHouse: {ID: "small_house", Color: "#9c6b3f", Blocking: true},
}

// Load reads terrain.json and objects.json from dir, using built-in defaults
// for any file that does not exist. Malformed files are an error.
func Load(dir string) (Catalogs, error) {
	var c Catalogs

	colors := clone(defaultTerrainColors)
	if err := readJSON(filepath.Join(dir, "terrain.json"), &colors); err != nil {
		return c, fmt.Errorf("terrain catalog: %w", err)
	}
	defs := clone(defaultObjectDefs)
	if err := readJSON(filepath.Join(dir, "objects.json"), &defs); err != nil {
		return c, fmt.Errorf("object catalog: %w", err)
	}

	c.Terrain = TerrainCatalog{Colors: colors, Digest: digestOf(colors)}
	c.Objects = ObjectCatalog{Defs: defs, Digest: digestOf(defs)}
	return c, nil
}

// Default returns the built-in catalogs without touching the filesystem.
func Default() Catalogs {
	return Catalogs{
		Terrain: TerrainCatalog{Colors: defaultTerrainColors, Digest: digestOf(defaultTerrainColors)},
		Objects: ObjectCatalog{Defs: defaultObjectDefs, Digest: digestOf(defaultObjectDefs)},
	}
}

func clone[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, v)
}

// digestOf hashes a canonical (sorted-key) JSON rendering of a string-keyed map.
func digestOf[K ~string, V any](m map[K]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		b, _ := json.Marshal(m[K(k)])
		h.Write([]byte(k))
		h.Write([]byte{':'})
		h.Write(b)
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
