// Command mapview renders a text view of a generated region, or prints the
// header of a save file. Useful for eyeballing a seed without a client.
package main

import (
	"flag"
	"fmt"
	"os"

	"tileworld.gg/internal/persistence/save"
	"tileworld.gg/internal/sim/world"
	"tileworld.gg/internal/sim/world/gen"
)

var terrainGlyphs = map[gen.Terrain]rune{
	gen.TerrainDeepWater: '≈',
	gen.TerrainWater:     '~',
	gen.TerrainSand:      '.',
	gen.TerrainGrass:     ',',
	gen.TerrainForest:    '♣',
	gen.TerrainDirt:      ':',
	gen.TerrainStone:     '#',
	gen.TerrainMountain:  '^',
	gen.TerrainSnow:      '*',
}

var objectGlyphs = map[gen.Object]rune{
	gen.ObjectTree:       'T',
	gen.ObjectSmallRock:  'o',
	gen.ObjectRedFlower:  'f',
	gen.ObjectBlueFlower: 'F',
	gen.ObjectSmallHouse: 'H',
}

func main() {
	var (
		seed     = flag.String("seed", "default", "world seed")
		x        = flag.Int("x", 0, "center x")
		y        = flag.Int("y", 0, "center y")
		radius   = flag.Int("radius", 24, "half-extent of the rendered square")
		savePath = flag.String("save", "", "print the header of this save file and exit")
	)
	flag.Parse()

	if *savePath != "" {
		h, err := save.ReadHeader(*savePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read save:", err)
			os.Exit(1)
		}
		rec, skipped, err := save.Read(*savePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read save:", err)
			os.Exit(1)
		}
		fmt.Printf("save v%d slot=%s saved_at=%s seed=%q placed=%d skipped=%d\n",
			h.Version, h.Slot, h.SavedAt, rec.Seed, len(rec.Placed), skipped)
		return
	}

	w := world.New(*seed)
	for ty := *y - *radius; ty <= *y+*radius; ty++ {
		for tx := *x - *radius; tx <= *x+*radius; tx++ {
			t := w.GetTile(tx, ty)
			g := terrainGlyphs[t.Terrain]
			if og, ok := objectGlyphs[t.Object]; ok {
				g = og
			}
			fmt.Printf("%c", g)
		}
		fmt.Println()
	}

	// Tile under the cursor, spelled out.
	t := w.GetTile(*x, *y)
	fmt.Printf("\n(%d,%d) biome=%s terrain=%s object=%q variant=%d\n",
		t.X, t.Y, t.Biome, t.Terrain, t.Object, t.Variant)
}
