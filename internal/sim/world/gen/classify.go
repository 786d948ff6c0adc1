package gen

// Terrain is the ground category of a single tile.
type Terrain string

const (
	TerrainDeepWater Terrain = "DEEP_WATER"
	TerrainWater     Terrain = "WATER"
	TerrainSand      Terrain = "SAND"
	TerrainGrass     Terrain = "GRASS"
	TerrainForest    Terrain = "FOREST"
	TerrainDirt      Terrain = "DIRT"
	TerrainStone     Terrain = "STONE"
	TerrainMountain  Terrain = "MOUNTAIN"
	TerrainSnow      Terrain = "SNOW"
)

// Biome is the large-scale climate region a tile belongs to.
type Biome string

const (
	BiomeDesert     Biome = "DESERT"
	BiomeSavanna    Biome = "SAVANNA"
	BiomeGrassland  Biome = "GRASSLAND"
	BiomeRainforest Biome = "RAINFOREST"
	BiomeTaiga      Biome = "TAIGA"
	BiomeTundra     Biome = "TUNDRA"
	BiomeUnknown    Biome = "UNKNOWN"
)

// Object is a procedurally scattered decoration on a tile.
type Object string

const (
	ObjectNone       Object = ""
	ObjectTree       Object = "TREE"
	ObjectSmallRock  Object = "SMALL_ROCK"
	ObjectRedFlower  Object = "RED_FLOWER"
	ObjectBlueFlower Object = "BLUE_FLOWER"
	ObjectSmallHouse Object = "SMALL_HOUSE"
)

// Noise scales: biome regions span hundreds of tiles, elevation varies
// ten times faster within them.
const (
	BiomeScale     = 0.005
	ElevationScale = 0.05
)

// BiomeFor buckets the biome-scale noise value into six contiguous bands.
// Values at or above 1 (interpolation overshoot) land in tundra.
func BiomeFor(v float64) Biome {
	switch {
	case v < 0.15:
		return BiomeDesert
	case v < 0.30:
		return BiomeSavanna
	case v < 0.45:
		return BiomeGrassland
	case v < 0.65:
		return BiomeRainforest
	case v < 0.85:
		return BiomeTaiga
	default:
		return BiomeTundra
	}
}

type elevationBand struct {
	below   float64
	terrain Terrain
}

// Per-biome elevation tables, first matching band wins. The final band uses
// a sentinel above any reachable noise value so lookups never fall through.
var terrainTables = map[Biome][]elevationBand{
	BiomeDesert: {
		{0.30, TerrainWater},
		{0.40, TerrainSand},
		{0.80, TerrainSand},
		{2, TerrainStone},
	},
	BiomeSavanna: {
		{0.35, TerrainWater},
		{0.45, TerrainSand},
		{2, TerrainGrass},
	},
	BiomeGrassland: {
		{0.35, TerrainWater},
		{0.40, TerrainSand},
		{0.80, TerrainGrass},
		{2, TerrainDirt},
	},
	BiomeRainforest: {
		{0.30, TerrainDeepWater},
		{0.40, TerrainWater},
		{0.45, TerrainSand},
		{0.75, TerrainForest},
		{2, TerrainGrass},
	},
	BiomeTaiga: {
		{0.35, TerrainWater},
		{0.45, TerrainDirt},
		{0.75, TerrainForest},
		{2, TerrainSnow},
	},
	BiomeTundra: {
		{0.35, TerrainDeepWater},
		{0.45, TerrainDirt},
		{0.80, TerrainSnow},
		{2, TerrainMountain},
	},
}

// TerrainFor maps elevation noise to terrain through the biome's threshold
// table. Unknown biomes fall back to grass.
func TerrainFor(b Biome, elevation float64) Terrain {
	table, ok := terrainTables[b]
	if !ok {
		return TerrainGrass
	}
	for _, band := range table {
		if elevation < band.below {
			return band.terrain
		}
	}
	return table[len(table)-1].terrain
}

// ObjectFor decides procedural object scatter from the layer-1 hash value.
// Thresholds are evaluated high to low: rarer outcomes claim the top of the
// range first.
func ObjectFor(b Biome, t Terrain, hash float64) Object {
	// Rocky ground sheds rocks regardless of biome.
	if t == TerrainMountain || t == TerrainStone {
		if hash > 0.95 {
			return ObjectSmallRock
		}
		return ObjectNone
	}

	switch {
	case b == BiomeRainforest && t == TerrainForest:
		if hash > 0.90 {
			return ObjectTree
		}
		if hash > 0.85 {
			return ObjectRedFlower
		}
	case b == BiomeGrassland && t == TerrainGrass:
		if hash > 0.98 {
			return ObjectTree
		}
		if hash > 0.95 {
			return ObjectSmallHouse
		}
		if hash > 0.90 {
			return ObjectBlueFlower
		}
	case (b == BiomeDesert || b == BiomeSavanna) && t == TerrainSand:
		if hash > 0.98 {
			return ObjectSmallRock
		}
	case b == BiomeTaiga && t == TerrainForest:
		// Stands in for a pine variant that has no category of its own.
		if hash > 0.92 {
			return ObjectTree
		}
	}
	return ObjectNone
}

// VariantCount is the number of cosmetic sprite variants per tile.
const VariantCount = 4

// VariantFor maps layer-2 noise to a cosmetic variant in [0,VariantCount).
func VariantFor(v float64) int {
	i := int(v * VariantCount)
	if i < 0 {
		i = 0
	}
	if i >= VariantCount {
		i = VariantCount - 1
	}
	return i
}
