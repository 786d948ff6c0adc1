package gen

import "testing"

func TestBiomeBandsCoverUnitInterval(t *testing.T) {
	known := map[Biome]bool{
		BiomeDesert: true, BiomeSavanna: true, BiomeGrassland: true,
		BiomeRainforest: true, BiomeTaiga: true, BiomeTundra: true,
	}
	for i := 0; i < 10000; i++ {
		v := float64(i) / 10000
		if b := BiomeFor(v); !known[b] {
			t.Fatalf("BiomeFor(%v) = %q, unclassified", v, b)
		}
	}
}

func TestBiomeBandEdges(t *testing.T) {
	cases := []struct {
		v    float64
		want Biome
	}{
		{0, BiomeDesert},
		{0.1499, BiomeDesert},
		{0.15, BiomeSavanna},
		{0.30, BiomeGrassland},
		{0.45, BiomeRainforest},
		{0.65, BiomeTaiga},
		{0.85, BiomeTundra},
		{0.9999, BiomeTundra},
		{1.01, BiomeTundra}, // interpolation overshoot
	}
	for _, c := range cases {
		if got := BiomeFor(c.v); got != c.want {
			t.Errorf("BiomeFor(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestTerrainTables(t *testing.T) {
	cases := []struct {
		biome Biome
		elev  float64
		want  Terrain
	}{
		{BiomeDesert, 0.1, TerrainWater},
		{BiomeDesert, 0.35, TerrainSand},
		{BiomeDesert, 0.6, TerrainSand},
		{BiomeDesert, 0.9, TerrainStone},
		{BiomeSavanna, 0.2, TerrainWater},
		{BiomeSavanna, 0.4, TerrainSand},
		{BiomeSavanna, 0.7, TerrainGrass},
		{BiomeGrassland, 0.3, TerrainWater},
		{BiomeGrassland, 0.38, TerrainSand},
		{BiomeGrassland, 0.6, TerrainGrass},
		{BiomeGrassland, 0.9, TerrainDirt},
		{BiomeRainforest, 0.2, TerrainDeepWater},
		{BiomeRainforest, 0.35, TerrainWater},
		{BiomeRainforest, 0.42, TerrainSand},
		{BiomeRainforest, 0.6, TerrainForest},
		{BiomeRainforest, 0.9, TerrainGrass},
		{BiomeTaiga, 0.2, TerrainWater},
		{BiomeTaiga, 0.4, TerrainDirt},
		{BiomeTaiga, 0.6, TerrainForest},
		{BiomeTaiga, 0.9, TerrainSnow},
		{BiomeTundra, 0.2, TerrainDeepWater},
		{BiomeTundra, 0.4, TerrainDirt},
		{BiomeTundra, 0.6, TerrainSnow},
		{BiomeTundra, 0.95, TerrainMountain},
		{BiomeUnknown, 0.5, TerrainGrass},
		{Biome("MOON"), 0.1, TerrainGrass},
	}
	for _, c := range cases {
		if got := TerrainFor(c.biome, c.elev); got != c.want {
			t.Errorf("TerrainFor(%q, %v) = %q, want %q", c.biome, c.elev, got, c.want)
		}
	}
}

func TestTerrainTotalOverOvershoot(t *testing.T) {
	// Smooth() may overshoot [0,1) slightly; tables must still classify.
	for b := range terrainTables {
		if got := TerrainFor(b, 1.02); got == "" {
			t.Fatalf("TerrainFor(%q, 1.02) fell through", b)
		}
		if got := TerrainFor(b, -0.02); got == "" {
			t.Fatalf("TerrainFor(%q, -0.02) fell through", b)
		}
	}
}

func TestObjectRules(t *testing.T) {
	cases := []struct {
		biome   Biome
		terrain Terrain
		hash    float64
		want    Object
	}{
		{BiomeRainforest, TerrainForest, 0.95, ObjectTree},
		{BiomeRainforest, TerrainForest, 0.88, ObjectRedFlower},
		{BiomeRainforest, TerrainForest, 0.5, ObjectNone},
		{BiomeGrassland, TerrainGrass, 0.99, ObjectTree},
		{BiomeGrassland, TerrainGrass, 0.96, ObjectSmallHouse},
		{BiomeGrassland, TerrainGrass, 0.92, ObjectBlueFlower},
		{BiomeGrassland, TerrainGrass, 0.5, ObjectNone},
		{BiomeDesert, TerrainSand, 0.99, ObjectSmallRock},
		{BiomeDesert, TerrainSand, 0.97, ObjectNone},
		{BiomeSavanna, TerrainSand, 0.99, ObjectSmallRock},
		{BiomeTaiga, TerrainForest, 0.93, ObjectTree},
		{BiomeTaiga, TerrainForest, 0.91, ObjectNone},
		{BiomeTundra, TerrainMountain, 0.96, ObjectSmallRock},
		{BiomeDesert, TerrainStone, 0.96, ObjectSmallRock},
		{BiomeDesert, TerrainStone, 0.9, ObjectNone},
		{BiomeTundra, TerrainSnow, 0.999, ObjectNone},
		{BiomeSavanna, TerrainGrass, 0.999, ObjectNone},
		{BiomeTaiga, TerrainWater, 0.999, ObjectNone},
	}
	for _, c := range cases {
		if got := ObjectFor(c.biome, c.terrain, c.hash); got != c.want {
			t.Errorf("ObjectFor(%q, %q, %v) = %q, want %q", c.biome, c.terrain, c.hash, got, c.want)
		}
	}
}

func TestVariantRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := float64(i) / 100
		got := VariantFor(v)
		if got < 0 || got >= VariantCount {
			t.Fatalf("VariantFor(%v) = %d, want [0,%d)", v, got, VariantCount)
		}
	}
	if VariantFor(0.999999) != VariantCount-1 {
		t.Errorf("top of range should map to last variant")
	}
	if VariantFor(0) != 0 {
		t.Errorf("zero should map to variant 0")
	}
}
