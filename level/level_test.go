// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package level

import (
	"context"
	"errors"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/terrain/compressed"
	"strings"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.WidthInTiles = 3
	cfg.DepthInTiles = 2
	cfg.TileVertices = 6
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := testConfig()
	level, err := Generate(context.Background(), cfg, 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(level.Tiles) != 6 || len(level.Meshes) != 6 {
		t.Fatal("expected 6 tiles, got", len(level.Tiles))
	}
	for i, tile := range level.Tiles {
		if tile == nil || level.Meshes[i] == nil {
			t.Fatal("tile", i, "missing")
		}
	}

	tile, m := level.Tile(2, 1)
	if want := cfg.TilePosition(2, 1); tile.Position != want {
		t.Errorf("tile (2, 1) expected position %v, got %v", want, tile.Position)
	}
	if len(m.Vertices) != 36 || m.Collider == nil || len(m.Collider.Heights) != 36 {
		t.Error("tile (2, 1) mesh not deformed")
	}
	if tile, _ := level.Tile(3, 0); tile != nil {
		t.Error("expected no tile outside map")
	}
}

func TestGenerate_Seams(t *testing.T) {
	cfg := testConfig()
	level, err := Generate(context.Background(), cfg, 2)
	if err != nil {
		t.Fatal(err)
	}

	last := cfg.TileVertices - 1
	for z := 0; z < cfg.DepthInTiles; z++ {
		for x := 0; x < cfg.WidthInTiles; x++ {
			tile, m := level.Tile(x, z)

			if right, rightMesh := level.Tile(x+1, z); right != nil {
				for i := 0; i <= last; i++ {
					if a, b := tile.Height.At(last, i), right.Height.At(0, i); a != b {
						t.Errorf("tiles (%d, %d) and (%d, %d) height differs on row %d: %g != %g", x, z, x+1, z, i, a, b)
					}
					if a, b := tile.Heat.At(last, i), right.Heat.At(0, i); a != b {
						t.Errorf("tiles (%d, %d) and (%d, %d) heat differs on row %d: %g != %g", x, z, x+1, z, i, a, b)
					}
					if a, b := m.Vertices[i*cfg.TileVertices+last].Y(), rightMesh.Vertices[i*cfg.TileVertices].Y(); a != b {
						t.Errorf("tiles (%d, %d) and (%d, %d) mesh differs on row %d: %g != %g", x, z, x+1, z, i, a, b)
					}
				}
			}

			if below, belowMesh := level.Tile(x, z+1); below != nil {
				for i := 0; i <= last; i++ {
					if a, b := tile.Height.At(i, last), below.Height.At(i, 0); a != b {
						t.Errorf("tiles (%d, %d) and (%d, %d) height differs on column %d: %g != %g", x, z, x, z+1, i, a, b)
					}
					if a, b := tile.Heat.At(i, last), below.Heat.At(i, 0); a != b {
						t.Errorf("tiles (%d, %d) and (%d, %d) heat differs on column %d: %g != %g", x, z, x, z+1, i, a, b)
					}
					if a, b := m.Vertices[last*cfg.TileVertices+i].Y(), belowMesh.Vertices[i].Y(); a != b {
						t.Errorf("tiles (%d, %d) and (%d, %d) mesh differs on column %d: %g != %g", x, z, x, z+1, i, a, b)
					}
				}
			}
		}
	}
}

func TestConfig_CenterZ(t *testing.T) {
	cfg := testConfig()
	// 2 tiles of 5 rows each, sharing an edge
	if c := cfg.CenterZ(); c != 5 {
		t.Error("expected center row 5, got", c)
	}

	// Origin moves the center by whole rows, 2 world units apart
	cfg.Origin.Y = 4
	if c := cfg.CenterZ(); c != 7 {
		t.Error("expected center row 7, got", c)
	}
	if d := cfg.tileConfig().MaxDistanceZ; d != 5 {
		t.Error("expected max distance 5, got", d)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := testConfig()
	a, err := Generate(context.Background(), cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(context.Background(), cfg, 8)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Tiles {
		for j, v := range a.Tiles[i].Heat.Values {
			if b.Tiles[i].Heat.Values[j] != v {
				t.Fatalf("tile %d heat %d differs between worker counts", i, j)
			}
		}
		for j, v := range a.Meshes[i].Vertices {
			if b.Meshes[i].Vertices[j] != v {
				t.Fatalf("tile %d vertex %d differs between worker counts", i, j)
			}
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.HeightBands = nil
	if _, err := Generate(context.Background(), cfg, 0); !errors.Is(err, terrain.ErrNoBands) {
		t.Error("expected ErrNoBands, got", err)
	}

	cfg = testConfig()
	cfg.Noise = "worley"
	if _, err := Generate(context.Background(), cfg, 0); err == nil {
		t.Error("expected error for unknown noise")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if level, err := Generate(ctx, testConfig(), 2); !errors.Is(err, context.Canceled) || level != nil {
		t.Error("expected context.Canceled and no level, got", err)
	}
}

func TestLevel_Render(t *testing.T) {
	level, err := Generate(context.Background(), testConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}

	img := level.Render(terrain.ModeHeight)
	if b := img.Bounds(); b.Dx() != 18 || b.Dy() != 12 {
		t.Fatal("expected 18x12 map, got", b)
	}

	// Pixel (1, 2) of tile (2, 1)
	tile, _ := level.Tile(2, 1)
	if got, want := img.RGBAAt(2*6+1, 1*6+2), tile.HeightColors.RGBAAt(1, 2); got != want {
		t.Errorf("stitched pixel expected %v, got %v", want, got)
	}

	level.SetMode(terrain.ModeHeat)
	if tile.Texture() != tile.HeatColors {
		t.Error("SetMode did not switch texture")
	}

	big := Upscale(img, 4)
	if b := big.Bounds(); b.Dx() != 72 || b.Dy() != 48 {
		t.Fatal("expected 72x48 upscaled map, got", b)
	}
	if big.RGBAAt(4*13+3, 4*8+1) != img.RGBAAt(13, 8) {
		t.Error("upscaled pixel differs from source")
	}
}

func TestLevel_Heightmaps(t *testing.T) {
	level, err := Generate(context.Background(), testConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}

	data := level.Heightmaps()
	if len(data) != len(level.Tiles) {
		t.Fatal("expected", len(level.Tiles), "heightmaps, got", len(data))
	}
	grid, err := compressed.DecodeGrid(data[0])
	if err != nil {
		t.Fatal(err)
	}
	if grid.Width != 6 || grid.Depth != 6 {
		t.Errorf("expected 6x6 heightmap, got %dx%d", grid.Width, grid.Depth)
	}
	if data[4].AABB != level.Tiles[4].Footprint {
		t.Error("heightmap bounds differ from tile footprint")
	}
}

func TestLoadConfig(t *testing.T) {
	const config = `{
		"widthInTiles": 2,
		"depthInTiles": 1,
		"noise": "simplex",
		"mode": "heat",
		"curve": [{"time": 1, "value": 2}, {"time": 0, "value": 0}],
		"heightBands": [
			{"name": "water", "height": 0.4, "color": "#004b82"},
			{"name": "land", "height": 1, "color": "#5ab41e"}
		]
	}`

	cfg, err := LoadConfig(strings.NewReader(config))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WidthInTiles != 2 || cfg.DepthInTiles != 1 || cfg.Noise != "simplex" || cfg.Mode != terrain.ModeHeat {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.HeightBands) != 2 || cfg.HeightBands[1].Color != terrain.RGB(90, 180, 30) {
		t.Error("unexpected height bands:", cfg.HeightBands)
	}
	if cfg.TileVertices != 11 || len(cfg.HeatBands) != len(terrain.DefaultHeatBands()) {
		t.Error("defaults not kept for missing fields")
	}
	if v := cfg.tileConfig().Curve.Evaluate(0.5); v != 1 {
		t.Error("expected curve(0.5) = 1, got", v)
	}

	// Round trip through Marshal
	buf, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), `"#5ab41e"`) || !strings.Contains(string(buf), `"heat"`) {
		t.Error("unexpected encoding:", string(buf))
	}
	again, err := LoadConfig(strings.NewReader(string(buf)))
	if err != nil {
		t.Fatal(err)
	}
	if again.HeightBands[0] != cfg.HeightBands[0] {
		t.Error("bands changed in round trip:", again.HeightBands[0], cfg.HeightBands[0])
	}
}

func TestLoadConfig_Waves(t *testing.T) {
	const config = `{
		"waves": [{"amplitude": 2, "frequency": 3}],
		"heatBands": [{"name": "hot", "height": 1, "color": "#ff0000"}]
	}`

	cfg, err := LoadConfig(strings.NewReader(config))
	if err != nil {
		t.Fatal(err)
	}
	want := terrain.Wave{Amplitude: 2, Frequency: 3}
	if len(cfg.Waves) != 1 || cfg.Waves[0] != want {
		t.Errorf("expected waves [%+v], got %+v", want, cfg.Waves)
	}
	if len(cfg.HeatBands) != 1 || cfg.HeatBands[0].Name != "hot" {
		t.Error("unexpected heat bands:", cfg.HeatBands)
	}
	if len(cfg.HeatWaves) != len(terrain.DefaultHeatWaves()) {
		t.Error("expected default heat waves, got", cfg.HeatWaves)
	}

	// Defaults are not shared with the returned config
	if d := DefaultConfig(); d.Waves[0].Seed == ([2]float32{}) || d.HeatBands[0].Name == "hot" {
		t.Error("defaults modified by LoadConfig")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []string{
		`{"widthInTiles": 0}`,
		`{"heightBands": [{"height": 1, "color": "blue"}]}`,
		`{"heatBands": [{"height": 0.9}, {"height": 0.1}]}`,
		`{"unknown": true}`,
		`{"mode": "moisture"}`,
		`{"waves": []}`,
	}

	for _, test := range tests {
		if _, err := LoadConfig(strings.NewReader(test)); err == nil {
			t.Error("expected error for", test)
		}
	}
}
