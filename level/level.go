// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package level generates a map of terrain tiles.
package level

import (
	"context"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/terrain/compressed"
	"github.com/SoftbearStudios/tilegen/terrain/mesh"
	"github.com/SoftbearStudios/tilegen/terrain/noise"
	"github.com/SoftbearStudios/tilegen/terrain/tile"
	"github.com/SoftbearStudios/tilegen/world"
	"golang.org/x/image/draw"
	"image"
	"runtime"
	"sync"
)

// Level is a fully generated map. It is never partially regenerated; call
// Generate again for a new one.
type Level struct {
	Config Config
	// Tiles and Meshes are row-major by tile z then x.
	Tiles  []*tile.Tile
	Meshes []*mesh.Mesh
}

// Generate builds every tile of cfg on up to workers goroutines (0 means one per CPU).
// Either every tile is built or an error is returned.
func Generate(ctx context.Context, cfg Config, workers int) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	primitive, err := noise.New(cfg.Noise, cfg.Seed)
	if err != nil {
		return nil, err
	}
	field := noise.NewField(primitive)
	tileConfig := cfg.tileConfig()

	n := cfg.WidthInTiles * cfg.DepthInTiles
	level := &Level{
		Config: cfg,
		Tiles:  make([]*tile.Tile, n),
		Meshes: make([]*mesh.Mesh, n),
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		jobs     = make(chan int)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := level.generateTile(field, tileConfig, i); err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return level, nil
}

// TilePosition is the center of tile (x, z).
func (cfg *Config) TilePosition(x, z int) world.Vec2f {
	return cfg.Origin.Add(world.Vec2f{X: float32(x), Y: float32(z)}.Mul(cfg.TileSize))
}

func (level *Level) generateTile(field *noise.Field, cfg *tile.Config, i int) error {
	c := &level.Config
	x, z := i%c.WidthInTiles, i/c.WidthInTiles

	m, err := mesh.NewGrid(c.TileVertices, c.TileVertices, c.TileSize, c.TileSize)
	if err != nil {
		return err
	}
	m.Collider = new(mesh.Collider)

	t, err := tile.Generate(field, cfg, c.TilePosition(x, z), m)
	if err != nil {
		return err
	}

	// Each worker writes distinct indices
	level.Tiles[i] = t
	level.Meshes[i] = m
	return nil
}

// Tile returns tile (x, z) and its mesh.
func (level *Level) Tile(x, z int) (*tile.Tile, *mesh.Mesh) {
	c := &level.Config
	if x < 0 || z < 0 || x >= c.WidthInTiles || z >= c.DepthInTiles {
		return nil, nil
	}
	i := z*c.WidthInTiles + x
	return level.Tiles[i], level.Meshes[i]
}

// SetMode changes which texture every tile displays. Geometry is unaffected.
func (level *Level) SetMode(mode terrain.Mode) {
	level.Config.Mode = mode
	for _, t := range level.Tiles {
		t.Mode = mode
	}
}

// Render stitches the textures of every tile for mode into one image.
// Tile (x, z) occupies columns x*TileVertices and rows z*TileVertices onwards.
func (level *Level) Render(mode terrain.Mode) *image.RGBA {
	c := &level.Config
	v := c.TileVertices
	img := image.NewRGBA(image.Rect(0, 0, c.WidthInTiles*v, c.DepthInTiles*v))

	for i, t := range level.Tiles {
		x, z := i%c.WidthInTiles, i/c.WidthInTiles
		r := image.Rect(x*v, z*v, (x+1)*v, (z+1)*v)
		draw.Draw(img, r, t.TextureFor(mode), image.Point{}, draw.Src)
	}

	return img
}

// Heightmaps compresses the height field of every tile.
// Each Data may be returned to its pool with Data.Pool.
func (level *Level) Heightmaps() []*terrain.Data {
	data := make([]*terrain.Data, len(level.Tiles))
	for i, t := range level.Tiles {
		data[i] = compressed.Encode(t.Height, t.Footprint)
	}
	return data
}

// Upscale enlarges img by an integer factor without smoothing, since tile
// textures are only a few pixels wide.
func Upscale(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	if factor < 1 {
		factor = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
