// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tile generates the height and heat fields of a terrain tile, renders
// them to color buffers and deforms the tile's mesh to match.
package tile

import (
	"fmt"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/terrain/mesh"
	"github.com/SoftbearStudios/tilegen/terrain/noise"
	"github.com/SoftbearStudios/tilegen/world"
	"image"
)

// Config is shared, read-only configuration for every tile of a map.
type Config struct {
	Scale            float32
	HeightMultiplier float32
	Curve            terrain.Curve // nil is terrain.Identity
	Waves            []terrain.Wave
	HeatWaves        []terrain.Wave
	HeightBands      terrain.Bands
	HeatBands        terrain.Bands
	CenterZ          float32
	MaxDistanceZ     float32
	Mode             terrain.Mode
}

// Validate checks everything that does not depend on the mesh.
func (cfg *Config) Validate() error {
	if cfg.Scale <= 0 {
		return fmt.Errorf("%w: %g", ErrScale, cfg.Scale)
	}
	if cfg.MaxDistanceZ <= 0 {
		return fmt.Errorf("%w: %g", ErrDistance, cfg.MaxDistanceZ)
	}
	if err := terrain.ValidateWaves(cfg.Waves); err != nil {
		return fmt.Errorf("waves: %w", err)
	}
	if err := terrain.ValidateWaves(cfg.HeatWaves); err != nil {
		return fmt.Errorf("heat waves: %w", err)
	}
	if _, err := terrain.NewBands(cfg.HeightBands); err != nil {
		return fmt.Errorf("height bands: %w", err)
	}
	if _, err := terrain.NewBands(cfg.HeatBands); err != nil {
		return fmt.Errorf("heat bands: %w", err)
	}
	return nil
}

// Tile is the generated state of one map cell.
type Tile struct {
	Position     world.Vec2f
	Footprint    world.AABB
	Height       *terrain.Grid
	Heat         *terrain.Grid
	HeightColors *image.RGBA
	HeatColors   *image.RGBA
	Mode         terrain.Mode
}

// Texture is the color buffer selected by Mode.
func (t *Tile) Texture() *image.RGBA {
	return t.TextureFor(t.Mode)
}

func (t *Tile) TextureFor(mode terrain.Mode) *image.RGBA {
	if mode == terrain.ModeHeat {
		return t.HeatColors
	}
	return t.HeightColors
}

// Generate builds a tile at position using m as its geometry. m is modified
// only after everything else succeeded, and no reference to it is kept.
func Generate(field *noise.Field, cfg *Config, position world.Vec2f, m *mesh.Mesh) (*Tile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// Tiles share their edge vertices, so sampling in vertex units offset by the
	// tile's position makes neighbours agree along the seam
	size := m.Bounds.Size()
	dx, dz := m.Spacing()
	if dx <= 0 || dz <= 0 {
		return nil, fmt.Errorf("%w: mesh has no area", mesh.ErrTopology)
	}
	offsetX, offsetZ := position.X/dx, position.Y/dz

	height, err := BuildHeightField(field, m.Width, m.Depth, cfg.Scale, offsetX, offsetZ, cfg.Waves)
	if err != nil {
		return nil, err
	}

	heat, err := BuildHeatField(field, HeatParams{
		Scale:         cfg.Scale,
		OffsetX:       offsetX,
		OffsetZ:       offsetZ,
		CenterZ:       cfg.CenterZ,
		MaxDistanceZ:  cfg.MaxDistanceZ,
		VertexOffsetZ: offsetZ,
	}, cfg.HeatWaves, height)
	if err != nil {
		return nil, err
	}

	ys, err := displacements(m, height, cfg.HeightMultiplier, cfg.Curve)
	if err != nil {
		return nil, err
	}

	t := &Tile{
		Position:     position,
		Footprint:    world.AABBFrom(position.X+m.Bounds.Min.X(), position.Y+m.Bounds.Min.Z(), size.X(), size.Z()),
		Height:       height,
		Heat:         heat,
		HeightColors: terrain.Render(height, cfg.HeightBands),
		HeatColors:   terrain.Render(heat, cfg.HeatBands),
		Mode:         cfg.Mode,
	}

	applyDisplacements(m, ys)
	return t, nil
}
