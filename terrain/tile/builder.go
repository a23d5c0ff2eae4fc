// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tile

import (
	"errors"
	"fmt"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/terrain/noise"
)

var (
	ErrScale    = errors.New("scale must be positive")
	ErrDistance = errors.New("max distance must be positive")
	ErrMismatch = errors.New("grid size mismatch")
)

// BuildHeightField samples waves over a width by depth grid.
// Cell (x, z) is sampled at ((x+offsetX)/scale, (z+offsetZ)/scale), so a larger
// scale gives broader features.
func BuildHeightField(field *noise.Field, width, depth int, scale, offsetX, offsetZ float32, waves []terrain.Wave) (*terrain.Grid, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrScale, scale)
	}
	if err := terrain.ValidateWaves(waves); err != nil {
		return nil, err
	}
	grid, err := terrain.NewGrid(width, depth)
	if err != nil {
		return nil, err
	}

	sampleGrid(grid, field, scale, offsetX, offsetZ, waves)
	return grid, nil
}

func sampleGrid(grid *terrain.Grid, field *noise.Field, scale, offsetX, offsetZ float32, waves []terrain.Wave) {
	s := float64(scale)
	for z := 0; z < grid.Depth; z++ {
		sz := (float64(z) + float64(offsetZ)) / s
		for x := 0; x < grid.Width; x++ {
			sx := (float64(x) + float64(offsetX)) / s
			grid.Set(x, z, field.Sample(sx, sz, waves))
		}
	}
}

// HeatParams places a tile within the map's latitude gradient.
type HeatParams struct {
	Scale   float32
	OffsetX float32
	OffsetZ float32
	// CenterZ is the map row where the latitude gradient peaks.
	CenterZ float32
	// MaxDistanceZ is how far from CenterZ the uniform heat reaches 0.
	MaxDistanceZ float32
	// VertexOffsetZ is the map row of the tile's first row.
	VertexOffsetZ float32
}

// BuildHeatField combines a latitude gradient, noise from heatWaves and height.
// The result is not clamped; high terrain may exceed 1.
func BuildHeatField(field *noise.Field, params HeatParams, heatWaves []terrain.Wave, height *terrain.Grid) (*terrain.Grid, error) {
	if params.MaxDistanceZ <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrDistance, params.MaxDistanceZ)
	}
	random, err := BuildHeightField(field, height.Width, height.Depth, params.Scale, params.OffsetX, params.OffsetZ, heatWaves)
	if err != nil {
		return nil, fmt.Errorf("heat: %w", err)
	}
	if !random.SameSize(height) {
		return nil, ErrMismatch
	}

	// Reuse random's storage for the result
	heat := random
	for z := 0; z < heat.Depth; z++ {
		uniform := noise.SampleUniform(float32(z), params.CenterZ, params.MaxDistanceZ, params.VertexOffsetZ)
		for x := 0; x < heat.Width; x++ {
			heat.Set(x, z, CombineHeat(uniform, random.At(x, z), height.At(x, z)))
		}
	}
	return heat, nil
}

// CombineHeat is uniform*random + height².
func CombineHeat(uniform, random, height float32) float32 {
	return uniform*random + height*height
}
