// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "fmt"

// Grid is a scalar field sampled over a tile, stored row-major by z then x.
// Values are conventionally in [0, 1] but are not clamped.
type Grid struct {
	Width  int
	Depth  int
	Values []float32
}

func NewGrid(width, depth int) (*Grid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, depth)
	}
	return &Grid{
		Width:  width,
		Depth:  depth,
		Values: make([]float32, width*depth),
	}, nil
}

func (grid *Grid) index(x, z int) int {
	return z*grid.Width + x
}

func (grid *Grid) At(x, z int) float32 {
	return grid.Values[grid.index(x, z)]
}

func (grid *Grid) Set(x, z int, value float32) {
	grid.Values[grid.index(x, z)] = value
}

// SameSize reports whether both grids cover the same cells.
func (grid *Grid) SameSize(other *Grid) bool {
	return grid.Width == other.Width && grid.Depth == other.Depth
}

// Range returns the smallest and largest values.
func (grid *Grid) Range() (lo, hi float32) {
	for i, v := range grid.Values {
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return
}
