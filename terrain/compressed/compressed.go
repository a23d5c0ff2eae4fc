// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compressed packs tile height fields for transport.
// Heights are quantized to a byte, then the top 4 bits are run length encoded.
package compressed

import (
	"errors"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/world"
)

var ErrCorrupt = errors.New("compressed data is corrupt")

// Encode quantizes grid and compresses it.
// The returned Data may be returned to its pool with Data.Pool.
func Encode(grid *terrain.Grid, bounds world.AABB) *terrain.Data {
	data := terrain.NewData()
	runs := data.Data[:0]
	// Reserve room for about half as many runs as heights
	if want := len(grid.Values) / 2; cap(runs) < want {
		runs = make([]byte, 0, want)
	}
	for _, v := range grid.Values {
		runs = appendRun(runs, quantize(v))
	}

	data.AABB = bounds
	data.Data = runs
	data.Stride = grid.Width
	data.Length = len(grid.Values)

	return data
}

// Decode returns the quantized heights of data, without modifying it.
func Decode(data *terrain.Data) ([]byte, error) {
	if data.Stride <= 0 || data.Length%data.Stride != 0 {
		return nil, ErrCorrupt
	}

	raw := make([]byte, data.Length)
	if err := expandRuns(raw, data.Data); err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodeGrid is Decode scaled back to [0, 1].
func DecodeGrid(data *terrain.Data) (*terrain.Grid, error) {
	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}
	grid, err := terrain.NewGrid(data.Stride, data.Length/data.Stride)
	if err != nil {
		return nil, err
	}
	for i, b := range raw {
		grid.Values[i] = float32(b) * (1.0 / 255)
	}
	return grid, nil
}
