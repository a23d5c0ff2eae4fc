// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "fmt"

// TerrainType is a band of values below Height that renders as Color.
type TerrainType struct {
	Name   string   `json:"name"`
	Height float32  `json:"height"` // Height is the exclusive upper bound of the band.
	Color  ColorVec `json:"color"`
}

// Bands is a non-empty table of terrain types sorted ascending by Height.
type Bands []TerrainType

// NewBands validates types and returns them as Bands.
func NewBands(types []TerrainType) (Bands, error) {
	if len(types) == 0 {
		return nil, ErrNoBands
	}
	for i := 1; i < len(types); i++ {
		if types[i].Height < types[i-1].Height {
			return nil, fmt.Errorf("%w: %q (%g) after %q (%g)", ErrUnsorted,
				types[i].Name, types[i].Height, types[i-1].Name, types[i-1].Height)
		}
	}
	return Bands(types), nil
}

// Classify is equivalent to the package level Classify.
func (bands Bands) Classify(value float32) TerrainType {
	return Classify(value, bands)
}

// Classify returns the first type whose Height exceeds value.
// Values above every band fall back to the last type.
// types must not be empty.
func Classify(value float32, types []TerrainType) TerrainType {
	for _, t := range types {
		if value < t.Height {
			return t
		}
	}
	return types[len(types)-1]
}
