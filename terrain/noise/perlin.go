// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "github.com/aquilax/go-perlin"

// Perlin is gradient noise rescaled from [-1, 1] to [0, 1].
type Perlin struct {
	perlin *perlin.Perlin
}

// NewPerlin creates a single octave generator.
// The seed only determines the permutation table.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		perlin: perlin.NewPerlin(2, 2, 1, seed),
	}
}

func (p *Perlin) Noise2D(x, y float64) float64 {
	return clamp64(p.perlin.Noise2D(x, y)*0.5 + 0.5)
}
