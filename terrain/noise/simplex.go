// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Simplex is OpenSimplex noise, already normalized to [0, 1].
type Simplex struct {
	noise opensimplex.Noise
}

func NewSimplex(seed int64) *Simplex {
	return &Simplex{
		noise: opensimplex.NewNormalized(seed),
	}
}

func (s *Simplex) Noise2D(x, y float64) float64 {
	return clamp64(s.noise.Eval2(x, y))
}
