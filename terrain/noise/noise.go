// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise samples weighted octaves of coherent noise.
package noise

import (
	"fmt"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/world"
	"github.com/chewxy/math32"
)

// Primitive is a single octave of coherent noise with output in [0, 1].
// Implementations must be deterministic and safe for concurrent use.
type Primitive interface {
	Noise2D(x, y float64) float64
}

const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// New creates the primitive named by kind. An empty kind is Perlin.
func New(kind string, seed int64) (Primitive, error) {
	switch kind {
	case "", KindPerlin:
		return NewPerlin(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// Field combines octaves of a Primitive.
// It holds no mutable state and may be shared between goroutines.
type Field struct {
	primitive Primitive
}

func NewField(primitive Primitive) *Field {
	return &Field{primitive: primitive}
}

// Sample returns the amplitude weighted average of every wave at (x, z).
// Each octave is in [0, 1] before weighting, so the result is too.
// If the amplitudes sum to zero the result is zero.
func (f *Field) Sample(x, z float64, waves []terrain.Wave) float32 {
	var sum, normalization float64
	for _, wave := range waves {
		frequency := float64(wave.Frequency)
		amplitude := float64(wave.Amplitude)
		sum += f.primitive.Noise2D(x*frequency+float64(wave.Seed[0]), z*frequency+float64(wave.Seed[1])) * amplitude
		normalization += amplitude
	}
	if normalization == 0 {
		return 0
	}
	return float32(sum / normalization)
}

// SampleUniform is 1 at centerZ and falls off linearly to 0 at maxDistanceZ from it.
// vertexOffsetZ moves z from tile space to map space.
func SampleUniform(z, centerZ, maxDistanceZ, vertexOffsetZ float32) float32 {
	distance := math32.Abs(z + vertexOffsetZ - centerZ)
	if maxDistanceZ <= 0 {
		if distance == 0 {
			return 1
		}
		return 0
	}
	return world.Clamp01(1 - distance/maxDistanceZ)
}

func clamp64(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
