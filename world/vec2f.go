// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
	"math"
)

// Vec2f is a position on the map plane.
// Y is the map's depth axis (Z in mesh space).
type Vec2f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func (vec Vec2f) Mul(factor float32) Vec2f {
	vec.X *= factor
	vec.Y *= factor
	return vec
}

func (vec Vec2f) Div(divisor float32) Vec2f {
	return vec.Mul(1.0 / divisor)
}

func (vec Vec2f) Add(otherVec Vec2f) Vec2f {
	vec.X += otherVec.X
	vec.Y += otherVec.Y
	return vec
}

func (vec Vec2f) Sub(otherVec Vec2f) Vec2f {
	vec.X -= otherVec.X
	vec.Y -= otherVec.Y
	return vec
}

func (vec Vec2f) Distance(otherVec Vec2f) float32 {
	return vec.Sub(otherVec).Length()
}

func (vec Vec2f) Length() float32 {
	return math32.Hypot(vec.X, vec.Y)
}

func Lerp(a, b, factor float32) float32 {
	return a + (b-a)*factor
}

func (vec Vec2f) Lerp(otherVec Vec2f, factor float32) Vec2f {
	vec.X = Lerp(vec.X, otherVec.X, factor)
	vec.Y = Lerp(vec.Y, otherVec.Y, factor)
	return vec
}

func (vec Vec2f) Floor() Vec2f {
	// Use math.Floor instead because it uses assembly
	vec.X = float32(math.Floor(float64(vec.X)))
	vec.Y = float32(math.Floor(float64(vec.Y)))
	return vec
}
