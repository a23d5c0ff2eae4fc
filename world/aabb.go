// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// AABB is the footprint of a tile on the map plane.
type AABB struct {
	Vec2f
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func AABBFrom(x, y, width, height float32) AABB {
	return AABB{
		Vec2f:  Vec2f{X: x, Y: y},
		Width:  width,
		Height: height,
	}
}

// Intersects a and b are intersecting
func (a AABB) Intersects(b AABB) bool {
	return a.X+a.Width >= b.X && a.X <= b.X+b.Width && a.Y+a.Height >= b.Y && a.Y <= b.Height+b.Y
}

// Contains a fully contains b
func (a AABB) Contains(b AABB) bool {
	return a.X <= b.X && a.Y <= b.Y && a.X+a.Width >= b.X+b.Width && a.Y+a.Height >= b.Y+b.Height
}

// Union is the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	minX, minY := min(a.X, b.X), min(a.Y, b.Y)
	maxX, maxY := max(a.X+a.Width, b.X+b.Width), max(a.Y+a.Height, b.Y+b.Height)
	return AABBFrom(minX, minY, maxX-minX, maxY-minY)
}
