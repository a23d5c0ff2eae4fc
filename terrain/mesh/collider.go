// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package mesh

import (
	"github.com/SoftbearStudios/tilegen/world"
	"github.com/chewxy/math32"
)

// Collider is a heightfield collision surface built from a Mesh.
type Collider struct {
	Width   int
	Depth   int
	Heights []float32
	Bounds  Bounds
}

// Sync copies the current geometry of m.
func (c *Collider) Sync(m *Mesh) {
	c.Width = m.Width
	c.Depth = m.Depth
	c.Bounds = m.Bounds
	if cap(c.Heights) >= len(m.Vertices) {
		c.Heights = c.Heights[:len(m.Vertices)]
	} else {
		c.Heights = make([]float32, len(m.Vertices))
	}
	for i, v := range m.Vertices {
		c.Heights[i] = v.Y()
	}
}

// HeightAt interpolates the surface height at local position (x, z).
// ok is false outside the collider.
func (c *Collider) HeightAt(x, z float32) (height float32, ok bool) {
	if c.Width < 2 || c.Depth < 2 {
		return 0, false
	}

	size := c.Bounds.Size()
	if size.X() <= 0 || size.Z() <= 0 {
		return 0, false
	}

	// Grid coordinates
	gx := (x - c.Bounds.Min.X()) / size.X() * float32(c.Width-1)
	gz := (z - c.Bounds.Min.Z()) / size.Z() * float32(c.Depth-1)
	if gx < 0 || gz < 0 || gx > float32(c.Width-1) || gz > float32(c.Depth-1) {
		return 0, false
	}

	fx, fz := math32.Floor(gx), math32.Floor(gz)
	x0, z0 := int(fx), int(fz)
	x1, z1 := minInt(x0+1, c.Width-1), minInt(z0+1, c.Depth-1)

	// Sample 2x2 grid
	// 00 10
	// 01 11
	c00 := c.Heights[z0*c.Width+x0]
	c10 := c.Heights[z0*c.Width+x1]
	c01 := c.Heights[z1*c.Width+x0]
	c11 := c.Heights[z1*c.Width+x1]

	return blerp(c00, c10, c01, c11, gx-fx, gz-fz), true
}

// blerp does bi-linear interpolation on 4 heights given the tx and ty offsets.
func blerp(c00, c10, c01, c11, tx, ty float32) float32 {
	return world.Lerp(
		world.Lerp(c00, c10, tx),
		world.Lerp(c01, c11, tx),
		ty,
	)
}

func minInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}
