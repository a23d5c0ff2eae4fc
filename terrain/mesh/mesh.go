// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mesh is a grid mesh whose heights are set by the tile generator.
package mesh

import (
	"errors"
	"fmt"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrTopology = errors.New("invalid mesh topology")

// Bounds is an axis aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Mesh has Width*Depth vertices, row-major by z then x.
// The generator only writes the Y component of Vertices.
type Mesh struct {
	Width    int
	Depth    int
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Indices  []uint32 // Indices lists triangles, three per face.
	Bounds   Bounds
	// Collider, if not nil, is kept in sync with Vertices.
	Collider *Collider
}

// NewGrid creates a flat mesh centered on the origin spanning sizeX by sizeZ.
func NewGrid(width, depth int, sizeX, sizeZ float32) (*Mesh, error) {
	if width < 2 || depth < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2x2 vertices, got %dx%d", ErrTopology, width, depth)
	}

	m := &Mesh{
		Width:    width,
		Depth:    depth,
		Vertices: make([]mgl32.Vec3, 0, width*depth),
		Indices:  make([]uint32, 0, (width-1)*(depth-1)*6),
	}

	dx := sizeX / float32(width-1)
	dz := sizeZ / float32(depth-1)
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			m.Vertices = append(m.Vertices, mgl32.Vec3{float32(x)*dx - sizeX*0.5, 0, float32(z)*dz - sizeZ*0.5})
		}
	}

	// Counter-clockwise seen from +Y
	for z := 0; z < depth-1; z++ {
		for x := 0; x < width-1; x++ {
			a := uint32(z*width + x)
			b := a + 1
			c := a + uint32(width)
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}

	m.RecalculateBounds()
	m.RecalculateNormals()
	return m, nil
}

// Validate checks that the vertex and index buffers agree with the dimensions.
func (m *Mesh) Validate() error {
	if m.Width <= 0 || m.Depth <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrTopology, m.Width, m.Depth)
	}
	if n := m.Width * m.Depth; len(m.Vertices) != n {
		return fmt.Errorf("%w: %d vertices for %dx%d grid", ErrTopology, len(m.Vertices), m.Width, m.Depth)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrTopology, len(m.Indices))
	}
	for _, i := range m.Indices {
		if int(i) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d out of range", ErrTopology, i)
		}
	}
	return nil
}

// RecalculateBounds fits Bounds to Vertices.
func (m *Mesh) RecalculateBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}

	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		for i := range v {
			if v[i] < b.Min[i] {
				b.Min[i] = v[i]
			}
			if v[i] > b.Max[i] {
				b.Max[i] = v[i]
			}
		}
	}
	m.Bounds = b
}

// RecalculateNormals computes smooth vertex normals by summing the area weighted
// normals of adjacent faces. Vertices without any area point up.
func (m *Mesh) RecalculateNormals() {
	if cap(m.Normals) >= len(m.Vertices) {
		m.Normals = m.Normals[:len(m.Vertices)]
		for i := range m.Normals {
			m.Normals[i] = mgl32.Vec3{}
		}
	} else {
		m.Normals = make([]mgl32.Vec3, len(m.Vertices))
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v0 := m.Vertices[i0]
		face := m.Vertices[i1].Sub(v0).Cross(m.Vertices[i2].Sub(v0))

		m.Normals[i0] = m.Normals[i0].Add(face)
		m.Normals[i1] = m.Normals[i1].Add(face)
		m.Normals[i2] = m.Normals[i2].Add(face)
	}

	for i, n := range m.Normals {
		if n.Len() == 0 {
			m.Normals[i] = mgl32.Vec3{0, 1, 0}
		} else {
			m.Normals[i] = n.Normalize()
		}
	}
}

// Spacing is the distance between adjacent vertices along x and z.
func (m *Mesh) Spacing() (dx, dz float32) {
	size := m.Bounds.Size()
	if m.Width > 1 {
		dx = size.X() / float32(m.Width-1)
	}
	if m.Depth > 1 {
		dz = size.Z() / float32(m.Depth-1)
	}
	return
}
