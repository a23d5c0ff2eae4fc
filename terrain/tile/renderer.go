// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tile

import (
	"fmt"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/terrain/mesh"
)

// DeformMesh sets the Y of every vertex of m to curve(height)*multiplier and
// recomputes bounds, normals and the collider. A nil curve is the identity.
// m is not modified if an error is returned.
func DeformMesh(m *mesh.Mesh, height *terrain.Grid, multiplier float32, curve terrain.Curve) error {
	ys, err := displacements(m, height, multiplier, curve)
	if err != nil {
		return err
	}
	applyDisplacements(m, ys)
	return nil
}

func displacements(m *mesh.Mesh, height *terrain.Grid, multiplier float32, curve terrain.Curve) ([]float32, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Width != height.Width || m.Depth != height.Depth {
		return nil, fmt.Errorf("%w: mesh %dx%d, height %dx%d", ErrMismatch, m.Width, m.Depth, height.Width, height.Depth)
	}
	if curve == nil {
		curve = terrain.Identity
	}

	// Height and vertices share row-major order
	ys := make([]float32, len(height.Values))
	for i, h := range height.Values {
		ys[i] = curve.Evaluate(h) * multiplier
	}
	return ys, nil
}

func applyDisplacements(m *mesh.Mesh, ys []float32) {
	for i, y := range ys {
		m.Vertices[i][1] = y
	}

	m.RecalculateBounds()
	m.RecalculateNormals()
	if m.Collider != nil {
		m.Collider.Sync(m)
	}
}
