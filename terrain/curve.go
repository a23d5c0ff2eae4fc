// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"github.com/SoftbearStudios/tilegen/world"
	"sort"
)

// Curve reshapes a normalized height before it is scaled to a displacement.
type Curve interface {
	Evaluate(t float32) float32
}

// CurveFunc adapts a function to a Curve.
type CurveFunc func(t float32) float32

func (f CurveFunc) Evaluate(t float32) float32 {
	return f(t)
}

// Identity leaves heights unchanged.
var Identity Curve = CurveFunc(func(t float32) float32 { return t })

// Key is a point on a Keyframes curve.
type Key struct {
	Time  float32 `json:"time"`
	Value float32 `json:"value"`
}

// Keyframes interpolates linearly between keys sorted by Time.
// Outside the first and last key the curve is flat.
type Keyframes []Key

// NewKeyframes sorts keys. At least one key is required.
func NewKeyframes(keys ...Key) (Keyframes, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("curve has no keys")
	}
	k := make(Keyframes, len(keys))
	copy(k, keys)
	sort.SliceStable(k, func(i, j int) bool {
		return k[i].Time < k[j].Time
	})
	return k, nil
}

func (keys Keyframes) Evaluate(t float32) float32 {
	if len(keys) == 0 {
		return t
	}
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}

	// First key after t
	i := sort.Search(len(keys), func(i int) bool {
		return keys[i].Time > t
	})
	a, b := keys[i-1], keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return world.Lerp(a.Value, b.Value, (t-a.Time)/span)
}
