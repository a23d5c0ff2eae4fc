// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
	"testing"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 0.0001
}

func TestVec2f_Floor(t *testing.T) {
	tests := []struct {
		vec, floor Vec2f
	}{
		{Vec2f{0.5, 0.5}, Vec2f{0, 0}},
		{Vec2f{-0.5, 1.5}, Vec2f{-1, 1}},
		{Vec2f{10, -10}, Vec2f{10, -10}},
	}

	for _, test := range tests {
		if got := test.vec.Floor(); got != test.floor {
			t.Errorf("expected %v.Floor(): %v, got %v", test.vec, test.floor, got)
		}
	}
}

func TestVec2f_Lerp(t *testing.T) {
	a := Vec2f{X: 0, Y: 10}
	b := Vec2f{X: 10, Y: 20}
	got := a.Lerp(b, 0.25)
	if !approx(got.X, 2.5) || !approx(got.Y, 12.5) {
		t.Errorf("expected %v.Lerp(%v, 0.25): {2.5 12.5}, got %v", a, b, got)
	}
}

func TestAABB_Union(t *testing.T) {
	a := AABBFrom(0, 0, 10, 10)
	b := AABBFrom(10, 0, 10, 10)
	u := a.Union(b)
	if u != AABBFrom(0, 0, 20, 10) {
		t.Error("expected union {0 0 20 10}, got", u)
	}
	if !u.Contains(a) || !u.Contains(b) {
		t.Error("union", u, "does not contain its parts")
	}
	if !a.Intersects(b) {
		t.Error("touching tiles", a, b, "should intersect")
	}
}

func TestClamp01(t *testing.T) {
	for _, test := range []struct{ in, out float32 }{{-1, 0}, {0.5, 0.5}, {2, 1}} {
		if got := Clamp01(test.in); got != test.out {
			t.Errorf("Clamp01(%v) expected %v, got %v", test.in, test.out, got)
		}
	}
}
