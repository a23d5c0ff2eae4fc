// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/chewxy/math32"
	"testing"
)

func TestKeyframes_Evaluate(t *testing.T) {
	// Flat below sea level, then linear
	curve, err := NewKeyframes(Key{Time: 1, Value: 1}, Key{Time: 0, Value: 0}, Key{Time: 0.3, Value: 0})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in, out float32
	}{
		{-1, 0},
		{0, 0},
		{0.2, 0},
		{0.3, 0},
		{0.65, 0.5},
		{1, 1},
		{2, 1},
	}

	for _, test := range tests {
		if got := curve.Evaluate(test.in); math32.Abs(got-test.out) > 1e-5 {
			t.Errorf("expected Evaluate(%v): %v, got %v", test.in, test.out, got)
		}
	}

	if _, err := NewKeyframes(); err == nil {
		t.Error("expected error for empty curve")
	}
}

func TestIdentity(t *testing.T) {
	for _, v := range []float32{-1, 0, 0.5, 3} {
		if Identity.Evaluate(v) != v {
			t.Error("identity changed", v)
		}
	}
}
