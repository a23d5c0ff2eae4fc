// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	grid, err := NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	// Row z=0 is low, row z=1 is high
	for x := 0; x < grid.Width; x++ {
		grid.Set(x, 0, 0.1)
		grid.Set(x, 1, 0.9)
	}
	grid.Set(2, 1, 5) // out of range heat

	img := Render(grid, testBands())
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatal("expected 3x2 image, got", b)
	}

	for x := 0; x < grid.Width; x++ {
		if c := img.RGBAAt(x, 0); c != colorA.Color() {
			t.Errorf("pixel (%d, 0) expected %v, got %v", x, colorA.Color(), c)
		}
		if c := img.RGBAAt(x, 1); c != colorC.Color() {
			t.Errorf("pixel (%d, 1) expected %v, got %v", x, colorC.Color(), c)
		}
	}
}

func TestNewGrid(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 4}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrDimensions) {
			t.Errorf("NewGrid(%d, %d) expected ErrDimensions, got %v", dims[0], dims[1], err)
		}
	}

	grid, _ := NewGrid(4, 3)
	grid.Set(3, 2, 7)
	if grid.Values[2*4+3] != 7 {
		t.Error("grid is not row-major by z")
	}
	grid.Set(0, 0, -1)
	if lo, hi := grid.Range(); lo != -1 || hi != 7 {
		t.Errorf("expected range [-1, 7], got [%v, %v]", lo, hi)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#c2b280")
	if err != nil {
		t.Fatal(err)
	}
	if c != RGB(194, 178, 128) {
		t.Error("expected sand, got", c)
	}
	if c.Hex() != "#c2b280" {
		t.Error("expected #c2b280, got", c.Hex())
	}

	for _, bad := range []string{"", "#fff", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) expected error", bad)
		}
	}
}
