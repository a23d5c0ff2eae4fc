// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package compressed

import (
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/world"
	"testing"
)

func TestEncode(t *testing.T) {
	grid, _ := terrain.NewGrid(8, 4)
	for i := range grid.Values {
		grid.Values[i] = float32(i) / float32(len(grid.Values))
	}
	grid.Values[0] = -1 // clamped
	grid.Values[1] = 3  // saturated heat

	bounds := world.AABBFrom(10, 20, 7, 3)
	data := Encode(grid, bounds)
	defer data.Pool()

	if data.Stride != 8 || data.Length != 32 || data.AABB != bounds {
		t.Fatalf("unexpected header: stride %d length %d aabb %v", data.Stride, data.Length, data.AABB)
	}
	if len(data.Data) >= data.Length {
		t.Error("expected compression, got", len(data.Data), "bytes for", data.Length)
	}

	raw, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range grid.Values {
		if want := roundByte(quantize(v)); raw[i] != want {
			t.Errorf("height %d expected %d, got %d", i, want, raw[i])
		}
	}

	// Decode must not consume data
	again, err := Decode(data)
	if err != nil || string(again) != string(raw) {
		t.Error("second decode differs:", err)
	}

	decoded, err := DecodeGrid(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Width != 8 || decoded.Depth != 4 {
		t.Errorf("expected 8x4 grid, got %dx%d", decoded.Width, decoded.Depth)
	}
	for i, v := range grid.Values {
		if v < 0 || v > 1 {
			continue
		}
		// 4 bits of precision
		if d := decoded.Values[i] - v; d > 1.0/16 || d < -1.0/16 {
			t.Errorf("height %d expected ~%v, got %v", i, v, decoded.Values[i])
		}
	}
}

func TestDecode_Corrupt(t *testing.T) {
	grid, _ := terrain.NewGrid(4, 4)
	data := Encode(grid, world.AABB{})

	short := *data
	short.Length = 20
	if _, err := Decode(&short); err != ErrCorrupt {
		t.Error("expected ErrCorrupt for wrong length, got", err)
	}

	short = *data
	short.Stride = 0
	if _, err := Decode(&short); err != ErrCorrupt {
		t.Error("expected ErrCorrupt for zero stride, got", err)
	}
}
