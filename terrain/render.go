// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"github.com/SoftbearStudios/tilegen/world"
	"image"
	"image/color"
	"strconv"
	"strings"
)

type ColorVec [3]float32

// Render classifies every cell of grid into a color.
// Pixel (x, z) of the result is cell (x, z) of grid; rows are not flipped.
func Render(grid *Grid, types []TerrainType) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Depth))

	for z := 0; z < grid.Depth; z++ {
		for x := 0; x < grid.Width; x++ {
			c := Classify(grid.At(x, z), types).Color.Color()

			// Avoid img.Set's interface conversion
			i := img.PixOffset(x, z)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}

	return img
}

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

// ParseHex parses "#rrggbb" (the # is optional).
func ParseHex(s string) (ColorVec, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return ColorVec{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorVec{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(byte(v>>16), byte(v>>8), byte(v)), nil
}

// Hex formats vec as "#rrggbb".
func (vec ColorVec) Hex() string {
	c := vec.Color()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (vec ColorVec) String() string {
	return fmt.Sprintf("vec4(%.3f, %.3f, %.3f, 1.0)", vec[0], vec[1], vec[2])
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] = world.Lerp(vec[i], other[i], factor)
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	// Round so that RGB -> Color is lossless
	return byte(f*255 + 0.5)
}
