// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Default band thresholds, normalized to [0, 1].
const (
	OceanLevel = 0.3
	SandLevel  = OceanLevel + 0.1
	GrassLevel = SandLevel + 0.3
	RockLevel  = GrassLevel + 0.2
	SnowLevel  = 1
)

// DefaultHeightBands colors a height field like a coastline.
func DefaultHeightBands() Bands {
	return Bands{
		{Name: "water", Height: OceanLevel, Color: RGB(0, 75, 130)},
		{Name: "sand", Height: SandLevel, Color: RGB(194, 178, 128)},
		{Name: "grass", Height: GrassLevel, Color: RGB(90, 180, 30)},
		{Name: "rock", Height: RockLevel, Color: RGB(105, 110, 115)},
		{Name: "snow", Height: SnowLevel, Color: Gray(220)},
	}
}

// DefaultHeatBands colors a heat field from hottest to coldest.
// Height adds to heat, so high terrain reads cold. Values above 1 land in the last band.
func DefaultHeatBands() Bands {
	return Bands{
		{Name: "hottest", Height: 0.5, Color: RGB(220, 40, 20)},
		{Name: "hot", Height: 0.7, Color: RGB(240, 150, 40)},
		{Name: "cold", Height: 0.9, Color: RGB(120, 200, 230)},
		{Name: "coldest", Height: 1, Color: RGB(40, 90, 230)},
	}
}

// DefaultWaves are three octaves of decreasing weight.
func DefaultWaves() []Wave {
	return []Wave{
		{Amplitude: 1, Frequency: 1, Seed: [2]float32{56, 56}},
		{Amplitude: 0.5, Frequency: 2, Seed: [2]float32{199.36, 199.36}},
		{Amplitude: 0.25, Frequency: 4, Seed: [2]float32{9985.1, 9985.1}},
	}
}

// DefaultHeatWaves are two octaves offset from DefaultWaves.
func DefaultHeatWaves() []Wave {
	return []Wave{
		{Amplitude: 1, Frequency: 1, Seed: [2]float32{7432.7, 7432.7}},
		{Amplitude: 0.5, Frequency: 0.5, Seed: [2]float32{3415.6, 3415.6}},
	}
}
