// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain holds the data model shared by the tile generator: noise waves,
// scalar grids, terrain bands and the colors they render to.
package terrain

import (
	"errors"
	"fmt"
)

var (
	ErrDimensions = errors.New("grid dimensions must be positive")
	ErrNoBands    = errors.New("no terrain bands")
	ErrUnsorted   = errors.New("terrain bands not sorted by height")
	ErrNoWaves    = errors.New("no waves with positive amplitude")
)

// Wave is one octave of coherent noise.
type Wave struct {
	Amplitude float32    `json:"amplitude"`
	Frequency float32    `json:"frequency"`
	Seed      [2]float32 `json:"seed"` // Seed offsets the x and z sample coordinates.
}

// ValidateWaves checks that waves can be normalized.
func ValidateWaves(waves []Wave) error {
	var total float32
	for _, wave := range waves {
		total += wave.Amplitude
	}
	if total <= 0 {
		return ErrNoWaves
	}
	return nil
}

// Mode selects which color buffer of a tile is displayed.
// It has no effect on geometry.
type Mode uint8

const (
	ModeHeight Mode = iota
	ModeHeat
)

func (mode Mode) String() string {
	switch mode {
	case ModeHeight:
		return "height"
	case ModeHeat:
		return "heat"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(mode))
	}
}

func (mode Mode) MarshalText() ([]byte, error) {
	switch mode {
	case ModeHeight, ModeHeat:
		return []byte(mode.String()), nil
	}
	return nil, fmt.Errorf("invalid mode %d", uint8(mode))
}

func (mode *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "height":
		*mode = ModeHeight
	case "heat":
		*mode = ModeHeat
	default:
		return fmt.Errorf("invalid mode %q", text)
	}
	return nil
}
