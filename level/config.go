// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package level

import (
	"errors"
	"fmt"
	"github.com/SoftbearStudios/tilegen/terrain"
	"github.com/SoftbearStudios/tilegen/terrain/noise"
	"github.com/SoftbearStudios/tilegen/terrain/tile"
	"github.com/SoftbearStudios/tilegen/world"
	"io"
)

// Config describes a whole map. It is the serializable form of tile.Config.
type Config struct {
	WidthInTiles int         `json:"widthInTiles"`
	DepthInTiles int         `json:"depthInTiles"`
	Origin       world.Vec2f `json:"origin"`
	// TileSize is the width and depth of a tile in world units.
	TileSize float32 `json:"tileSize"`
	// TileVertices is the number of vertices along each side of a tile.
	TileVertices int `json:"tileVertices"`

	Noise            string            `json:"noise"`
	Seed             int64             `json:"seed"`
	Scale            float32           `json:"scale"`
	HeightMultiplier float32           `json:"heightMultiplier"`
	Curve            terrain.Keyframes `json:"curve,omitempty"` // Curve is the identity if empty.
	Waves            []terrain.Wave    `json:"waves"`
	HeatWaves        []terrain.Wave    `json:"heatWaves"`
	HeightBands      terrain.Bands     `json:"heightBands"`
	HeatBands        terrain.Bands     `json:"heatBands"`
	Mode             terrain.Mode      `json:"mode"`
}

func DefaultConfig() Config {
	return Config{
		WidthInTiles:     3,
		DepthInTiles:     3,
		TileSize:         10,
		TileVertices:     11,
		Noise:            noise.KindPerlin,
		Seed:             56,
		Scale:            3,
		HeightMultiplier: 3,
		Curve: terrain.Keyframes{
			{Time: 0, Value: 0},
			{Time: terrain.OceanLevel, Value: 0},
			{Time: 1, Value: 1},
		},
		Waves:       terrain.DefaultWaves(),
		HeatWaves:   terrain.DefaultHeatWaves(),
		HeightBands: terrain.DefaultHeightBands(),
		HeatBands:   terrain.DefaultHeatBands(),
		Mode:        terrain.ModeHeight,
	}
}

// LoadConfig decodes a JSON config. Missing fields keep their DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	defaults := DefaultConfig()
	cfg := defaults
	// Decoding into a non-empty slice overlays fields of the default elements,
	// so lists are decoded fresh and only fall back to defaults when absent
	cfg.Curve = nil
	cfg.Waves = nil
	cfg.HeatWaves = nil
	cfg.HeightBands = nil
	cfg.HeatBands = nil
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Curve == nil {
		cfg.Curve = defaults.Curve
	}
	if cfg.Waves == nil {
		cfg.Waves = defaults.Waves
	}
	if cfg.HeatWaves == nil {
		cfg.HeatWaves = defaults.HeatWaves
	}
	if cfg.HeightBands == nil {
		cfg.HeightBands = defaults.HeightBands
	}
	if cfg.HeatBands == nil {
		cfg.HeatBands = defaults.HeatBands
	}
	return cfg, cfg.Validate()
}

// Marshal encodes cfg with the package's jsoniter config.
func (cfg *Config) Marshal() ([]byte, error) {
	return json.Marshal(cfg)
}

func (cfg *Config) Validate() error {
	if cfg.WidthInTiles <= 0 || cfg.DepthInTiles <= 0 {
		return fmt.Errorf("%w: map is %dx%d tiles", terrain.ErrDimensions, cfg.WidthInTiles, cfg.DepthInTiles)
	}
	if cfg.TileVertices < 2 {
		return fmt.Errorf("%w: %d vertices per tile side", terrain.ErrDimensions, cfg.TileVertices)
	}
	if cfg.TileSize <= 0 {
		return errors.New("tile size must be positive")
	}
	if _, err := noise.New(cfg.Noise, cfg.Seed); err != nil {
		return err
	}
	tc := cfg.tileConfig()
	return tc.Validate()
}

// halfDepth is half the map's rows, in vertices. Neighbouring tiles share an edge row.
func (cfg *Config) halfDepth() float32 {
	return float32(cfg.DepthInTiles*(cfg.TileVertices-1)) * 0.5
}

// CenterZ is the map row where the latitude gradient peaks.
// A tile's first row is map row position.Y/dz.
func (cfg *Config) CenterZ() float32 {
	dz := cfg.TileSize / float32(cfg.TileVertices-1)
	return cfg.Origin.Y/dz + cfg.halfDepth()
}

func (cfg *Config) tileConfig() *tile.Config {
	var curve terrain.Curve
	if len(cfg.Curve) > 0 {
		// Copy so sorting cannot reorder the caller's keys
		curve, _ = terrain.NewKeyframes(cfg.Curve...)
	}

	return &tile.Config{
		Scale:            cfg.Scale,
		HeightMultiplier: cfg.HeightMultiplier,
		Curve:            curve,
		Waves:            cfg.Waves,
		HeatWaves:        cfg.HeatWaves,
		HeightBands:      cfg.HeightBands,
		HeatBands:        cfg.HeatBands,
		CenterZ:          cfg.CenterZ(),
		MaxDistanceZ:     cfg.halfDepth(),
		Mode:             cfg.Mode,
	}
}
