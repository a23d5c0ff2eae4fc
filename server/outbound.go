// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/SoftbearStudios/tilegen/terrain"
)

type (
	// Error reports a rejected inbound to the client that sent it.
	Error struct {
		Message string `json:"message"`
	}

	// Level is every tile of the current level.
	Level struct {
		Seed         int64        `json:"seed"`
		WidthInTiles int          `json:"widthInTiles"`
		DepthInTiles int          `json:"depthInTiles"`
		Mode         terrain.Mode `json:"mode"`
		Tiles        []TileData   `json:"tiles"`
	}

	// Published confirms a Publish.
	Published struct {
		Name string `json:"name"`
	}

	// TileData is one tile of a Level.
	TileData struct {
		X int `json:"x"`
		Z int `json:"z"`
		// Texture is a PNG of the tile's active texture.
		Texture []byte `json:"texture"`
		// Heights is the compressed height field.
		Heights *terrain.Data `json:"heights"`
	}
)

func init() {
	registerOutbound(
		Error{},
		Level{},
		Published{},
	)
}

func (e Error) Pool() {}

// Level is shared by every client it is broadcast to, so it is left to the garbage collector.
func (l Level) Pool() {}

func (p Published) Pool() {}
