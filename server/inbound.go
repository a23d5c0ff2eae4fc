// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"github.com/SoftbearStudios/tilegen/level"
	"github.com/SoftbearStudios/tilegen/terrain"
	"log"
	"time"
)

// Make sure to register in init function
type (
	// InvalidInbound means invalid message type from client (possibly out of date).
	// NOTE: Do not register, otherwise client could send type "invalidInbound"
	InvalidInbound struct {
		messageType messageType
	}

	// Mode switches which texture every tile displays. Geometry is unchanged.
	Mode struct {
		Mode terrain.Mode `json:"mode"`
	}

	// Publish uploads the current level under Name.
	Publish struct {
		Name string `json:"name"`
	}

	// Regenerate discards the current level and builds a new one from Seed.
	Regenerate struct {
		Seed int64 `json:"seed"`
	}
)

func init() {
	registerInbound(
		Mode{},
		Publish{},
		Regenerate{},
	)
}

func (data InvalidInbound) Inbound(_ *Hub, client Client) {
	log.Println("invalid message type received:", data.messageType)
	client.Send(Error{Message: "unknown message type " + string(data.messageType)})
}

func (data Mode) Inbound(h *Hub, client Client) {
	if data.Mode != terrain.ModeHeight && data.Mode != terrain.ModeHeat {
		client.Send(Error{Message: "invalid mode"})
		return
	}
	if data.Mode == h.level.Config.Mode {
		return
	}

	defer h.timeFunction("mode", time.Now())
	h.level.SetMode(data.Mode)
	h.broadcastLevel()
}

func (data Publish) Inbound(h *Hub, client Client) {
	if h.cloud == nil {
		client.Send(Error{Message: "publishing is offline"})
		return
	}

	defer h.timeFunction("publish", time.Now())
	if err := h.cloud.Publish(data.Name, h.level); err != nil {
		client.Send(Error{Message: err.Error()})
		return
	}
	client.Send(Published{Name: data.Name})
}

func (data Regenerate) Inbound(h *Hub, client Client) {
	if data.Seed == h.level.Config.Seed {
		client.Send(h.levelMessage())
		return
	}

	defer h.timeFunction("generate", time.Now())

	cfg := h.level.Config
	cfg.Seed = data.Seed
	l, err := level.Generate(context.Background(), cfg, h.workers)
	if err != nil {
		log.Println("regenerate error:", err)
		client.Send(Error{Message: err.Error()})
		return
	}

	h.level = l
	h.generations++
	h.broadcastLevel()
}
