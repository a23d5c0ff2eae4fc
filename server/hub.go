// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"context"
	"github.com/SoftbearStudios/tilegen/cloud"
	"github.com/SoftbearStudios/tilegen/level"
	"image/png"
	"log"
	"os"
	"sync/atomic"
	"time"
)

const (
	debugPeriod  = time.Second * 30
	statusPeriod = time.Second * 5
)

type (
	// HubOptions configures NewHub.
	HubOptions struct {
		// Config is the level the hub starts with. Regenerate keeps everything but the seed.
		Config level.Config
		// Cloud is optional.
		Cloud *cloud.Cloud
		// Workers is passed to level.Generate.
		Workers int
	}

	// Hub owns the current level and the set of clients viewing it.
	// Every field is only accessed by the hub goroutine except statusJSON.
	Hub struct {
		level       *level.Level
		message     *Level // cached outbound of level
		workers     int
		generations int
		clients     ClientList

		// Cloud (and things that are served atomically by HTTP)
		cloud      *cloud.Cloud
		statusJSON atomic.Value

		// funcBenches are benchmarks of core Hub functions.
		funcBenches []funcBench

		// Inbound channels
		inbound    chan SignedInbound
		register   chan Client
		unregister chan Client

		// Timer based events
		debugTicker  *time.Ticker
		statusTicker *time.Ticker
	}
)

// NewHub generates the initial level.
func NewHub(options HubOptions) (*Hub, error) {
	l, err := level.Generate(context.Background(), options.Config, options.Workers)
	if err != nil {
		return nil, err
	}

	h := &Hub{
		level:        l,
		workers:      options.Workers,
		cloud:        options.Cloud,
		inbound:      make(chan SignedInbound, 16),
		register:     make(chan Client, 8),
		unregister:   make(chan Client, 16),
		debugTicker:  time.NewTicker(debugPeriod),
		statusTicker: time.NewTicker(statusPeriod),
	}
	h.updateStatus()
	return h, nil
}

func (h *Hub) Run() {
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		println("That's it, I'm out -hub") // Don't waste time debugging hub exists
		os.Exit(1)
	}()

	for {
		select {
		case client := <-h.register:
			h.clients.Add(client)
			client.Data().Hub = h
			client.Init()
			client.Send(h.levelMessage())
		case client := <-h.unregister:
			client.Close()
			client.Data().Hub = nil
			h.clients.Remove(client)
		case in := <-h.inbound:
			// Read all messages currently in the channel
			n := len(h.inbound)

			for {
				// If not same hub the message is old
				if h == in.Client.Data().Hub {
					in.Inbound(h, in.Client)
				}

				if n--; n <= 0 {
					break
				}

				in = <-h.inbound
			}
		case <-h.statusTicker.C:
			h.updateStatus()
		case <-h.debugTicker.C:
			h.Debug()
		}
	}
}

// broadcastLevel sends the current level to every client after it changed.
func (h *Hub) broadcastLevel() {
	h.message = nil
	h.clients.Broadcast(h.levelMessage())
	h.updateStatus()
}

// levelMessage encodes the current level, reusing the last encoding until it changes.
func (h *Hub) levelMessage() Level {
	if h.message != nil {
		return *h.message
	}

	defer h.timeFunction("encode", time.Now())

	c := &h.level.Config
	message := &Level{
		Seed:         c.Seed,
		WidthInTiles: c.WidthInTiles,
		DepthInTiles: c.DepthInTiles,
		Mode:         c.Mode,
		Tiles:        make([]TileData, len(h.level.Tiles)),
	}

	heightmaps := h.level.Heightmaps()
	for i, t := range h.level.Tiles {
		var buf bytes.Buffer
		if err := png.Encode(&buf, t.Texture()); err != nil {
			// Encoding to memory only fails on invalid images
			log.Println("texture encode error:", err)
		}

		message.Tiles[i] = TileData{
			X:       i % c.WidthInTiles,
			Z:       i / c.WidthInTiles,
			Texture: buf.Bytes(),
			Heights: heightmaps[i],
		}
	}

	h.message = message
	return *message
}
