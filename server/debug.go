// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"
	"github.com/SoftbearStudios/tilegen/terrain"
	"log"
	"runtime"
	"time"
)

// status is served by ServeIndex.
type status struct {
	Clients      int          `json:"clients"`
	Seed         int64        `json:"seed"`
	WidthInTiles int          `json:"widthInTiles"`
	DepthInTiles int          `json:"depthInTiles"`
	Mode         terrain.Mode `json:"mode"`
	Generations  int          `json:"generations"`
	Cloud        string       `json:"cloud"`
}

func (h *Hub) updateStatus() {
	c := &h.level.Config
	buf, err := json.Marshal(status{
		Clients:      h.clients.Len,
		Seed:         c.Seed,
		WidthInTiles: c.WidthInTiles,
		DepthInTiles: c.DepthInTiles,
		Mode:         c.Mode,
		Generations:  h.generations,
		Cloud:        h.cloud.String(),
	})
	if err != nil {
		log.Println("status error:", err)
		return
	}
	h.statusJSON.Store(buf)
}

// Debug prints debugging info to console and tmp files.
func (h *Hub) Debug() {
	fmt.Printf("Debug [%v] %s\n", time.Now().Format(time.UnixDate), h.cloud)
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	fmt.Printf(" - memstats: %dM/%dM\n", stats.HeapInuse/1e6, stats.NextGC/1e6)

	c := &h.level.Config
	fmt.Printf(" - clients: %d, seed: %d, mode: %s, tiles: %dx%d, generations: %d\n",
		h.clients.Len, c.Seed, c.Mode, c.WidthInTiles, c.DepthInTiles, h.generations)

	// Function benchmarks
	var totalDuration time.Duration

	fmt.Print(" - ")
	for i := range h.funcBenches {
		bench := &h.funcBenches[i]

		duration := bench.reset()
		totalDuration += duration

		fmt.Print(bench.name, ": ", duration, ", ")
	}
	fmt.Println("total:", totalDuration)

	_ = AppendLog("/tmp/tilegen.log", []interface{}{
		unixMillis(),
		h.clients.Len,
		c.Seed,
		h.generations,
		float64(totalDuration) / float64(time.Millisecond),
	})
}

// funcBench is a benchmark of a core function.
type funcBench struct {
	name     string
	duration time.Duration
	runs     int
}

// reset resets the benchmark and returns the average duration
func (bench *funcBench) reset() time.Duration {
	if bench.runs == 0 {
		return 0
	}
	average := bench.duration / time.Duration(bench.runs)
	bench.duration = 0
	bench.runs = 0
	return average
}

// timeFunction times a function.
// defer timeFunction("name", time.Now())
func (h *Hub) timeFunction(name string, start time.Time) {
	end := time.Now()

	var bench *funcBench
	for i := range h.funcBenches {
		b := &h.funcBenches[i]
		if name == b.name {
			bench = b
			break
		}
	}

	if bench == nil {
		h.funcBenches = append(h.funcBenches, funcBench{name: name})
		bench = &h.funcBenches[len(h.funcBenches)-1]
	}

	bench.duration += end.Sub(start)
	bench.runs++
}
