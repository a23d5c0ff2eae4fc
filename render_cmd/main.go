// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"github.com/SoftbearStudios/tilegen/cloud"
	"github.com/SoftbearStudios/tilegen/level"
	"image/png"
	"log"
	"os"
	"runtime/pprof"
)

func main() {
	var (
		configPath string
		cpuProfile string
		mode       string
		out        string
		publish    string
		region     string
		seed       int64
		scale      int
		stage      string
		workers    int
	)

	flag.StringVar(&configPath, "config", "", "level config `file` (defaults are used if empty)")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.StringVar(&mode, "mode", "", "texture to render, height or heat (defaults to config)")
	flag.StringVar(&out, "out", "out.png", "output `file`")
	flag.StringVar(&publish, "publish", "", "publish the level under this name")
	flag.StringVar(&region, "region", "us-east-1", "AWS region for -publish")
	flag.Int64Var(&seed, "seed", 0, "override config seed if non-zero")
	flag.IntVar(&scale, "scale", 8, "pixels per vertex in output")
	flag.StringVar(&stage, "stage", "dev", "deployment stage for -publish")
	flag.IntVar(&workers, "workers", 0, "generation goroutines (0 means one per CPU)")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg := level.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			log.Fatal(err)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if mode != "" {
		if err := cfg.Mode.UnmarshalText([]byte(mode)); err != nil {
			log.Fatal(err)
		}
	}

	var c *cloud.Cloud
	if publish != "" {
		if err := cloud.CheckName(publish); err != nil {
			log.Fatal(err)
		}
		var err error
		if c, err = cloud.New(region, stage); err != nil {
			log.Fatal("cloud error: ", err)
		}
	}

	if err := run(cfg, out, scale, workers, c, publish); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (level.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return level.Config{}, err
	}
	defer f.Close()
	return level.LoadConfig(f)
}

func run(cfg level.Config, out string, scale, workers int, c *cloud.Cloud, name string) error {
	l, err := level.Generate(context.Background(), cfg, workers)
	if err != nil {
		return err
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	img := level.Upscale(l.Render(cfg.Mode), scale)
	if err = png.Encode(file, img); err != nil {
		return err
	}
	log.Printf("rendered %dx%d tiles (%s) to %s", cfg.WidthInTiles, cfg.DepthInTiles, cfg.Mode, out)

	if name != "" {
		if err = c.Publish(name, l); err != nil {
			return err
		}
		log.Printf("published %s %s", name, c)
	}
	return nil
}
