// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"github.com/SoftbearStudios/tilegen/cloud"
	"github.com/SoftbearStudios/tilegen/level"
	"github.com/SoftbearStudios/tilegen/server"
	"golang.org/x/net/netutil"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
)

func main() {
	var (
		configPath     string
		maxConnections int
		offline        bool
		port           int
		region         string
		stage          string
		workers        int
	)

	flag.StringVar(&configPath, "config", "", "level config `file` (defaults are used if empty)")
	flag.IntVar(&maxConnections, "max-connections", 64, "maximum number of inbound TCP connections")
	flag.BoolVar(&offline, "offline", false, "disable publishing")
	flag.IntVar(&port, "port", 8192, "http service port")
	flag.StringVar(&region, "region", "us-east-1", "AWS region for publishing")
	flag.StringVar(&stage, "stage", "dev", "deployment stage for publishing")
	flag.IntVar(&workers, "workers", 0, "generation goroutines (0 means one per CPU)")
	flag.Parse()

	cfg := level.DefaultConfig()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg, err = level.LoadConfig(f)
		_ = f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	var c *cloud.Cloud
	if !offline {
		var err error
		if c, err = cloud.New(region, stage); err != nil {
			// Cloud is not required for server to function, just log an error
			log.Printf("Cloud error: %v\n", err)
			c = nil
		}
	}
	log.Println("cloud:", c)

	hub, err := server.NewHub(server.HubOptions{
		Config:  cfg,
		Cloud:   c,
		Workers: workers,
	})
	if err != nil {
		log.Fatal(err)
	}

	go hub.Run()

	log.Printf("tilegen preview started on http://localhost:%d", port)

	http.HandleFunc("/", hub.ServeIndex)
	http.HandleFunc("/ws", hub.ServeSocket)

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Fatal("ListenAndServe: ", http.Serve(l, nil))
}
