// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

// This is an internal script used to condense the preview server's debug log
// (see server.Hub.Debug) into a smaller CSV for plotting

const (
	// Columns written by the server
	columnTimestamp = iota
	columnClients
	columnSeed
	columnGenerations
	columnMillis
	columnCount
)

func main() {
	var (
		group int
		in    string
		out   string
	)

	flag.IntVar(&group, "group", 100, "rows averaged into one")
	flag.StringVar(&in, "in", "tilegen.log", "log `file` sourced from server filesystem")
	flag.StringVar(&out, "out", "tilegen.csv", "output `file`")
	flag.Parse()

	f, err := os.Open(in)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	o, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer o.Close()

	if err = condense(f, o, group); err != nil {
		log.Fatal(err)
	}
}

// condense averages each group of rows of r. The timestamp is the group's first
// and generations counts regenerations during the group.
func condense(r io.Reader, w io.Writer, group int) error {
	if group < 1 {
		return fmt.Errorf("invalid group %d", group)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columnCount
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"timestamp", "clients", "generations", "millis"}); err != nil {
		return err
	}

	var (
		timestamp       string
		clients, millis float64
		generations     int // last cumulative count read
		previous        int // cumulative count at end of last group
		started         bool
		n               int
	)

	flush := func() error {
		if n == 0 {
			return nil
		}
		err := cw.Write([]string{
			timestamp,
			fmt.Sprintf("%.2f", clients/float64(n)),
			strconv.Itoa(generations - previous),
			fmt.Sprintf("%.2f", millis/float64(n)),
		})
		previous = generations
		clients, millis, n = 0, 0, 0
		return err
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		c, err := strconv.ParseFloat(record[columnClients], 64)
		if err != nil {
			return err
		}
		g, err := strconv.Atoi(record[columnGenerations])
		if err != nil {
			return err
		}
		m, err := strconv.ParseFloat(record[columnMillis], 64)
		if err != nil {
			return err
		}

		if !started {
			started = true
			previous = g
		}
		if n == 0 {
			timestamp = record[columnTimestamp]
		}
		clients += c
		millis += m
		generations = g
		n++

		if n == group {
			if err = flush(); err != nil {
				return err
			}
		}
	}

	if err := flush(); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
