// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Map is a published map. Its files live under Prefix in the static bucket.
type Map struct {
	Name         string   `dynamo:"name"`
	Noise        string   `dynamo:"noise"`
	Seed         int64    `dynamo:"seed"`
	WidthInTiles int      `dynamo:"widthInTiles"`
	DepthInTiles int      `dynamo:"depthInTiles"`
	Prefix       string   `dynamo:"prefix"`
	Files        []string `dynamo:"files,set"`
	Created      int64    `dynamo:"created"` // unix seconds
}
