// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import "errors"

var ErrNotFound = errors.New("map not found")

// Database is a catalog of published maps.
type Database interface {
	PutMap(m Map) error
	ReadMap(name string) (Map, error)
	ReadMaps() (maps []Map, err error)
}
