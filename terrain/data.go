// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"github.com/SoftbearStudios/tilegen/world"
	"sync"
)

// Data describes the height field of one tile, quantized to bytes.
// It may be in a compressed format.
type Data struct {
	world.AABB
	Data   []byte `json:"data"`   // Data is a possibly compressed heightmap.
	Stride int    `json:"stride"` // Stride is width of Data.
	Length int    `json:"length"` // Length is uncompressed length of Data for faster reading.
}

var dataPool = sync.Pool{
	New: func() interface{} {
		return &Data{
			Data: make([]byte, 0, 256),
		}
	},
}

func NewData() *Data {
	return dataPool.Get().(*Data)
}

// Pool returns data to be reused by NewData. data must not be used afterwards.
func (data *Data) Pool() {
	*data = Data{
		Data: data.Data[:0],
	}
	dataPool.Put(data)
}
