// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"github.com/SoftbearStudios/tilegen/cloud/db"
	"sort"
)

func sortMaps(maps []db.Map) {
	sort.Slice(maps, func(i, j int) bool {
		if maps[i].Created != maps[j].Created {
			return maps[i].Created > maps[j].Created
		}
		return maps[i].Name < maps[j].Name
	})
}
