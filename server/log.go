// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"encoding/csv"
	"fmt"
	"os"
)

// AppendLog appends one CSV row of fields to filename, creating it if needed.
// Floats are written with two decimals.
func AppendLog(filename string, fields []interface{}) (err error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)

	fieldStrings := make([]string, len(fields))
	for i, field := range fields {
		switch v := field.(type) {
		case float32, float64:
			fieldStrings[i] = fmt.Sprintf("%.2f", v)
		default:
			fieldStrings[i] = fmt.Sprint(v)
		}
	}

	if err = w.Write(fieldStrings); err != nil {
		return
	}

	w.Flush()
	return w.Error()
}
