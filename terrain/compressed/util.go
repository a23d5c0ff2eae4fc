// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package compressed

// quantize maps [0, 1] to a byte. Heat above 1 saturates.
func quantize(f float32) byte {
	if f < 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return byte(f * 256)
}

// Rounds a byte to 4 bits of precision
func roundByte(b byte) byte {
	return b & nibbleMask
}
