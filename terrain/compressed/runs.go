// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package compressed

// A run is one byte: the top 4 bits of a height, then 4 bits of count - 1.
const (
	nibbleMask = 0b11110000
	maxRun     = 16
)

// appendRun appends b, rounded to 4 bits, extending the last run when it can.
func appendRun(runs []byte, b byte) []byte {
	nibble := roundByte(b)
	if end := len(runs) - 1; end >= 0 {
		last := runs[end]
		if roundByte(last) == nibble && last&^nibbleMask < maxRun-1 {
			runs[end] = last + 1
			return runs
		}
	}
	return append(runs, nibble)
}

// expandRuns fills dst from runs. runs must expand to exactly len(dst) bytes.
func expandRuns(dst, runs []byte) error {
	i := 0
	for _, r := range runs {
		n := int(r&^nibbleMask) + 1
		if i+n > len(dst) {
			return ErrCorrupt
		}
		for end := i + n; i < end; i++ {
			dst[i] = roundByte(r)
		}
	}
	if i != len(dst) {
		return ErrCorrupt
	}
	return nil
}
