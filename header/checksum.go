// This file is part of gbheader.
//
// gbheader is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbheader is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbheader.  If not, see <https://www.gnu.org/licenses/>.

package header

// skipRange is a half-open range of offsets that are not included in a sum.
type skipRange struct {
	start int
	end   int
}

func (r skipRange) contains(i int) bool {
	return i >= r.start && i < r.end
}

// the checksum field does not contribute to the checksum
var checksumField = skipRange{
	start: checksumOffset,
	end:   checksumOffset + checksumLength,
}

// sum all bytes in data except those in the skip range. overflow is
// discarded.
func sum(data []byte, skip skipRange) uint16 {
	var s uint16
	for i, b := range data {
		if skip.contains(i) {
			continue
		}
		s += uint16(b)
	}
	return s
}

// ComputeChecksum returns the global checksum for the ROM data. This is the
// value that should be declared in the last two bytes of the header.
//
// The data can be of any length.
func ComputeChecksum(rom []byte) uint16 {
	return sum(rom, checksumField)
}

// offsets of the header checksum and the data it covers
const (
	complementStart  = 0x0134
	complementEnd    = 0x014d
	complementOffset = 0x014d
)

// HeaderChecksumOK checks the one byte header checksum at address 0x014d. The
// header checksum covers the bytes from 0x0134 to 0x014c inclusive.
//
// The result of this function is informational only. It has no effect on
// Parse(). Returns false if the data is too short to contain the header
// checksum.
func HeaderChecksumOK(rom []byte) bool {
	if len(rom) <= complementOffset {
		return false
	}

	var x uint8
	for _, b := range rom[complementStart:complementEnd] {
		x = x - b - 1
	}

	return x == rom[complementOffset]
}
