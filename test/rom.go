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

package test

// the smallest amount of data that MakeROM() will create
const MinROMSize = 0x150

const (
	romTitle      = 0x134
	romTitleEnd   = 0x143
	romChecksumHi = 0x14e
	romChecksumLo = 0x14f
)

// MakeROM returns cartridge data of the specified size. The title is copied
// to the title field and then the patch is applied. Finally, the global
// checksum is set so that the data will parse without error.
//
// The title is silently truncated to the size of the field. Patches to the
// checksum bytes are overwritten. A size of less than MinROMSize will be
// increased to MinROMSize.
func MakeROM(size int, title string, patch map[int]byte) []byte {
	size = max(size, MinROMSize)

	d := make([]byte, size)
	copy(d[romTitle:romTitleEnd], title)
	for a, v := range patch {
		d[a] = v
	}

	var sum uint16
	for i, v := range d {
		if i == romChecksumHi || i == romChecksumLo {
			continue
		}
		sum += uint16(v)
	}

	d[romChecksumHi] = byte(sum >> 8)
	d[romChecksumLo] = byte(sum)

	return d
}
