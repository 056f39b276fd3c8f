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

// Package header decodes the cartridge header found in every Game Boy ROM
// image.
//
// The header occupies the address range 0x0100 to 0x014f. Parse() extracts
// the fields that we're interested in and checks the global checksum stored
// in the last two bytes of the header. The global checksum is the sum of
// every byte in the ROM, excluding the two checksum bytes themselves, with
// all overflow discarded.
//
//	hdr, err := header.Parse(data)
//	if err != nil {
//		if curated.Is(err, header.BadChecksum) {
//			...
//		}
//	}
//	fmt.Println(hdr.TitleString())
//
// Parse() is a pure function. It does not log, it does not modify the data
// and it does not keep a reference to the data after returning. It is safe to
// call from many goroutines at once.
//
// Some fields of the header are not decoded. The ROMSize and RAMSize fields
// of the RomHeader type exist but are always zero.
package header
