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

import (
	"encoding/binary"
	"strings"

	"github.com/jetsetilly/gbheader/curated"
)

// The position and extent of the header in the ROM data. The last byte of
// the header is at HeaderOffset+HeaderLength.
const (
	HeaderOffset = 0x0100
	HeaderLength = 0x004f
)

// Sentinel error patterns returned by Parse().
const (
	// the length of the data is not large enough to contain a header. the
	// placeholder is the length of the data
	RomTooShort = "header: rom too short (%d bytes)"

	// the checksum calculated from the data does not match the declared
	// checksum. the placeholders are the calculated and declared values
	BadChecksum = "header: bad checksum (calculated %04x, declared %04x)"
)

// absolute offsets of the fields decoded by Parse()
const (
	entryPointOffset    = 100
	titleOffset         = 0x0134
	titleEnd            = 0x0143
	cartridgeTypeOffset = 0x0147
	destinationOffset   = 0x014a
	checksumOffset      = 0x014e
	checksumLength      = 2
)

// the size of the Title field
const TitleLength = 16

// RomHeader is the decoded cartridge header.
type RomHeader struct {
	// two big-endian words read from the four bytes starting at offset 100
	// (decimal). note that this is not the four byte instruction sequence at
	// the start of the header
	EntryPoint [2]uint16

	// the title field is fifteen bytes long in the ROM and is copied into a
	// sixteen byte array. the last byte of the array is always zero. note
	// that the title is not guaranteed to be zero terminated or printable
	// before that. use TitleString() for display purposes
	Title [TitleLength]byte

	CartridgeType CartridgeType

	// the number of ROM and RAM banks are not decoded. these fields are always
	// zero
	ROMSize uint8
	RAMSize uint8

	DestinationCode DestinationCode

	// the global checksum as declared in the header
	Checksum uint16
}

// Parse the header in the ROM data. The data is not modified and no reference
// to it is kept.
//
// The checksum is tested only once all fields have been extracted. No header
// is returned in the event of an error.
func Parse(rom []byte) (RomHeader, error) {
	// the last byte of the header is the low byte of the checksum so the data
	// must be long enough to include that byte
	if len(rom) <= HeaderOffset+HeaderLength {
		return RomHeader{}, curated.Errorf(RomTooShort, len(rom))
	}

	var hdr RomHeader

	copy(hdr.Title[:], rom[titleOffset:titleEnd])
	hdr.EntryPoint[0] = binary.BigEndian.Uint16(rom[entryPointOffset:])
	hdr.EntryPoint[1] = binary.BigEndian.Uint16(rom[entryPointOffset+2:])
	hdr.CartridgeType = NewCartridgeType(rom[cartridgeTypeOffset])
	hdr.DestinationCode = LookupDestination(rom[destinationOffset])
	hdr.Checksum = binary.BigEndian.Uint16(rom[checksumOffset:])

	if sum := ComputeChecksum(rom); sum != hdr.Checksum {
		return RomHeader{}, curated.Errorf(BadChecksum, sum, hdr.Checksum)
	}

	return hdr, nil
}

// TitleString returns the title as a string suitable for display. The string
// ends at the first zero byte and any unprintable bytes are replaced with a
// full stop.
func (hdr RomHeader) TitleString() string {
	var s strings.Builder
	for _, b := range hdr.Title {
		if b == 0x00 {
			break
		}
		if b < 0x20 || b > 0x7e {
			s.WriteByte('.')
		} else {
			s.WriteByte(b)
		}
	}
	return s.String()
}
