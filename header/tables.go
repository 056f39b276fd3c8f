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

import "fmt"

// MemoryBankController identifies the bank switching hardware in a cartridge.
type MemoryBankController int

// List of valid MemoryBankController values. MBCNone is used for cartridge
// type codes that are not recognised, as well as for cartridges that really
// have no controller.
const (
	MBCNone MemoryBankController = iota
	MBC1
	MBC2
	MBC3
	MBC5
)

func (mbc MemoryBankController) String() string {
	switch mbc {
	case MBCNone:
		return "none"
	case MBC1:
		return "MBC1"
	case MBC2:
		return "MBC2"
	case MBC3:
		return "MBC3"
	case MBC5:
		return "MBC5"
	}
	return fmt.Sprintf("unknown MBC (%d)", int(mbc))
}

// an inclusive range of cartridge type codes that map to a controller
type mbcEntry struct {
	first byte
	last  byte
	mbc   MemoryBankController
}

// the first matching entry is used. codes not covered by any entry map to
// MBCNone
var mbcTable = []mbcEntry{
	{first: 0x01, last: 0x03, mbc: MBC1},
	{first: 0x05, last: 0x06, mbc: MBC2},
	{first: 0x12, last: 0x13, mbc: MBC3},
	{first: 0x19, last: 0x1e, mbc: MBC5},
}

// LookupMBC returns the memory bank controller for the cartridge type code.
func LookupMBC(code byte) MemoryBankController {
	for _, e := range mbcTable {
		if code >= e.first && code <= e.last {
			return e.mbc
		}
	}
	return MBCNone
}

// CartridgeType is the decoded cartridge type byte.
type CartridgeType struct {
	// the raw value from the header
	Code byte

	MBC MemoryBankController
}

// NewCartridgeType is the preferred method of initialisation for the
// CartridgeType type.
func NewCartridgeType(code byte) CartridgeType {
	return CartridgeType{
		Code: code,
		MBC:  LookupMBC(code),
	}
}

// HasMBC returns true if the cartridge type code indicates a recognised
// memory bank controller.
func (ct CartridgeType) HasMBC() bool {
	return ct.MBC != MBCNone
}

func (ct CartridgeType) String() string {
	if ct.MBC == MBCNone {
		return fmt.Sprintf("no MBC (0x%02x)", ct.Code)
	}
	return fmt.Sprintf("%s (0x%02x)", ct.MBC, ct.Code)
}

// DestinationCode indicates the region the cartridge was sold in.
type DestinationCode int

// List of valid DestinationCode values.
const (
	Japanese DestinationCode = iota
	NonJapanese
)

func (dest DestinationCode) String() string {
	switch dest {
	case Japanese:
		return "Japanese"
	case NonJapanese:
		return "Non-Japanese"
	}
	return fmt.Sprintf("unknown destination (%d)", int(dest))
}

type destinationEntry struct {
	code byte
	dest DestinationCode
}

// codes not in the table map to NonJapanese
var destinationTable = []destinationEntry{
	{code: 0x00, dest: Japanese},
}

// LookupDestination returns the destination for the destination code.
func LookupDestination(code byte) DestinationCode {
	for _, e := range destinationTable {
		if code == e.code {
			return e.dest
		}
	}
	return NonJapanese
}
