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

package catalogue

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gbheader/curated"
	"github.com/jetsetilly/gbheader/database"
	"github.com/jetsetilly/gbheader/header"
)

const headerEntryID = "header"

const (
	headerFieldHash int = iota
	headerFieldEntryPoint0
	headerFieldEntryPoint1
	headerFieldTitle
	headerFieldCartridgeType
	headerFieldDestination
	headerFieldChecksum

	// the name is the last field because it can contain the field separator
	headerFieldName
	numHeaderFields
)

// headerEntry is the database entry for a single ROM.
type headerEntry struct {
	hash   string
	name   string
	header header.RomHeader
}

func (ent *headerEntry) EntryType() string {
	return headerEntryID
}

func (ent *headerEntry) Serialise() (database.SerialisedEntry, error) {
	dest := 0
	if ent.header.DestinationCode != header.Japanese {
		dest = 1
	}

	return database.SerialisedEntry{
		ent.hash,
		fmt.Sprintf("%04x", ent.header.EntryPoint[0]),
		fmt.Sprintf("%04x", ent.header.EntryPoint[1]),
		hex.EncodeToString(ent.header.Title[:]),
		fmt.Sprintf("%02x", ent.header.CartridgeType.Code),
		strconv.Itoa(dest),
		fmt.Sprintf("%04x", ent.header.Checksum),
		ent.name,
	}, nil
}

func (ent *headerEntry) CleanUp() error {
	return nil
}

func (ent *headerEntry) String() string {
	return fmt.Sprintf("%s [%s] %s, %s (%s)", ent.header.TitleString(),
		ent.name, ent.header.CartridgeType, ent.header.DestinationCode, ent.hash[:min(len(ent.hash), 8)])
}

func deserialiseHeaderEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) < numHeaderFields {
		return nil, curated.Errorf("catalogue: too few fields in header entry (%d)", len(fields))
	}

	ent := &headerEntry{
		hash: fields[headerFieldHash],
		name: strings.Join(fields[headerFieldName:], ","),
	}

	ep0, err := strconv.ParseUint(fields[headerFieldEntryPoint0], 16, 16)
	if err != nil {
		return nil, curated.Errorf("catalogue: entry point: %v", err)
	}
	ep1, err := strconv.ParseUint(fields[headerFieldEntryPoint1], 16, 16)
	if err != nil {
		return nil, curated.Errorf("catalogue: entry point: %v", err)
	}
	ent.header.EntryPoint = [2]uint16{uint16(ep0), uint16(ep1)}

	title, err := hex.DecodeString(fields[headerFieldTitle])
	if err != nil {
		return nil, curated.Errorf("catalogue: title: %v", err)
	}
	if len(title) != header.TitleLength {
		return nil, curated.Errorf("catalogue: title: wrong length (%d)", len(title))
	}
	copy(ent.header.Title[:], title)

	code, err := strconv.ParseUint(fields[headerFieldCartridgeType], 16, 8)
	if err != nil {
		return nil, curated.Errorf("catalogue: cartridge type: %v", err)
	}
	ent.header.CartridgeType = header.NewCartridgeType(byte(code))

	dest, err := strconv.ParseUint(fields[headerFieldDestination], 10, 8)
	if err != nil {
		return nil, curated.Errorf("catalogue: destination: %v", err)
	}
	ent.header.DestinationCode = header.LookupDestination(byte(dest))

	checksum, err := strconv.ParseUint(fields[headerFieldChecksum], 16, 16)
	if err != nil {
		return nil, curated.Errorf("catalogue: checksum: %v", err)
	}
	ent.header.Checksum = uint16(checksum)

	return ent, nil
}
