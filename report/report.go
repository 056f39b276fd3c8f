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

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gbheader/header"
)

// Entry is the result of loading and parsing a single ROM.
type Entry struct {
	// name of the ROM as it should be displayed. usually the short name of
	// the cartridge loader
	Name string

	// SHA1 hash of the ROM data. can be empty
	Hash string

	Header header.RomHeader

	// result of header.HeaderChecksumOK() for the ROM data
	HeaderChecksumOK bool

	// the error from loading or parsing the ROM. if Err is not nil then the
	// Header and HeaderChecksumOK fields are meaningless
	Err error
}

// width of the name column in the scan table
const nameWidth = 24

// Summary writes the fields of the entry's header, one per line. With the
// verbose flag the entry point, checksum values and hash are also written.
func Summary(w io.Writer, e Entry, verbose bool) error {
	if e.Err != nil {
		_, err := fmt.Fprintf(w, "%s: %v\n", e.Name, e.Err)
		return err
	}

	s := &strings.Builder{}
	fmt.Fprintf(s, "title:       %s\n", e.Header.TitleString())
	fmt.Fprintf(s, "cartridge:   %s\n", e.Header.CartridgeType)
	fmt.Fprintf(s, "destination: %s\n", e.Header.DestinationCode)

	if verbose {
		fmt.Fprintf(s, "entry point: %04x %04x\n", e.Header.EntryPoint[0], e.Header.EntryPoint[1])
		fmt.Fprintf(s, "checksum:    %04x\n", e.Header.Checksum)
		if e.HeaderChecksumOK {
			fmt.Fprintf(s, "header sum:  ok\n")
		} else {
			fmt.Fprintf(s, "header sum:  bad\n")
		}
		if e.Hash != "" {
			fmt.Fprintf(s, "sha1:        %s\n", e.Hash)
		}
	}

	_, err := io.WriteString(w, s.String())
	return err
}

// Row returns a single line description of the entry, suitable for a table of
// many entries. The line does not end with a newline character.
func Row(e Entry) string {
	// fmt pads by rune so the name is truncated by rune
	name := e.Name
	if utf8.RuneCountInString(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "~"
	}

	if e.Err != nil {
		return fmt.Sprintf("%-*s * %v", nameWidth, name, e.Err)
	}

	return fmt.Sprintf("%-*s %-16s %-14s %s", nameWidth, name,
		e.Header.TitleString(), e.Header.CartridgeType, e.Header.DestinationCode)
}

// Memviz writes a graphviz (dot) rendering of the header to w.
func Memviz(w io.Writer, hdr *header.RomHeader) {
	memviz.Map(w, hdr)
}
