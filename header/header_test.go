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

package header_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/gbheader/curated"
	"github.com/jetsetilly/gbheader/header"
	"github.com/jetsetilly/gbheader/test"
)

// a header sized buffer of zeros except for the title "TESTGAME". the
// checksum is set by hand
func testGame() []byte {
	d := make([]byte, 0x150)
	copy(d[0x134:], "TESTGAME")

	// 'T' + 'E' + 'S' + 'T' + 'G' + 'A' + 'M' + 'E' == 602 == 0x025a
	d[0x14e] = 0x02
	d[0x14f] = 0x5a

	return d
}

func TestTestGame(t *testing.T) {
	hdr, err := header.Parse(testGame())
	test.DemandSuccess(t, err)

	title := [header.TitleLength]byte{'T', 'E', 'S', 'T', 'G', 'A', 'M', 'E'}
	test.ExpectEquality(t, hdr.Title, title)
	test.ExpectEquality(t, hdr.TitleString(), "TESTGAME")
	test.ExpectEquality(t, hdr.DestinationCode, header.Japanese)
	test.ExpectEquality(t, hdr.CartridgeType.MBC, header.MBCNone)
	test.ExpectEquality(t, hdr.CartridgeType.Code, 0x00)
	test.ExpectEquality(t, hdr.EntryPoint, [2]uint16{0, 0})
	test.ExpectEquality(t, hdr.Checksum, 0x025a)
	test.ExpectEquality(t, hdr.ROMSize, 0)
	test.ExpectEquality(t, hdr.RAMSize, 0)
}

func TestBadChecksum(t *testing.T) {
	d := testGame()
	d[0x14f] = 0x5b

	hdr, err := header.Parse(d)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, header.BadChecksum))
	test.ExpectFailure(t, curated.Is(err, header.RomTooShort))
	test.ExpectEquality(t, err.Error(), "header: bad checksum (calculated 025a, declared 025b)")

	// no header is returned on error
	test.ExpectEquality(t, hdr, header.RomHeader{})

	// an incorrect high byte is also detected
	d = testGame()
	d[0x14e] = 0x00
	_, err = header.Parse(d)
	test.ExpectSuccess(t, curated.Is(err, header.BadChecksum))
}

func TestRomTooShort(t *testing.T) {
	for n := range 0x14f {
		_, err := header.Parse(make([]byte, n))
		test.ExpectSuccess(t, curated.Is(err, header.RomTooShort), n)
	}

	// one byte short of the end of the header
	_, err := header.Parse(testGame()[:0x14e])
	test.ExpectSuccess(t, curated.Is(err, header.RomTooShort))
	test.ExpectEquality(t, err.Error(), "header: rom too short (334 bytes)")

	// the low byte of the checksum is missing
	_, err = header.Parse(testGame()[:0x14f])
	test.ExpectSuccess(t, curated.Is(err, header.RomTooShort))

	// nil data is too short
	_, err = header.Parse(nil)
	test.ExpectSuccess(t, curated.Is(err, header.RomTooShort))
}

func TestFields(t *testing.T) {
	d := test.MakeROM(0x8000, "FIELDS", map[int]byte{
		100:   0x12,
		101:   0x34,
		102:   0xab,
		103:   0xcd,
		0x147: 0x1b,
		0x14a: 0x01,
	})

	hdr, err := header.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.EntryPoint, [2]uint16{0x1234, 0xabcd})
	test.ExpectEquality(t, hdr.CartridgeType.Code, 0x1b)
	test.ExpectEquality(t, hdr.CartridgeType.MBC, header.MBC5)
	test.ExpectSuccess(t, hdr.CartridgeType.HasMBC())
	test.ExpectEquality(t, hdr.DestinationCode, header.NonJapanese)
	test.ExpectEquality(t, hdr.TitleString(), "FIELDS")
	test.ExpectEquality(t, hdr.Checksum, header.ComputeChecksum(d))
}

func TestTitle(t *testing.T) {
	// a fifteen character title with the following byte (the CGB flag in
	// later cartridges) set. the flag is not part of the title
	d := test.MakeROM(0, "ABCDEFGHIJKLMNO", map[int]byte{0x143: 0x80})

	hdr, err := header.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title[14], 'O')
	test.ExpectEquality(t, hdr.Title[15], 0x00)
	test.ExpectEquality(t, hdr.TitleString(), "ABCDEFGHIJKLMNO")

	// unprintable characters
	d = test.MakeROM(0, "AB\x01C\xffD", nil)
	hdr, err = header.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.TitleString(), "AB.C.D")

	// the title ends at the first zero
	d = test.MakeROM(0, "AB\x00CD", nil)
	hdr, err = header.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.TitleString(), "AB")
	test.ExpectEquality(t, hdr.Title[3], 'C')
}

func TestParseDoesNotModify(t *testing.T) {
	d := test.MakeROM(0x4000, "IMMUTABLE", map[int]byte{0x147: 0x03})
	c := make([]byte, len(d))
	copy(c, d)

	_, err := header.Parse(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), string(c))
}

// Parse() must never panic, whatever the length or content of the data
func TestArbitraryData(t *testing.T) {
	for n := range 0x400 {
		d := make([]byte, n)
		for i := range d {
			d[i] = byte(rand.IntN(256))
		}

		_, err := header.Parse(d)
		if err != nil {
			test.ExpectSuccess(t, curated.Is(err, header.RomTooShort) || curated.Is(err, header.BadChecksum), n)
		}
	}
}
