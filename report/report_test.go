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

package report_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jetsetilly/gbheader/curated"
	"github.com/jetsetilly/gbheader/header"
	"github.com/jetsetilly/gbheader/report"
	"github.com/jetsetilly/gbheader/test"
)

func parsedEntry(t *testing.T) report.Entry {
	t.Helper()

	rom := test.MakeROM(0x8000, "TESTGAME", map[int]byte{
		0x147: 0x13,
		0x14a: 0x01,
	})
	hdr, err := header.Parse(rom)
	test.DemandSuccess(t, err)

	return report.Entry{
		Name:             "testgame",
		Hash:             "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		Header:           hdr,
		HeaderChecksumOK: header.HeaderChecksumOK(rom),
	}
}

func TestSummary(t *testing.T) {
	e := parsedEntry(t)

	tw := &test.Writer{}
	test.ExpectSuccess(t, report.Summary(tw, e, false))

	expected := "title:       TESTGAME\n" +
		"cartridge:   MBC3 (0x13)\n" +
		"destination: Non-Japanese\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestSummaryVerbose(t *testing.T) {
	e := parsedEntry(t)

	tw := &test.Writer{}
	test.ExpectSuccess(t, report.Summary(tw, e, true))

	s := tw.String()
	test.ExpectSuccess(t, strings.Contains(s, "title:       TESTGAME\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "entry point: 0000 0000\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "sha1:        "+e.Hash+"\n"), s)

	// the header checksum is not set by test.MakeROM()
	test.ExpectSuccess(t, strings.Contains(s, "header sum:  bad\n"), s)
}

func TestSummaryError(t *testing.T) {
	e := report.Entry{
		Name: "short",
		Err:  curated.Errorf(header.RomTooShort, 10),
	}

	tw := &test.Writer{}
	test.ExpectSuccess(t, report.Summary(tw, e, true))
	test.ExpectEquality(t, tw.String(), "short: header: rom too short (10 bytes)\n")
}

func TestRow(t *testing.T) {
	e := parsedEntry(t)

	row := report.Row(e)
	test.ExpectSuccess(t, strings.HasPrefix(row, "testgame "), row)
	test.ExpectSuccess(t, strings.Contains(row, "TESTGAME"), row)
	test.ExpectSuccess(t, strings.HasSuffix(row, "Non-Japanese"), row)
	test.ExpectFailure(t, strings.Contains(row, "\n"), row)

	e.Name = strings.Repeat("x", 40)
	row = report.Row(e)
	test.ExpectSuccess(t, strings.HasPrefix(row, strings.Repeat("x", 23)+"~ "), row)

	// multi-byte names are never cut in the middle of a character
	e.Name = strings.Repeat("ポケモン", 10)
	row = report.Row(e)
	test.ExpectSuccess(t, utf8.ValidString(row), row)
	test.ExpectSuccess(t, strings.HasPrefix(row, string([]rune(e.Name)[:23])+"~ "), row)

	e.Err = errors.New("cannot open")
	row = report.Row(e)
	test.ExpectSuccess(t, strings.HasSuffix(row, "* cannot open"), row)
}

func TestMemviz(t *testing.T) {
	e := parsedEntry(t)

	tw := &test.Writer{}
	report.Memviz(tw, &e.Header)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "digraph"), tw.String())
}
