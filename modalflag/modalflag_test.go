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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gbheader/modalflag"
	"github.com/jetsetilly/gbheader/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-verbose", "tetris.gb", "zelda.gb"})
	verbose := md.AddBool("verbose", false, "print all fields")

	test.ExpectFailure(t, *verbose)
	test.ExpectFailure(t, md.Parsed())

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")

	test.ExpectSuccess(t, *verbose)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "tetris.gb")
	test.ExpectEquality(t, md.GetArg(1), "zelda.gb")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"tetris.gb"})
	md.AddSubModes("info", "scan", "version")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INFO")

	md.NewMode()
	verbose := md.AddBool("verbose", false, "print all fields")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, *verbose)
	test.ExpectEquality(t, md.GetArg(0), "tetris.gb")
}

func TestSelectedMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"scan", "-workers", "2", "roms.zip"})
	md.AddSubModes("INFO", "SCAN", "VERSION")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SCAN")
	test.ExpectEquality(t, md.Path(), "SCAN")
	test.ExpectEquality(t, md.String(), "SCAN")

	md.NewMode()
	workers := md.AddInt("workers", 4, "number of workers")
	hash := md.AddString("hash", "", "expected hash")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *workers, 2)
	test.ExpectEquality(t, *hash, "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "roms.zip")

	// the mode path is never reset by NewMode()
	test.ExpectEquality(t, md.Mode(), "SCAN")
}

// an argument with the same name as the selected mode is not a mode
func TestArgumentNamedAfterMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"SCAN", "-recurse", "Scan"})
	md.AddSubModes("INFO", "SCAN", "VERSION")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SCAN")

	md.NewMode()
	recurse := md.AddBool("recurse", false, "scan sub-directories")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, *recurse)
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "Scan")
}

func TestVisit(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-log", "-hash", "abc", "tetris.gb"})
	md.AddBool("log", false, "echo log")
	md.AddBool("verbose", false, "print all fields")
	md.AddString("hash", "", "expected hash")

	_, err := md.Parse()
	test.DemandSuccess(t, err)

	var visited []string
	md.Visit(func(flag string) {
		visited = append(visited, flag)
	})
	test.DemandEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "hash")
	test.ExpectEquality(t, visited[1], "log")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpSubMode(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"info", "-help"})
	md.AddSubModes("INFO", "SCAN")

	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddBool("verbose", false, "print all fields")
	md.AdditionalHelp("Prints the header of a Game Boy ROM.")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage of INFO mode:\n" +
		"  -verbose\n" +
		"    \tprint all fields\n" +
		"\n" +
		"Prints the header of a Game Boy ROM.\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}
