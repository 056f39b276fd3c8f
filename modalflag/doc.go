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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to a
// Modes struct. Note that in this example the modes struct is used to parse
// command line arguments but no actual modes are defined:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print all fields")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
// Modes are added with AddSubModes(). The first mode added is the default
// mode, used when the first non-flag argument doesn't name a mode:
//
//	md.AddSubModes("INFO", "SCAN", "VERSION")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "INFO":
//		info(md)
//	case "SCAN":
//		scan(md)
//	}
//
// Each mode function calls NewMode() before adding the flags specific to that
// mode and parsing again. The remaining arguments (the ROM filename or scan
// directory for instance) are retrieved with RemainingArgs() or GetArg().
//
// Help text is generated from the flag definitions and the list of sub-modes
// whenever -help is given. Extra text can be appended with AdditionalHelp().
package modalflag
