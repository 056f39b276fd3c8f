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

//go:build linux || darwin

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It answers
// whether an output file is an interactive terminal, which decides whether the
// command line tool should use ANSI colour codes.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// IsTerminal returns true if the file is connected to a terminal. Files that
// are redirected to a regular file or a pipe do not have terminal attributes.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}
