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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/gbheader/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. Each write is
// split into lines and every line after the first is written with a dim pen.
type Colorizer struct {
	out io.Writer
	pen string
}

// NewColorizer is the preferred method if initialisation for the Colorizer
// type. The pen is the name of a colour in the ansi.DimPens table.
func NewColorizer(out io.Writer, pen string) Colorizer {
	return Colorizer{out: out, pen: ansi.DimPens[pen]}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	m, err := c.out.Write([]byte(l[0] + "\n"))
	n += m
	if err != nil || len(l) == 1 {
		return n, err
	}

	m, err = c.out.Write([]byte(c.pen))
	n += m
	if err != nil {
		return n, err
	}

	defer func() {
		_, _ = c.out.Write([]byte(ansi.NormalPen))
	}()

	for _, s := range l[1:] {
		m, err := c.out.Write([]byte(s + "\n"))
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
