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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package's default usage function
// so that it can be reformatted with the sub-mode information before being
// written to the real output.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

// Help writes the collected usage text to output. The first line of the flag
// package's output is replaced with a banner naming the mode path.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := string(hw.buffer)

	// the flag package prints just "Usage:" when there are no flags
	if s == "Usage:\n" && len(subModes) == 0 && additionalHelp == "" {
		fmt.Fprintln(output, "No help available")
		return
	}

	lines := strings.Split(s, "\n")

	if banner == "" {
		fmt.Fprintln(output, lines[0])
	} else {
		fmt.Fprintf(output, "Usage of %s mode:\n", banner)
	}

	if len(lines) > 1 {
		fmt.Fprint(output, strings.Join(lines[1:], "\n"))
	}

	if len(subModes) > 0 {
		// separate flag descriptions from the sub-mode list
		if len(lines) > 2 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, additionalHelp)
	}
}
