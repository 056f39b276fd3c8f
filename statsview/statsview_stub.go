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

//go:build !statsview

package statsview

import "io"

// DefaultAddress of the stats server used by the SCAN mode.
const DefaultAddress = "localhost:12660"

// Launch does nothing unless the statsview build constraint is present. The
// returned function is safe to call.
func Launch(_ io.Writer, _ string) func() {
	return func() {}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
