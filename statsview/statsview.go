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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress of the stats server used by the SCAN mode.
const DefaultAddress = "localhost:12660"

const url = "/debug/statsview"

// Launch the stats server at address in a new goroutine. The returned function
// shuts the server down and should be called when the scan has finished.
func Launch(output io.Writer, address string) func() {
	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "scan statistics available at http://%s%s until the scan ends\n", address, url)

	return func() {
		mgr.Stop()
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
