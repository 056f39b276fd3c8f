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

// Package statsview is an optional package that is only fully built when the
// statsview build constraint is present.
//
// It provides a HTTP server running locally offering runtime statistics. This
// is useful for watching the memory use of the SCAN mode when processing a
// large collection of ROMs. Underlying functionality is provided by
// "github.com/go-echarts/statsview".
//
// The server runs only for the duration of the scan. With the default address,
// graphical statistics will be viewable at:
//
//	localhost:12660/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12660/debug/pprof/
//
// The address can be changed with the -statsviewaddr flag of the SCAN mode.
//
// Without the build constraint, Available() returns false and Launch() does
// nothing.
package statsview
