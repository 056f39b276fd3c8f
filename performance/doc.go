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

// Package performance contains helper functions for profiling the command
// line tool. The SCAN mode uses them when the -profile flag is given:
//
//	err := performance.ProfileCPU("scan.cpu.profile", func() error {
//		return scanCollection(...)
//	})
//	if err != nil {
//		return err
//	}
//	err = performance.ProfileMem("scan.mem.profile")
//
// The resulting files can be examined with "go tool pprof".
package performance
