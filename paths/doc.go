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

// Package paths contains functions to prepare paths to gbheader resources.
//
// The ResourcePath() function returns the path to a resource in the
// appropriate config directory. For example, the following returns the path to
// the default catalogue file:
//
//	pth, err := paths.ResourcePath("", "catalogue")
//
// The policy of ResourcePath() is simple: if the base resource path, ".gbheader",
// is present in the program's current directory then that is the base path
// that will used. If it is not present then the "gbheader" directory in the
// user's configuration directory is used. The configuration directory is
// created if required.
//
// UniqueFilename() creates filenames for output files that should not collide
// with existing files.
package paths
