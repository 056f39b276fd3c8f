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

// Package report renders parsed ROM headers for the command line tool.
//
// Summary() writes the multi-line report used by the INFO mode and Row() the
// single line used by the SCAN mode. Memviz() writes a graphviz rendering of
// the RomHeader structure, which is useful when checking how a header has
// been decoded.
package report
