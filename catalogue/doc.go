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

// Package catalogue keeps a record of parsed ROM headers in a database file.
// Entries are keyed by the SHA1 hash of the ROM data so a ROM that has
// already been catalogued is not added again, even if it has been renamed.
//
// The SCAN mode of the command line tool adds to the catalogue with the
// -catalogue flag. The CATALOGUE mode lists the catalogue and can delete
// entries from it.
package catalogue
