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

package cartridgeloader

import (
	"path/filepath"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".GB", ".GBC", ".SGB", ".CGB", ".BIN", ".ROM"}

// IsROMFile returns true if the filename has one of the extensions in the
// FileExtensions list. Comparison is case insensitive.
func IsROMFile(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
