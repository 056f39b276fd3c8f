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

package archivefs

import (
	"path/filepath"
	"strings"
)

// list of file extensions for the supported archive types
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchive returns true if the filename has the extension of a supported
// archive type. The contents of the file are not checked.
func IsArchive(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range ArchiveExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimArchiveExt removes the file extension of any supported/recognised archive
// type from the end of the string
func TrimArchiveExt(s string) string {
	if IsArchive(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}
