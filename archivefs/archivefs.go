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

// Package archivefs allows paths to pass through archive files as though they
// were directories. For example, the following path refers to a file inside
// the zip file "roms.zip":
//
//	collection/roms.zip/japan/tetris.gb
//
// Only zip archives are supported.
package archivefs

import (
	"fmt"
	"io"
)

// ReadFile returns the contents of the named file. The filename can be inside
// an archive supported by archivefs.
func ReadFile(filename string) ([]byte, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}
	defer afs.Close()

	r, size, err := afs.Open()
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	data := make([]byte, size)
	_, err = io.ReadFull(r, data)
	if err != nil {
		return nil, fmt.Errorf("archivefs: read: %w", err)
	}

	return data, nil
}
