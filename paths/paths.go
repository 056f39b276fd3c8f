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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gbheader/curated"
)

// the base path for all resources if it exists in the current directory
const localResourcePath = ".gbheader"

// the name of the resource directory in the user's configuration directory
const configResourcePath = "gbheader"

// ResourcePath returns the path to the file in the sub-path of the resource
// directory. Either subPth or file can be empty.
//
// The sub-path is created if it doesn't exist. The file is not created.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	var pth string

	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		pth = filepath.Join(localResourcePath, subPth)
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, configResourcePath, subPth)
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
