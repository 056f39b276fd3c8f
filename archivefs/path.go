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
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Node represents a single entry in a directory or archive
type Node struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has IsArchive set to true. note that an
	// archive file is also considered to be directory
	IsArchive bool
}

func (n Node) String() string {
	return n.Name
}

// Path represents a single destination in the file system
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, inZip is the slash separated path of
	// the file inside the archive. it will be empty if the path is the root
	// of the archive
	inZip string
}

// String returns the current path
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns all but the last element of path. If the path is a directory
// then the path is returned unchanged
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Set the path. Any previous path is closed first. The path can pass through
// a supported archive file, in which case the remainder of the path refers to
// the contents of the archive.
func (afs *Path) Set(filename string) error {
	afs.Close()

	// clean path and split into parts
	filename = filepath.Clean(filename)
	lst := strings.Split(filename, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string
	var inZip []string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			inZip = append(inZip, l)
			fi, err := fs.Stat(afs.zf, path.Join(inZip...))
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}
			afs.isDir = fi.IsDir()
			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		zf, err := zip.OpenReader(current)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.zf = zf
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}
	}

	afs.current = current
	afs.inZip = path.Join(inZip...)

	return nil
}

// Open and return an io.ReadSeeker for the filename previously set by the Set()
// function. If the returned io.ReadSeeker also implements io.Closer then it
// should be closed by the caller.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(afs.inZip)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing directory
// of that file.
//
// Directories are listed first. Entries are otherwise sorted alphabetically
// without regard to case.
func (afs Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		dir := afs.inZip
		if !afs.isDir {
			dir = path.Dir(dir)
		}
		if dir == "" {
			dir = "."
		}

		lst, err := fs.ReadDir(afs.zf, dir)
		if err != nil {
			return []Node{}, fmt.Errorf("archivefs: list: %w", err)
		}

		for _, e := range lst {
			ent = append(ent, Node{
				Name:  e.Name(),
				IsDir: e.IsDir(),
			})
		}
	} else {
		dir := afs.Dir()

		lst, err := os.ReadDir(dir)
		if err != nil {
			return []Node{}, fmt.Errorf("archivefs: list: %w", err)
		}

		for _, e := range lst {
			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			fi, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}

			switch {
			case fi.IsDir():
				ent = append(ent, Node{Name: e.Name(), IsDir: true})
			case IsArchive(e.Name()):
				ent = append(ent, Node{Name: e.Name(), IsDir: true, IsArchive: true})
			default:
				ent = append(ent, Node{Name: e.Name()})
			}
		}
	}

	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}
