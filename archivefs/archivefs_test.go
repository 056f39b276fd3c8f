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

package archivefs_test

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gbheader/archivefs"
	"github.com/jetsetilly/gbheader/test"
)

// creates the following structure in a temporary directory. returns the path
// to testdir
//
//	testdir/
//		testfile
//		subdir/
//		testarchive.zip
//			archivefile1
//			archivefile2
//			archivedir/archivefile3
func makeTestDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testdir")
	test.DemandSuccess(t, os.MkdirAll(filepath.Join(dir, "subdir"), 0o755))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("plain file"), 0o644))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, n := range []string{"archivefile1", "archivefile2", "archivedir/archivefile3"} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		_, err = io.WriteString(w, fmt.Sprintf("contents of %s", n))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := makeTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	// non-existant file
	err := afs.Set(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// entries in a directory. directories and archives first
	entries, err := afs.List()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(entries), 3)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[subdir testarchive.zip testfile]")
	test.ExpectSuccess(t, entries[1].IsArchive)
	test.ExpectSuccess(t, entries[1].IsDir)
	test.ExpectFailure(t, entries[2].IsDir)

	// a real file in directory
	path := filepath.Join(dir, "testfile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())
	test.ExpectEquality(t, afs.Base(), "testfile")
	test.ExpectEquality(t, afs.Dir(), dir)

	// calling List() when path is set to a file the list returned should be
	// of the containing directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 3)

	// a real archive
	path = filepath.Join(dir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// entries in an archive. the archivedir directory is implied by the file
	// inside it
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(entries), 3)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// file in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivefile1")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directory in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivedir")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivefile3]")

	// non-existant file in a real archive
	err = afs.Set(filepath.Join(dir, "testarchive.zip", "foo"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")
	test.ExpectFailure(t, afs.InArchive())

	// a path that continues through a regular file
	err = afs.Set(filepath.Join(dir, "testfile", "foo"))
	test.ExpectFailure(t, err)
}

func TestOpen(t *testing.T) {
	dir := makeTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	err := afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile3"))
	test.DemandSuccess(t, err)

	r, size, err := afs.Open()
	test.DemandSuccess(t, err)
	b, err := io.ReadAll(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "contents of archivedir/archivefile3")
	test.ExpectEquality(t, size, len(b))

	// directories can't be opened
	err = afs.Set(dir)
	test.DemandSuccess(t, err)
	_, _, err = afs.Open()
	test.ExpectFailure(t, err)
}

func TestReadFile(t *testing.T) {
	dir := makeTestDir(t)

	b, err := archivefs.ReadFile(filepath.Join(dir, "testfile"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "plain file")

	b, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivefile2"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "contents of archivefile2")

	_, err = archivefs.ReadFile(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, err)
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, archivefs.IsArchive("roms.zip"))
	test.ExpectSuccess(t, archivefs.IsArchive("ROMS.ZIP"))
	test.ExpectFailure(t, archivefs.IsArchive("tetris.gb"))
	test.ExpectEquality(t, archivefs.TrimArchiveExt("roms.Zip"), "roms")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("tetris.gb"), "tetris.gb")
}
