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

package catalogue

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gbheader/database"
	"github.com/jetsetilly/gbheader/logger"
	"github.com/jetsetilly/gbheader/report"
)

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(headerEntryID, deserialiseHeaderEntry)
}

// Add the successfully parsed entries to the catalogue at path. The catalogue
// is created if it doesn't exist. Entries with an error or without a hash, and
// entries with a hash that is already in the catalogue, are skipped.
//
// Returns the number of entries added.
func Add(path string, entries []report.Entry) (int, error) {
	db, err := database.StartSession(path, database.ActivityCreating, initDBSession)
	if err != nil {
		return 0, err
	}

	known := make(map[string]bool)
	_, err = db.SelectAll(func(ent database.Entry) error {
		if h, ok := ent.(*headerEntry); ok {
			known[h.hash] = true
		}
		return nil
	})
	if err != nil {
		db.EndSession(false)
		return 0, err
	}

	var added int
	for _, e := range entries {
		if e.Err != nil || e.Hash == "" || known[e.Hash] {
			continue
		}

		key, err := db.Add(&headerEntry{hash: e.Hash, name: e.Name, header: e.Header})
		if err != nil {
			db.EndSession(false)
			return 0, err
		}
		known[e.Hash] = true
		added++

		logger.Logf(logger.Allow, "catalogue", "added %s as %03d", e.Name, key)
	}

	return added, db.EndSession(added > 0)
}

// List writes the entries in the catalogue at path to output.
func List(path string, output io.Writer) error {
	db, err := database.StartSession(path, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// Delete the entry with the key from the catalogue at path. The deleted entry
// is written to output.
func Delete(path string, key int, output io.Writer) error {
	db, err := database.StartSession(path, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	ent, err := db.Get(key)
	if err != nil {
		db.EndSession(false)
		return err
	}

	err = db.Delete(key)
	if err != nil {
		db.EndSession(false)
		return err
	}

	logger.Logf(logger.Allow, "catalogue", "deleted %03d", key)
	fmt.Fprintf(output, "deleted %03d %s\n", key, ent)

	return db.EndSession(true)
}
