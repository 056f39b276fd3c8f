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

package database

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gbheader/curated"
)

// Activity is used to specify the type of activity that will be performed
// during the database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying

	// ActivityCreating implies ActivityModifying
	ActivityCreating
)

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession starts/initialises a new database session. The init function
// is called once the database has been opened and before any entries are
// read.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	db.dbfile, err = os.OpenFile(path, flags, 0o600)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	err = init(db)
	if err != nil {
		db.dbfile.Close()
		return nil, curated.Errorf("database: %v", err)
	}

	err = db.readDBFile()
	if err != nil {
		db.dbfile.Close()
		return nil, curated.Errorf("database: %v", err)
	}

	return db, nil
}

// EndSession closes the database. Changes are written to disk if commitChanges
// is true and the session activity allows it.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return nil
	}

	defer func() {
		db.dbfile.Close()
		db.dbfile = nil
	}()

	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	err := db.dbfile.Truncate(0)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	_, err = db.dbfile.Seek(0, io.SeekStart)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		s := strings.Builder{}
		s.WriteString(recordHeader(key, ent.EntryType()))
		for _, f := range ser {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)

		_, err = db.dbfile.WriteString(s.String())
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	return nil
}

// RegisterEntryType tells the database what entries it may expect in the
// database and what to do when it encounters one.
func (db *Session) RegisterEntryType(id string, des deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("trying to register a duplicate entry ID (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}

func (db *Session) readDBFile() error {
	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return err
	}

	lines := strings.Split(string(buffer), entrySep)

	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) == 0 {
			continue
		}

		fields := strings.Split(l, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("malformed entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("duplicate key (%d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("unrecognised entry type (%s) at line %d", fields[leaderFieldID], i+1)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("line %d: %v", i+1, err)
		}

		db.entries[key] = ent
	}

	return nil
}

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}
