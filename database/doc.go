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

// Package database is a very simple way of storing structured and arbitrary
// entry types. It's as simple as simple can be but is still useful in helping
// to organise what is essentially a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first agument is the path to the database file on the local disk. The
// second argument is a description of the type of activity that will be
// happening during the session. In this instance, we are saying that the
// database will be created if it does not already exist. If we don't want to
// modify the database at all, then we can use ActivityReading.
//
// The third argument is the database initialisation function. The
// initialisation function registers the entry types that might be found in
// the database:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("header", deserialiseHeaderEntry)
//	}
//
// The deserialise function takes an array of strings as it's only argument and
// returns a new database.Entry and any errors. Database entries are
// deserialised as part of the StartSession() function. Any errors created by
// the deserialiser function cause the StartSession() to fail.
//
// On disk, each entry is a single line. The line begins with the key and the
// entry type, followed by the fields returned by the Serialise() function of
// the entry. Fields are separated by commas.
package database
