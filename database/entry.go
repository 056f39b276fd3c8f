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

// SerialisedEntry is the Entry data represented as an array of strings.
type SerialisedEntry []string

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string that is used to identify the entry type in
	// the database
	EntryType() string

	// Serialise returns the Entry data as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)

	// CleanUp is called when the entry is deleted from the database
	CleanUp() error

	// String should return information about the entry in a human readable
	// format
	String() string
}

// the deserialiser function is called for every entry in the database with the
// fields that follow the entry type
type deserialiser func(fields SerialisedEntry) (Entry, error)
