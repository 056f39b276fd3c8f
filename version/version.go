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

// Package version reports the version of the application. The version number
// is set at link time by the makefile. Otherwise the version is derived from
// the VCS information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "gbheader"

// if number is empty then the project was not built using the makefile
var number string

// revision contains the vcs revision. If the source has been modified but has
// not been committed then the revision string will be suffixed with "+dirty"
var revision string

// version is "unreleased" if the project has been built without the makefile
// and "local" if there is no version number and no vcs information. this can
// happen when running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns a single line suitable for the VERSION mode of the command
// line tool.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number)
}

// fromBuildInfo decides on the version and revision strings given the version
// number set at link time
func fromBuildInfo(num string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if num != "" {
		return num, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
