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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test but allow the test to
// continue. The Demand*() functions are the same except that a failure is
// fatal. Use Demand*() when the value being tested is needed for further
// tests, for example the length of a slice that is about to be indexed.
//
// ExpectSuccess() and ExpectFailure() interpret the success or failure of a
// value according to its type. It is worth describing how these functions
// handle nil because it is not obvious. The nil type is considered a success.
// This is because of how errors usually work (nil to indicate no error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
//
// MakeROM() creates synthetic cartridge data with a correct global checksum.
// The checksum is calculated independently of the header package so that the
// two implementations can be tested against each other.
package test
