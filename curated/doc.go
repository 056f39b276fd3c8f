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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("header: rom too short (%d bytes)", 10)
//
//	if curated.Is(e, "header: rom too short (%d bytes)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("cartridgeloader: %v", e)
//
//	if curated.Has(f, "header: rom too short (%d bytes)") {
//		fmt.Println("true")
//	}
//
// Note that in this example, Is(f, ...) would return false because error f
// was created with the pattern "cartridgeloader: %v".
//
// Patterns used in this way are sentinels. Sentinel patterns should be stored
// as an exported const string, suitably named and commented, in the package
// that creates the error. For example, the RomTooShort and BadChecksum
// patterns in the header package.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'. We can think of the difference as
// being 'expected' and 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors. For example, if A()
// and B() both wrap errors with the pattern "load: %v" then the message will
// be:
//
//	load: file not found
//
// and not:
//
//	load: load: file not found
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ": " as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Any error values used to create a curated error are returned by the
// Unwrap() function. This means that errors.Is() from the standard library
// will find, for example, fs.ErrNotExist inside a curated error.
package curated
