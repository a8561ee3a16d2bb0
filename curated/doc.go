// This file is part of Gofceux.
//
// Gofceux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gofceux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gofceux.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as fmt.Errorf() but the pattern is
// remembered and can be tested for later:
//
//	e := curated.Errorf("snapshot: load failed")
//
//	if curated.Is(e, "snapshot: load failed") {
//		fmt.Println("true")
//	}
//
// Sentinel errors are therefore stored as const strings and compared with the
// Is() function. The fceux package lists its error taxonomy this way.
//
// The Has() function checks whether the pattern occurs anywhere in a chain of
// curated errors:
//
//	e := curated.Errorf("fceux: init failed: %s", path)
//	f := curated.Errorf("play: %v", e)
//
//	curated.Has(f, "fceux: init failed: %s") // true
//	curated.Is(f, "fceux: init failed: %s")  // false
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. Parts are separated by ": " as suggested on p239 of "The
// Go Programming Language" (Donovan, Kernighan). Wrapping an error with the
// same prefix more than once therefore does not produce a stuttering
// message:
//
//	play: play: rom not found
//
// is printed as:
//
//	play: rom not found
//
// Curated errors also implement Unwrap() so the first error value in the
// placeholder list is visible to errors.Is() and errors.As().
package curated
