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

// Package prefs facilitates the storage of preferential values in the
// Gofceux system. It is intended for user preferences rather than
// application state.
//
// Values are stored in the prefs types (Bool, Int, String) and added to a
// Disk with a unique key:
//
//	dsk, _ := prefs.NewDisk(pth)
//
//	var scale prefs.Int
//	dsk.Add("play.scale", &scale)
//
//	dsk.Load(true)
//
// The preferences file is a plain text file with one key/value pair per line,
// separated by KeySep. The first line is WarningBoilerPlate. Keys that are
// not added to a Disk are preserved when the Disk is saved, so more than one
// Disk can share the same file.
//
// Values can also be specified on the command line. PushCommandLineStack()
// parses a string of the form "key::value; key::value". Values in the top
// group of the stack take precedence over values loaded from disk and are
// applied the next time a Disk with that key is loaded.
package prefs
