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

// Package libfceux is the raw cgo binding to the native libfceux library. The
// Core type implements abi.ABI with one method per C function and nothing
// else. Use the fceux package for the safe API.
//
// The library is linked statically. It expects libfceux_static.a to be found
// on the linker path along with the C++ runtime, minizip and zlib. For a
// library built into a non-standard location:
//
//	CGO_LDFLAGS="-L/path/to/libfceux/build/lib" go build
//
// Building this package requires cgo. Nothing else in the module does.
package libfceux
