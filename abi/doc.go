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

// Package abi is a Go statement of the C interface exported by libfceux.
//
// The package contains no cgo. The libfceux package implements the ABI
// interface by calling into the native library and the fceuxtest package
// implements it in plain Go for testing. The fceux package builds the safe
// API on top of whichever implementation it is given.
//
// The execution hook crosses the boundary as a function pointer plus a
// context. On the C side the function pointer is a fixed trampoline and the
// context is the value of a runtime/cgo.Handle. On the Go side the handle
// resolves to a value implementing the Hook interface.
package abi
