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

// Package fceux is the safe interface to the native NES emulator core.
//
// The native core supports exactly one live emulation per process. An
// Instance represents exclusive ownership of that emulation and is created
// with New(). Only one Instance can be live at any one time and an attempt to
// create a second fails immediately with the AlreadyActive error. Destroy()
// releases the instance and the native state:
//
//	ins, err := fceux.New(libfceux.Core{}, "smb.nes", nil)
//	if err != nil {
//		return err
//	}
//	defer ins.Destroy()
//
//	ins.RunFrame(fceux.ButtonStart, 0, func(video []uint8, audio []int32) {
//		// video and audio are only valid for the duration of this function
//	})
//
// The first argument to New() is the implementation of the native interface.
// The libfceux package provides the real thing. The fceuxtest package
// provides a plain Go stand-in that is suitable for testing.
//
// Errors returned by the package are curated errors and can be distinguished
// with curated.Is(), using the patterns listed in errors.go.
//
// None of the types in this package are safe for concurrent use. All calls
// for an instance and its snapshots must be made from the same goroutine.
// Use of a destroyed Instance or a destroyed Snapshot is a programming error
// and will panic.
package fceux
