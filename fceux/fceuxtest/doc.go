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

// Package fceuxtest is a plain Go implementation of abi.ABI that stands in
// for the native core when testing. It is not an emulator. It understands
// enough of an iNES file to map the PRG ROM into the CPU address space and
// runs a fixed, predictable "program" for every frame:
//
//	on the first frame after power or reset the hook is called with the
//	address found in the RESET vector
//
//	on every frame the hook is called with the address in the NMI vector
//
//	RAM address $0000 is incremented once per frame and the controller
//	states are stored at $0001 and $0002
//
//	the video buffer is filled with a pattern that changes every frame
//
//	the audio buffer has freq/60 samples
//
// The exported counters record how the core has been driven and are useful
// for testing the lifecycle of the fceux package.
//
// The ROM() and WriteROM() functions create suitable iNES files.
package fceuxtest
