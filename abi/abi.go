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

package abi

import (
	"runtime/cgo"
	"unsafe"
)

// Dimensions of the pixel buffer produced by every frame. One byte per pixel,
// each byte being an index into the palette.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// Status is the integer status code returned by those native functions that
// can fail. Zero always means failure.
type Status int32

// OK returns true if the status indicates success.
func (s Status) OK() bool {
	return s != 0
}

// Domain is the memory domain tag passed to the memory functions.
type Domain uint32

// List of valid Domain values. The CPU address space is the only domain
// defined by the native core.
const (
	MemoryCPU Domain = 0
)

// Snapshot is the opaque save-state handle allocated by the native core. A
// nil Snapshot indicates allocation failure.
type Snapshot unsafe.Pointer

// Hook is the capability the native core calls into immediately before it
// executes the instruction at addr.
type Hook interface {
	BeforeExec(addr uint16)
}

// ABI mirrors the C functions exported by the native core. Implementations
// have no behaviour of their own beyond argument conversion.
//
// The video and audio slices returned by RunFrame are owned by the
// implementation and are only valid until the next call to RunFrame.
type ABI interface {
	Init(romPath string) Status
	Quit()

	Power()
	Reset()

	RunFrame(joy1 uint8, joy2 uint8) (video []uint8, audio []int32)

	RegP() uint8

	MemRead(addr uint16, domain Domain) uint8
	MemWrite(addr uint16, value uint8, domain Domain)

	SnapshotCreate() Snapshot
	SnapshotDestroy(snap Snapshot)
	SnapshotLoad(snap Snapshot) Status
	SnapshotSave(snap Snapshot) Status

	// HookBeforeExec registers the handle as the context of the native
	// pre-execution hook. The handle's value must implement the Hook
	// interface. A zero handle uninstalls the hook.
	HookBeforeExec(userdata cgo.Handle)

	VideoGetPalette(idx uint8) (r uint8, g uint8, b uint8)

	SoundSetFreq(freq int32) Status
}
