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

package libfceux

/*
#cgo LDFLAGS: -lfceux_static -lstdc++ -lminizip -lz

#include <stdint.h>
#include <stdlib.h>

typedef unsigned int FceuxMemoryDomain;

typedef struct Snapshot Snapshot;

typedef void (*FceuxHookBeforeExec)(void *userdata, uint16_t addr);

int fceux_init(const char *path_rom);
void fceux_quit(void);

void fceux_power(void);
void fceux_reset(void);

void fceux_run_frame(uint8_t joy1, uint8_t joy2, uint8_t **xbuf, int32_t **soundbuf, int32_t *soundbuf_size);

uint8_t fceux_reg_p(void);

uint8_t fceux_mem_read(uint16_t addr, FceuxMemoryDomain domain);
void fceux_mem_write(uint16_t addr, uint8_t value, FceuxMemoryDomain domain);

Snapshot *fceux_snapshot_create(void);
void fceux_snapshot_destroy(Snapshot *snap);
int fceux_snapshot_load(Snapshot *snap);
int fceux_snapshot_save(Snapshot *snap);

void fceux_hook_before_exec(FceuxHookBeforeExec hook, void *userdata);

void fceux_video_get_palette(uint8_t idx, uint8_t *r, uint8_t *g, uint8_t *b);

int fceux_sound_set_freq(int freq);

// defined in hook.go
extern void goHookBeforeExec(uintptr_t userdata, uint16_t addr);

static void gofceux_hook_trampoline(void *userdata, uint16_t addr) {
	goHookBeforeExec((uintptr_t)userdata, addr);
}

static void gofceux_hook_install(uintptr_t userdata) {
	if (userdata == 0) {
		fceux_hook_before_exec(NULL, NULL);
		return;
	}
	fceux_hook_before_exec(gofceux_hook_trampoline, (void *)userdata);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/gofceux/gofceux/abi"
)

// Core implements the abi.ABI interface by calling directly into libfceux.
// It has no state. All state belongs to the native library.
type Core struct{}

var _ abi.ABI = Core{}

// Init implements the abi.ABI interface.
func (Core) Init(romPath string) abi.Status {
	p := C.CString(romPath)
	defer C.free(unsafe.Pointer(p))
	return abi.Status(C.fceux_init(p))
}

// Quit implements the abi.ABI interface.
func (Core) Quit() {
	C.fceux_quit()
}

// Power implements the abi.ABI interface.
func (Core) Power() {
	C.fceux_power()
}

// Reset implements the abi.ABI interface.
func (Core) Reset() {
	C.fceux_reset()
}

// RunFrame implements the abi.ABI interface. The returned slices point into
// memory owned by libfceux.
func (Core) RunFrame(joy1 uint8, joy2 uint8) ([]uint8, []int32) {
	var xbuf *C.uint8_t
	var soundbuf *C.int32_t
	var soundbufSize C.int32_t

	C.fceux_run_frame(C.uint8_t(joy1), C.uint8_t(joy2), &xbuf, &soundbuf, &soundbufSize)

	video := unsafe.Slice((*uint8)(unsafe.Pointer(xbuf)), abi.ScreenWidth*abi.ScreenHeight)

	var audio []int32
	if soundbuf != nil && soundbufSize > 0 {
		audio = unsafe.Slice((*int32)(unsafe.Pointer(soundbuf)), int(soundbufSize))
	}

	return video, audio
}

// RegP implements the abi.ABI interface.
func (Core) RegP() uint8 {
	return uint8(C.fceux_reg_p())
}

// MemRead implements the abi.ABI interface.
func (Core) MemRead(addr uint16, domain abi.Domain) uint8 {
	return uint8(C.fceux_mem_read(C.uint16_t(addr), C.FceuxMemoryDomain(domain)))
}

// MemWrite implements the abi.ABI interface.
func (Core) MemWrite(addr uint16, value uint8, domain abi.Domain) {
	C.fceux_mem_write(C.uint16_t(addr), C.uint8_t(value), C.FceuxMemoryDomain(domain))
}

// SnapshotCreate implements the abi.ABI interface.
func (Core) SnapshotCreate() abi.Snapshot {
	return abi.Snapshot(unsafe.Pointer(C.fceux_snapshot_create()))
}

// SnapshotDestroy implements the abi.ABI interface.
func (Core) SnapshotDestroy(snap abi.Snapshot) {
	C.fceux_snapshot_destroy((*C.Snapshot)(unsafe.Pointer(snap)))
}

// SnapshotLoad implements the abi.ABI interface.
func (Core) SnapshotLoad(snap abi.Snapshot) abi.Status {
	return abi.Status(C.fceux_snapshot_load((*C.Snapshot)(unsafe.Pointer(snap))))
}

// SnapshotSave implements the abi.ABI interface.
func (Core) SnapshotSave(snap abi.Snapshot) abi.Status {
	return abi.Status(C.fceux_snapshot_save((*C.Snapshot)(unsafe.Pointer(snap))))
}

// HookBeforeExec implements the abi.ABI interface.
func (Core) HookBeforeExec(userdata cgo.Handle) {
	C.gofceux_hook_install(C.uintptr_t(userdata))
}

// VideoGetPalette implements the abi.ABI interface.
func (Core) VideoGetPalette(idx uint8) (uint8, uint8, uint8) {
	var r, g, b C.uint8_t
	C.fceux_video_get_palette(C.uint8_t(idx), &r, &g, &b)
	return uint8(r), uint8(g), uint8(b)
}

// SoundSetFreq implements the abi.ABI interface.
func (Core) SoundSetFreq(freq int32) abi.Status {
	return abi.Status(C.fceux_sound_set_freq(C.int(freq)))
}
