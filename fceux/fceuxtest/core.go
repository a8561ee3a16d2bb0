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

package fceuxtest

import (
	"os"
	"runtime/cgo"
	"unsafe"

	"github.com/gofceux/gofceux/abi"
)

// DefaultFrequency is the audio frequency after Init().
const DefaultFrequency = 44100

// List of frequencies accepted by SoundSetFreq().
var Frequencies = []int32{11025, 22050, 44100, 48000, 96000}

const (
	ramSize     = 0x0800
	ramMirror   = 0x2000
	prgOrigin   = 0x8000
	prgBankSize = 0x4000
)

// Frames per second of the stand-in core. Used to calculate the number of
// audio samples per frame.
const FramesPerSecond = 60

// Core implements the abi.ABI interface.
type Core struct {
	// number of calls to Init() and Quit()
	InitCalls int
	QuitCalls int

	// number of times a hook has been installed and uninstalled
	HookInstalls   int
	HookUninstalls int

	// number of snapshots created and not destroyed
	SnapshotsLive int

	// the next call to SnapshotCreate() will return nil
	FailSnapshotCreate bool

	// calls to SnapshotSave() will fail
	FailSnapshotSave bool

	initialised bool

	prg []uint8
	ram [ramSize]uint8

	regP         uint8
	pendingReset bool
	frame        int

	freq  int32
	video [abi.ScreenWidth * abi.ScreenHeight]uint8
	audio []int32

	hook cgo.Handle
}

// NewCore returns a Core that has not been initialised.
func NewCore() *Core {
	return &Core{}
}

// snapshot is the value pointed to by an abi.Snapshot.
type snapshot struct {
	saved bool

	ram          [ramSize]uint8
	regP         uint8
	pendingReset bool
	frame        int
}

func (c *Core) assertInitialised() {
	if !c.initialised {
		panic("fceuxtest: core not initialised")
	}
}

// Init implements the abi.ABI interface.
func (c *Core) Init(romPath string) abi.Status {
	c.InitCalls++

	data, err := os.ReadFile(romPath)
	if err != nil {
		return 0
	}

	prg, err := parseINES(data)
	if err != nil {
		return 0
	}

	c.prg = prg
	c.freq = DefaultFrequency
	c.initialised = true
	c.Power()

	return 1
}

// Quit implements the abi.ABI interface.
func (c *Core) Quit() {
	c.QuitCalls++
	c.initialised = false
	c.prg = nil
}

// Power implements the abi.ABI interface.
func (c *Core) Power() {
	c.assertInitialised()
	clear(c.ram[:])
	c.regP = 0x24
	c.pendingReset = true
	c.frame = 0
}

// Reset implements the abi.ABI interface.
func (c *Core) Reset() {
	c.assertInitialised()
	c.regP |= 0x04
	c.pendingReset = true
}

// RunFrame implements the abi.ABI interface.
func (c *Core) RunFrame(joy1 uint8, joy2 uint8) ([]uint8, []int32) {
	c.assertInitialised()

	if c.pendingReset {
		c.pendingReset = false
		c.exec(c.vector(0xfffc))
	}
	c.exec(c.vector(0xfffa))

	c.frame++
	c.ram[0]++
	c.ram[1] = joy1
	c.ram[2] = joy2

	// the zero flag follows the frame counter in RAM
	if c.ram[0] == 0 {
		c.regP |= 0x02
	} else {
		c.regP &^= 0x02
	}

	for i := range c.video {
		c.video[i] = uint8((i/abi.ScreenWidth + c.frame) & 0x3f)
	}

	n := int(c.freq) / FramesPerSecond
	c.audio = c.audio[:0]
	for i := 0; i < n; i++ {
		c.audio = append(c.audio, int32((i+c.frame)%256-128)*128)
	}

	return c.video[:], c.audio
}

func (c *Core) vector(addr uint16) uint16 {
	return uint16(c.MemRead(addr+1, abi.MemoryCPU))<<8 | uint16(c.MemRead(addr, abi.MemoryCPU))
}

func (c *Core) exec(addr uint16) {
	if c.hook == 0 {
		return
	}
	if h, ok := c.hook.Value().(abi.Hook); ok {
		h.BeforeExec(addr)
	}
}

// RegP implements the abi.ABI interface.
func (c *Core) RegP() uint8 {
	c.assertInitialised()
	return c.regP
}

// MemRead implements the abi.ABI interface. Addresses that are neither RAM nor
// PRG ROM return the high byte of the address.
func (c *Core) MemRead(addr uint16, domain abi.Domain) uint8 {
	c.assertInitialised()
	if domain != abi.MemoryCPU {
		return 0
	}
	switch {
	case addr < ramMirror:
		return c.ram[addr%ramSize]
	case addr >= prgOrigin:
		return c.prg[int(addr-prgOrigin)%len(c.prg)]
	}
	return uint8(addr >> 8)
}

// MemWrite implements the abi.ABI interface. Only writes to RAM have any
// effect.
func (c *Core) MemWrite(addr uint16, value uint8, domain abi.Domain) {
	c.assertInitialised()
	if domain != abi.MemoryCPU {
		return
	}
	if addr < ramMirror {
		c.ram[addr%ramSize] = value
	}
}

// SnapshotCreate implements the abi.ABI interface.
func (c *Core) SnapshotCreate() abi.Snapshot {
	if c.FailSnapshotCreate {
		c.FailSnapshotCreate = false
		return nil
	}
	c.SnapshotsLive++
	return abi.Snapshot(unsafe.Pointer(&snapshot{}))
}

// SnapshotDestroy implements the abi.ABI interface.
func (c *Core) SnapshotDestroy(snap abi.Snapshot) {
	if snap != nil {
		c.SnapshotsLive--
	}
}

// SnapshotSave implements the abi.ABI interface.
func (c *Core) SnapshotSave(snap abi.Snapshot) abi.Status {
	c.assertInitialised()
	if c.FailSnapshotSave {
		return 0
	}
	s := (*snapshot)(unsafe.Pointer(snap))
	s.saved = true
	s.ram = c.ram
	s.regP = c.regP
	s.pendingReset = c.pendingReset
	s.frame = c.frame
	return 1
}

// SnapshotLoad implements the abi.ABI interface. Loading a snapshot that has
// never been saved fails.
func (c *Core) SnapshotLoad(snap abi.Snapshot) abi.Status {
	c.assertInitialised()
	s := (*snapshot)(unsafe.Pointer(snap))
	if !s.saved {
		return 0
	}
	c.ram = s.ram
	c.regP = s.regP
	c.pendingReset = s.pendingReset
	c.frame = s.frame
	return 1
}

// HookBeforeExec implements the abi.ABI interface.
func (c *Core) HookBeforeExec(userdata cgo.Handle) {
	if userdata == 0 {
		c.HookUninstalls++
	} else {
		c.HookInstalls++
	}
	c.hook = userdata
}

// VideoGetPalette implements the abi.ABI interface.
func (c *Core) VideoGetPalette(idx uint8) (uint8, uint8, uint8) {
	e := palette[idx&0x3f]
	return e[0], e[1], e[2]
}

// SoundSetFreq implements the abi.ABI interface.
func (c *Core) SoundSetFreq(freq int32) abi.Status {
	c.assertInitialised()
	for _, f := range Frequencies {
		if f == freq {
			c.freq = freq
			return 1
		}
	}
	return 0
}

// Frequency returns the current audio frequency.
func (c *Core) Frequency() int {
	return int(c.freq)
}

// HookInstalled returns true if a hook is currently installed.
func (c *Core) HookInstalled() bool {
	return c.hook != 0
}
