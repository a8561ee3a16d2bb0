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

package fceux

import (
	"runtime"
	"runtime/cgo"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/logger"
)

// Instance is the live emulation. It is created with New() and must be
// released with Destroy().
type Instance struct {
	core    abi.ABI
	romPath string

	// the hook slot is what the native core sees. the Hook in the slot can
	// change at any time
	slot   *hookSlot
	handle cgo.Handle

	destroy   sync.Once
	destroyed bool

	frameCount int
}

// New creates the Instance by loading the ROM with the native core. The hook
// argument can be nil.
//
// Returns the AlreadyActive error if another instance is live. Does not
// wait for the other instance to be destroyed.
func New(core abi.ABI, romPath string, hook Hook) (*Instance, error) {
	if !acquireToken() {
		return nil, curated.Errorf(AlreadyActive)
	}

	if strings.IndexByte(romPath, 0) >= 0 || !utf8.ValidString(romPath) {
		releaseToken()
		return nil, curated.Errorf(InvalidPath, romPath)
	}

	if !core.Init(romPath).OK() {
		releaseToken()
		return nil, curated.Errorf(InitFailed, romPath)
	}

	ins := &Instance{
		core:    core,
		romPath: romPath,
		slot:    &hookSlot{},
	}
	ins.slot.set(hook)
	ins.handle = cgo.NewHandle(abi.Hook(ins.slot))
	ins.core.HookBeforeExec(ins.handle)
	releaseLeaked()

	// the finalizer will only run if Destroy() was never called and the hook
	// does not refer back to the instance. it runs on the finalizer goroutine
	// and so cannot call Quit(). the leak is logged and the exclusivity token
	// stays held
	runtime.SetFinalizer(ins, func(ins *Instance) {
		logger.Logf(logger.Allow, logTag, "instance for %s was not destroyed", ins.romPath)
	})

	logger.Logf(logger.Allow, logTag, "instance created for %s", romPath)

	return ins, nil
}

// Destroy uninstalls the hook and releases all native state. The instance
// must not be used after Destroy() but it is safe to call Destroy() more than
// once. The exclusivity token is released exactly once.
func (ins *Instance) Destroy() {
	ins.destroy.Do(func() {
		runtime.SetFinalizer(ins, nil)
		releaseLeaked()
		ins.core.HookBeforeExec(0)
		ins.core.Quit()
		ins.handle.Delete()
		ins.destroyed = true
		releaseToken()
		logger.Logf(logger.Allow, logTag, "instance destroyed for %s", ins.romPath)
	})
}

func (ins *Instance) assertLive() {
	if ins.destroyed {
		panic("fceux: use of destroyed instance")
	}
}

// ROMPath returns the path used to create the instance.
func (ins *Instance) ROMPath() string {
	return ins.romPath
}

// Power cycles the emulated console. Equivalent to a hard reset.
func (ins *Instance) Power() {
	ins.assertLive()
	ins.core.Power()
	logger.Log(logger.Allow, logTag, "power")
}

// Reset presses the reset button of the emulated console.
func (ins *Instance) Reset() {
	ins.assertLive()
	ins.core.Reset()
	logger.Log(logger.Allow, logTag, "reset")
}

// RegP returns the current value of the CPU status register.
func (ins *Instance) RegP() RegP {
	ins.assertLive()
	return RegP(ins.core.RegP())
}
