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

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
)

// Snapshot is a save-state buffer owned by the native core. It belongs to
// whoever created it, not to the Instance, and must be released with
// Destroy().
type Snapshot struct {
	ins       *Instance
	handle    abi.Snapshot
	destroyed bool
}

// NewSnapshot allocates an empty snapshot. The snapshot contains nothing
// until Save() is called.
//
// Failure of the native core to allocate the snapshot is not recoverable and
// will panic.
func (ins *Instance) NewSnapshot() *Snapshot {
	ins.assertLive()
	releaseLeaked()

	h := ins.core.SnapshotCreate()
	if h == nil {
		panic("fceux: out of memory")
	}

	snap := &Snapshot{
		ins:    ins,
		handle: h,
	}
	runtime.SetFinalizer(snap, func(snap *Snapshot) {
		queueLeaked(snap.ins.core, snap.handle)
	})

	return snap
}

func (snap *Snapshot) assertLive() {
	if snap.destroyed {
		panic("fceux: use of destroyed snapshot")
	}
	snap.ins.assertLive()
}

// Save captures the current emulation state, overwriting anything previously
// saved in the snapshot.
func (snap *Snapshot) Save() error {
	snap.assertLive()
	if !snap.ins.core.SnapshotSave(snap.handle).OK() {
		return curated.Errorf(SaveFailed)
	}
	return nil
}

// Load restores the emulation state from the snapshot. On failure the
// emulation state is unchanged.
func (snap *Snapshot) Load() error {
	snap.assertLive()
	if !snap.ins.core.SnapshotLoad(snap.handle).OK() {
		return curated.Errorf(LoadFailed)
	}
	return nil
}

// Destroy releases the native buffer. The snapshot must not be used after
// Destroy() but it is safe to call Destroy() more than once.
func (snap *Snapshot) Destroy() {
	if snap.destroyed {
		return
	}
	snap.ins.core.SnapshotDestroy(snap.handle)
	snap.handle = nil
	snap.destroyed = true
	runtime.SetFinalizer(snap, nil)
}
