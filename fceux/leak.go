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
	"sync"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/logger"
)

// snapshots that were garbage collected without being destroyed. finalizers
// run on their own goroutine and the native core is single-threaded, so the
// finalizer only queues the buffer. the queue is emptied by the next call into
// the instance from the owning goroutine.
var leaked struct {
	crit  sync.Mutex
	snaps []leakedSnapshot
}

type leakedSnapshot struct {
	core   abi.ABI
	handle abi.Snapshot
}

// called from the finalizer goroutine. must not call into the native core.
func queueLeaked(core abi.ABI, handle abi.Snapshot) {
	leaked.crit.Lock()
	defer leaked.crit.Unlock()
	leaked.snaps = append(leaked.snaps, leakedSnapshot{core: core, handle: handle})
	logger.Log(logger.Allow, logTag, "snapshot was not destroyed")
}

// must only be called from the goroutine that owns the instance.
func releaseLeaked() {
	leaked.crit.Lock()
	snaps := leaked.snaps
	leaked.snaps = nil
	leaked.crit.Unlock()

	for _, s := range snaps {
		s.core.SnapshotDestroy(s.handle)
	}
	if len(snaps) > 0 {
		logger.Logf(logger.Allow, logTag, "released %d leaked snapshots", len(snaps))
	}
}
