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

package fceux_test

import (
	"bytes"
	"runtime"
	"runtime/cgo"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/fceux/fceuxtest"
	"github.com/gofceux/gofceux/logger"
	"github.com/gofceux/gofceux/test"
)

func goroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}

// ownedCore records calls into the core that are made from any goroutine
// other than the one that created it
type ownedCore struct {
	*fceuxtest.Core
	owner uint64

	crit    sync.Mutex
	foreign []string
}

func newOwnedCore() *ownedCore {
	return &ownedCore{
		Core:  fceuxtest.NewCore(),
		owner: goroutineID(),
	}
}

func (c *ownedCore) check(call string) {
	if goroutineID() != c.owner {
		c.crit.Lock()
		c.foreign = append(c.foreign, call)
		c.crit.Unlock()
	}
}

func (c *ownedCore) Quit() {
	c.check("Quit")
	c.Core.Quit()
}

func (c *ownedCore) HookBeforeExec(userdata cgo.Handle) {
	c.check("HookBeforeExec")
	c.Core.HookBeforeExec(userdata)
}

func (c *ownedCore) SnapshotDestroy(snap abi.Snapshot) {
	c.check("SnapshotDestroy")
	c.Core.SnapshotDestroy(snap)
}

func (c *ownedCore) foreignCalls() []string {
	c.crit.Lock()
	defer c.crit.Unlock()
	return append([]string{}, c.foreign...)
}

func logContains(detail string) bool {
	var found bool
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if strings.Contains(e.Detail, detail) {
				found = true
			}
		}
	})
	return found
}

// collect garbage until the detail appears in the log or the attempts run out
func collectUntilLogged(detail string) bool {
	for i := 0; i < 100; i++ {
		runtime.GC()
		if logContains(detail) {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestLeakedSnapshot(t *testing.T) {
	logger.Clear()

	core := newOwnedCore()
	ins, err := fceux.New(core, fceuxtest.WriteROM(t, nmiAddr, resetAddr, irqAddr), nil)
	test.DemandSuccess(t, err)
	defer ins.Destroy()

	func() {
		_ = ins.NewSnapshot()
	}()
	test.DemandEquality(t, core.SnapshotsLive, 1)

	test.DemandSuccess(t, collectUntilLogged("snapshot was not destroyed"))

	// the native buffer is still allocated until the instance is next used
	test.ExpectEquality(t, core.SnapshotsLive, 1)
	test.ExpectEquality(t, len(core.foreignCalls()), 0)

	ins.RunFrame(0, 0, nil)
	test.ExpectEquality(t, core.SnapshotsLive, 0)
	test.ExpectEquality(t, len(core.foreignCalls()), 0)
}

func TestDestroyedInstanceNotReported(t *testing.T) {
	logger.Clear()

	core := newOwnedCore()
	func() {
		ins, err := fceux.New(core, fceuxtest.WriteROM(t, nmiAddr, resetAddr, irqAddr), nil)
		test.DemandSuccess(t, err)
		ins.Destroy()
	}()
	test.ExpectSuccess(t, logContains("instance destroyed"))

	// the instance is unreachable. collecting it must not report a leak
	for i := 0; i < 10; i++ {
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
	test.ExpectFailure(t, logContains("was not destroyed"))
	test.ExpectEquality(t, core.QuitCalls, 1)
	test.ExpectEquality(t, len(core.foreignCalls()), 0)
	test.ExpectFailure(t, fceux.Active())
}
