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
	"testing"

	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/test"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ins, core := newInstance(t, nil)

	for i := 0; i < 5; i++ {
		ins.RunFrame(0, 0, nil)
	}

	snap := ins.NewSnapshot()
	defer snap.Destroy()
	test.ExpectEquality(t, core.SnapshotsLive, 1)
	test.DemandSuccess(t, snap.Save())

	var expected []uint8
	ins.RunFrame(0, 0, func(video []uint8, _ []int32) {
		expected = bytes.Clone(video)
	})
	for i := 0; i < 5; i++ {
		ins.RunFrame(0, 0, nil)
	}
	test.ExpectEquality(t, ins.ReadMemory(0x0000, fceux.DomainCPU), 11)

	test.DemandSuccess(t, snap.Load())
	test.ExpectEquality(t, ins.ReadMemory(0x0000, fceux.DomainCPU), 5)

	// the frame after loading is the same as the frame after saving
	var video []uint8
	ins.RunFrame(0, 0, func(v []uint8, _ []int32) {
		video = bytes.Clone(v)
	})
	test.ExpectSuccess(t, bytes.Equal(video, expected))

	// a snapshot can be loaded more than once
	test.ExpectSuccess(t, snap.Load())
	test.ExpectEquality(t, ins.ReadMemory(0x0000, fceux.DomainCPU), 5)
}

func TestSnapshotLoadUnsaved(t *testing.T) {
	ins, _ := newInstance(t, nil)
	ins.WriteMemory(0x0020, 0x99, fceux.DomainCPU)

	snap := ins.NewSnapshot()
	defer snap.Destroy()

	err := snap.Load()
	test.ExpectSuccess(t, curated.Is(err, fceux.LoadFailed))

	// state is unchanged by the failure
	test.ExpectEquality(t, ins.ReadMemory(0x0020, fceux.DomainCPU), 0x99)
}

func TestSnapshotSaveFailure(t *testing.T) {
	ins, core := newInstance(t, nil)

	snap := ins.NewSnapshot()
	defer snap.Destroy()

	core.FailSnapshotSave = true
	err := snap.Save()
	test.ExpectSuccess(t, curated.Is(err, fceux.SaveFailed))
}

func TestSnapshotOutOfMemory(t *testing.T) {
	ins, core := newInstance(t, nil)
	core.FailSnapshotCreate = true
	test.ExpectPanic(t, func() { ins.NewSnapshot() })
	test.ExpectEquality(t, core.SnapshotsLive, 0)
}

func TestSnapshotDestroy(t *testing.T) {
	ins, core := newInstance(t, nil)

	a := ins.NewSnapshot()
	b := ins.NewSnapshot()
	test.ExpectEquality(t, core.SnapshotsLive, 2)

	a.Destroy()
	a.Destroy()
	test.ExpectEquality(t, core.SnapshotsLive, 1)
	test.ExpectPanic(t, func() { _ = a.Save() })
	test.ExpectPanic(t, func() { _ = a.Load() })

	// snapshots outlive the instance but cannot be used with it
	ins.Destroy()
	test.ExpectPanic(t, func() { _ = b.Save() })
	b.Destroy()
	test.ExpectEquality(t, core.SnapshotsLive, 0)
}
