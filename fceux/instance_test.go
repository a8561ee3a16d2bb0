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
	"path/filepath"
	"testing"

	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/fceux/fceuxtest"
	"github.com/gofceux/gofceux/test"
)

func TestExclusivity(t *testing.T) {
	test.ExpectFailure(t, fceux.Active())

	rom := fceuxtest.WriteROM(t, nmiAddr, resetAddr, irqAddr)

	core := fceuxtest.NewCore()
	ins, err := fceux.New(core, rom, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fceux.Active())

	// second instance is refused without touching the native core
	other := fceuxtest.NewCore()
	_, err = fceux.New(other, rom, nil)
	test.ExpectSuccess(t, curated.Is(err, fceux.AlreadyActive))
	test.ExpectEquality(t, other.InitCalls, 0)

	// the first instance is unaffected by the refusal
	ins.RunFrame(0, 0, nil)
	test.ExpectEquality(t, ins.FrameCount(), 1)

	ins.Destroy()
	test.ExpectFailure(t, fceux.Active())

	// creation is possible again
	ins, err = fceux.New(other, rom, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fceux.Active())
	ins.Destroy()
	test.ExpectFailure(t, fceux.Active())
}

func TestInitFailure(t *testing.T) {
	core := fceuxtest.NewCore()
	_, err := fceux.New(core, filepath.Join(t.TempDir(), "missing.nes"), nil)
	test.ExpectSuccess(t, curated.Is(err, fceux.InitFailed))
	test.ExpectEquality(t, core.InitCalls, 1)
	test.ExpectFailure(t, fceux.Active())

	// the token was released by the failure
	ins, _ := newInstance(t, nil)
	test.ExpectSuccess(t, fceux.Active())
	ins.Destroy()
}

func TestInvalidPath(t *testing.T) {
	core := fceuxtest.NewCore()

	_, err := fceux.New(core, "rom\x00.nes", nil)
	test.ExpectSuccess(t, curated.Is(err, fceux.InvalidPath))

	_, err = fceux.New(core, "rom\xff.nes", nil)
	test.ExpectSuccess(t, curated.Is(err, fceux.InvalidPath))

	test.ExpectEquality(t, core.InitCalls, 0)
	test.ExpectFailure(t, fceux.Active())
}

func TestDestroy(t *testing.T) {
	ins, core := newInstance(t, nil)
	test.ExpectEquality(t, core.HookInstalls, 1)
	test.ExpectSuccess(t, core.HookInstalled())

	ins.Destroy()
	ins.Destroy()
	test.ExpectEquality(t, core.QuitCalls, 1)
	test.ExpectEquality(t, core.HookUninstalls, 1)
	test.ExpectFailure(t, core.HookInstalled())
	test.ExpectFailure(t, fceux.Active())

	test.ExpectPanic(t, func() { ins.RunFrame(0, 0, nil) })
	test.ExpectPanic(t, func() { ins.Power() })
	test.ExpectPanic(t, func() { ins.ReadMemory(0, fceux.DomainCPU) })
	test.ExpectPanic(t, func() { ins.NewSnapshot() })
}

func TestRunFrame(t *testing.T) {
	ins, _ := newInstance(t, nil)

	var calls int
	for i := 0; i < 3; i++ {
		ins.RunFrame(0, 0, func(video []uint8, audio []int32) {
			calls++
			test.ExpectEquality(t, len(video), fceux.ScreenWidth*fceux.ScreenHeight)
			test.ExpectEquality(t, len(audio), fceuxtest.DefaultFrequency/fceuxtest.FramesPerSecond)
		})
	}
	test.ExpectEquality(t, calls, 3)
	test.ExpectEquality(t, ins.FrameCount(), 3)

	// nil callback is allowed
	ins.RunFrame(0, 0, nil)
	test.ExpectEquality(t, ins.FrameCount(), 4)

	// the stand-in core counts frames in RAM
	test.ExpectEquality(t, ins.ReadMemory(0x0000, fceux.DomainCPU), 4)
}

func TestInputs(t *testing.T) {
	ins, _ := newInstance(t, nil)

	ins.RunFrame(fceux.ButtonA|fceux.ButtonStart, fceux.ButtonLeft, nil)
	test.ExpectEquality(t, ins.ReadMemory(0x0001, fceux.DomainCPU), 0x09)
	test.ExpectEquality(t, ins.ReadMemory(0x0002, fceux.DomainCPU), 0x40)

	ins.RunFrame(0, fceux.ButtonRight|fceux.ButtonDown, nil)
	test.ExpectEquality(t, ins.ReadMemory(0x0001, fceux.DomainCPU), 0x00)
	test.ExpectEquality(t, ins.ReadMemory(0x0002, fceux.DomainCPU), 0xa0)
}

func TestMemory(t *testing.T) {
	ins, _ := newInstance(t, nil)

	ins.WriteMemory(0x0010, 0x42, fceux.DomainCPU)
	test.ExpectEquality(t, ins.ReadMemory(0x0010, fceux.DomainCPU), 0x42)

	// RAM is mirrored
	test.ExpectEquality(t, ins.ReadMemory(0x0810, fceux.DomainCPU), 0x42)
	test.ExpectEquality(t, ins.ReadMemory(0x1810, fceux.DomainCPU), 0x42)

	// ROM is unchanged by writes
	test.ExpectEquality(t, ins.ReadMemory(0x8000, fceux.DomainCPU), 0xea)
	ins.WriteMemory(0x8000, 0x00, fceux.DomainCPU)
	test.ExpectEquality(t, ins.ReadMemory(0x8000, fceux.DomainCPU), 0xea)

	// power clears RAM
	ins.Power()
	test.ExpectEquality(t, ins.ReadMemory(0x0010, fceux.DomainCPU), 0x00)
}

func TestVectors(t *testing.T) {
	ins, _ := newInstance(t, nil)
	test.ExpectEquality(t, ins.ReadVector(fceux.VectorNMI), nmiAddr)
	test.ExpectEquality(t, ins.ReadVector(fceux.VectorReset), resetAddr)
	test.ExpectEquality(t, ins.ReadVector(fceux.VectorIRQ), irqAddr)
	test.ExpectEquality(t, fceux.VectorReset.String(), "RESET")
}

func TestPalette(t *testing.T) {
	ins, _ := newInstance(t, nil)

	r, g, b := ins.Palette(0x00)
	test.ExpectEquality(t, r, 84)
	test.ExpectEquality(t, g, 84)
	test.ExpectEquality(t, b, 84)

	// the result never changes
	for i := 0; i < 256; i++ {
		r1, g1, b1 := ins.Palette(uint8(i))
		r2, g2, b2 := ins.Palette(uint8(i))
		test.ExpectEquality(t, [3]uint8{r1, g1, b1}, [3]uint8{r2, g2, b2}, i)
	}
}

func TestAudioFrequency(t *testing.T) {
	ins, core := newInstance(t, nil)

	test.ExpectSuccess(t, ins.SetAudioFrequency(48000))
	test.ExpectEquality(t, core.Frequency(), 48000)
	ins.RunFrame(0, 0, func(_ []uint8, audio []int32) {
		test.ExpectEquality(t, len(audio), 800)
	})

	for _, f := range []int{12345, 0, -1, 1 << 40} {
		err := ins.SetAudioFrequency(f)
		test.ExpectSuccess(t, curated.Is(err, fceux.UnsupportedFrequency), f)
	}

	// rejected values do not change the frequency
	test.ExpectEquality(t, core.Frequency(), 48000)
}

func TestReset(t *testing.T) {
	var addrs []uint16
	ins, _ := newInstance(t, fceux.HookFunc(func(addr uint16) {
		addrs = append(addrs, addr)
	}))

	ins.RunFrame(0, 0, nil)
	ins.RunFrame(0, 0, nil)
	addrs = addrs[:0]

	ins.Reset()
	test.ExpectSuccess(t, ins.RegP().InterruptDisable())
	ins.RunFrame(0, 0, nil)
	test.DemandEquality(t, len(addrs), 2)
	test.ExpectEquality(t, addrs[0], resetAddr)
	test.ExpectEquality(t, addrs[1], nmiAddr)
}
