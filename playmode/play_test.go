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

package playmode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/fceux/fceuxtest"
	"github.com/gofceux/gofceux/screenshot"
	"github.com/gofceux/gofceux/test"
	"github.com/gofceux/gofceux/userinput"
)

// display is a Display that sends one batch of events per call to Service()
type display struct {
	palette bool
	frames  int
	events  [][]userinput.Event
}

func (d *display) SetPalette(_ screenshot.Palette) {
	d.palette = true
}

func (d *display) Frame(video []uint8, _ []int32) {
	d.frames++
}

func (d *display) Service(handle func(ev userinput.Event) error) error {
	if len(d.events) == 0 {
		return nil
	}
	evs := d.events[0]
	d.events = d.events[1:]
	for _, ev := range evs {
		if err := handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func key(name string, down bool) userinput.Event {
	return userinput.EventKeyboard{Key: name, Down: down}
}

func preferences(t *testing.T) *Preferences {
	t.Helper()
	prf, err := NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prf.FPSCap.Set(false))
	return prf
}

func romPath(t *testing.T) string {
	return fceuxtest.WriteROM(t, 0x8100, 0x8000, 0x8200)
}

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	prf, err := NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.Scale.Get().(int), defaultScale)
	test.ExpectEquality(t, prf.Freq.Get().(int), defaultFreq)
	test.ExpectEquality(t, prf.FPSCap.Get().(bool), true)

	// prefs file is created on first use
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	test.DemandSuccess(t, prf.Scale.Set(3))
	test.DemandSuccess(t, prf.Save())

	prf, err = NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.Scale.Get().(int), 3)

	// out of range values are rejected and the previous value kept
	test.ExpectFailure(t, prf.Scale.Set(0))
	test.ExpectFailure(t, prf.Scale.Set(maxScale+1))
	test.ExpectFailure(t, prf.Freq.Set(-1))
	test.ExpectEquality(t, prf.Scale.Get().(int), 3)
}

func TestPlayQuit(t *testing.T) {
	disp := &display{
		events: [][]userinput.Event{
			nil,
			{key("X", true)},
			{key("Escape", true)},
		},
	}

	err := Play(disp, fceuxtest.NewCore(), romPath(t), preferences(t), Options{})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, disp.palette)
	test.ExpectEquality(t, disp.frames, 2)

	// the instance has been released
	test.ExpectFailure(t, fceux.Active())
}

func TestPlayWindowClose(t *testing.T) {
	disp := &display{
		events: [][]userinput.Event{
			{userinput.EventQuit{}},
		},
	}
	err := Play(disp, fceuxtest.NewCore(), romPath(t), preferences(t), Options{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, disp.frames, 0)
}

func TestPlayInitFailure(t *testing.T) {
	err := Play(&display{}, fceuxtest.NewCore(), filepath.Join(t.TempDir(), "missing.nes"), preferences(t), Options{})
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, fceux.Active())
}

func TestPlayWav(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")
	disp := &display{
		events: [][]userinput.Event{
			nil, nil, nil,
			{key("Escape", true)},
		},
	}
	err := Play(disp, fceuxtest.NewCore(), romPath(t), preferences(t), Options{WavFile: fn})
	test.ExpectSuccess(t, err)

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 44)
}

func newTestPlaymode(t *testing.T) (*playmode, *fceuxtest.Core) {
	t.Helper()
	core := fceuxtest.NewCore()
	pl, err := newPlaymode(core, romPath(t), preferences(t))
	test.DemandSuccess(t, err)
	t.Cleanup(pl.end)
	return pl, core
}

func TestInput(t *testing.T) {
	pl, _ := newTestPlaymode(t)
	pl.disp = &display{
		events: [][]userinput.Event{
			{key("X", true), key("Return", true), key("G", true)},
		},
	}

	test.DemandSuccess(t, pl.step())
	test.ExpectEquality(t, fceux.Buttons(pl.ins.ReadMemory(0x0001, fceux.DomainCPU)), fceux.ButtonA|fceux.ButtonStart)
	test.ExpectEquality(t, fceux.Buttons(pl.ins.ReadMemory(0x0002, fceux.DomainCPU)), fceux.ButtonA)
}

func TestQuickSave(t *testing.T) {
	pl, _ := newTestPlaymode(t)

	// nothing to load yet
	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandQuickLoad))

	for range 5 {
		test.DemandSuccess(t, pl.step())
	}
	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandQuickSave))
	saved := pl.ins.ReadMemory(0x0000, fceux.DomainCPU)

	for range 5 {
		test.DemandSuccess(t, pl.step())
	}
	test.ExpectInequality(t, pl.ins.ReadMemory(0x0000, fceux.DomainCPU), saved)

	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandQuickLoad))
	test.ExpectEquality(t, pl.ins.ReadMemory(0x0000, fceux.DomainCPU), saved)
}

func TestQuickSaveFailure(t *testing.T) {
	pl, core := newTestPlaymode(t)
	core.FailSnapshotSave = true

	// failure is logged and the session continues
	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandQuickSave))
	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandQuickLoad))
}

func TestPower(t *testing.T) {
	pl, _ := newTestPlaymode(t)
	pl.ctrl.Joy[0] = fceux.ButtonB

	for range 3 {
		test.DemandSuccess(t, pl.step())
	}
	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandPower))
	test.ExpectEquality(t, pl.ins.ReadMemory(0x0000, fceux.DomainCPU), uint8(0))
	test.ExpectEquality(t, pl.ctrl.Joy[0], fceux.Buttons(0))

	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandReset))
	test.ExpectSuccess(t, pl.ins.RegP().InterruptDisable())
}

func TestScreenshot(t *testing.T) {
	pl, _ := newTestPlaymode(t)
	dir := t.TempDir()
	test.DemandSuccess(t, pl.prf.Screenshots.Set(dir))
	pl.name = "test game"

	// no frame yet. the failure is only logged
	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandScreenshot))

	test.DemandSuccess(t, pl.step())
	test.ExpectSuccess(t, pl.HandleCommand(userinput.CommandScreenshot))

	matches, err := filepath.Glob(filepath.Join(dir, "screenshot_test_game_*.png"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(matches), 1)
}

func TestShortName(t *testing.T) {
	test.ExpectEquality(t, shortName("/roms/Super Game.nes"), "Super Game")
	test.ExpectEquality(t, shortName("game"), "game")
}
