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
	"path/filepath"

	"github.com/gofceux/gofceux/logger"
	"github.com/gofceux/gofceux/paths"
	"github.com/gofceux/gofceux/userinput"
)

// HandleCommand implements the userinput.HandleInput interface.
func (pl *playmode) HandleCommand(cmd userinput.Command) error {
	switch cmd {
	case userinput.CommandReset:
		pl.ins.Reset()
	case userinput.CommandPower:
		pl.ctrl.Clear()
		pl.ins.Power()
	case userinput.CommandQuickSave:
		return pl.quickSave()
	case userinput.CommandQuickLoad:
		return pl.quickLoad()
	case userinput.CommandScreenshot:
		return pl.screenshot()
	case userinput.CommandQuit:
		logger.Log(logger.Allow, logTag, "quit")
	}
	return nil
}

func (pl *playmode) quickSave() error {
	if pl.quick == nil {
		pl.quick = pl.ins.NewSnapshot()
	}

	// a failed save is not fatal. the previous quick save remains
	if err := pl.quick.Save(); err != nil {
		logger.Logf(logger.Allow, logTag, "quick save: %v", err)
		return nil
	}
	logger.Logf(logger.Allow, logTag, "quick save at frame %d", pl.ins.FrameCount())
	return nil
}

func (pl *playmode) quickLoad() error {
	if pl.quick == nil {
		logger.Log(logger.Allow, logTag, "quick load: nothing saved")
		return nil
	}
	if err := pl.quick.Load(); err != nil {
		logger.Logf(logger.Allow, logTag, "quick load: %v", err)
		return nil
	}

	// buttons held when the quick save was made are not part of the snapshot
	pl.ctrl.Clear()
	logger.Log(logger.Allow, logTag, "quick load")
	return nil
}

func (pl *playmode) screenshot() error {
	name := pl.name
	if name == "" {
		name = shortName(pl.ins.ROMPath())
	}

	base := paths.UniqueFilename("screenshot", name)
	if dir := pl.prf.Screenshots.String(); dir != "" {
		base = filepath.Join(dir, base)
	}

	// a failed screenshot is not fatal
	if _, err := pl.scr.Save(base); err != nil {
		logger.Log(logger.Allow, logTag, err)
	}
	return nil
}

func shortName(romPath string) string {
	n := filepath.Base(romPath)
	return n[:len(n)-len(filepath.Ext(n))]
}
