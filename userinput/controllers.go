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

package userinput

import (
	"github.com/gofceux/gofceux/fceux"
)

// Binding maps key names to controller buttons.
type Binding map[string]fceux.Buttons

// DefaultBindings for player 1 and player 2.
var DefaultBindings = [2]Binding{
	{
		"X":           fceux.ButtonA,
		"Z":           fceux.ButtonB,
		"Right Shift": fceux.ButtonSelect,
		"Return":      fceux.ButtonStart,
		"Up":          fceux.ButtonUp,
		"Down":        fceux.ButtonDown,
		"Left":        fceux.ButtonLeft,
		"Right":       fceux.ButtonRight,
	},
	{
		"G": fceux.ButtonA,
		"F": fceux.ButtonB,
		"T": fceux.ButtonSelect,
		"Y": fceux.ButtonStart,
		"I": fceux.ButtonUp,
		"K": fceux.ButtonDown,
		"J": fceux.ButtonLeft,
		"L": fceux.ButtonRight,
	},
}

var commandKeys = map[string]Command{
	"F1":     CommandReset,
	"F2":     CommandPower,
	"F5":     CommandQuickSave,
	"F7":     CommandQuickLoad,
	"F12":    CommandScreenshot,
	"Escape": CommandQuit,
}

// Controllers keeps track of the state of both NES controllers.
type Controllers struct {
	Bindings [2]Binding

	// the current state of each controller. suitable for passing to
	// fceux.Instance.RunFrame()
	Joy [2]fceux.Buttons

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if a quit event has been seen
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers() *Controllers {
	return &Controllers{
		Bindings: DefaultBindings,
	}
}

// HandleUserInput updates the controller state or forwards a command to the
// HandleInput implementation.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		c.LastKeyHandled = true
		return handle.HandleCommand(CommandQuit)
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}

	return nil
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		return nil
	}

	// bound keys ignore the modifier state. a binding can itself be a
	// modifier key (Right Shift is Select) and must combine with other buttons
	for p := range c.Bindings {
		if b, ok := c.Bindings[p][ev.Key]; ok {
			c.Joy[p] = c.Joy[p].Set(b, ev.Down)
			c.LastKeyHandled = true
		}
	}

	if c.LastKeyHandled {
		return nil
	}

	// command keys only trigger without a modifier
	if !ev.Down || ev.Mod != KeyModNone {
		return nil
	}

	if cmd, ok := commandKeys[ev.Key]; ok {
		c.LastKeyHandled = true
		if cmd == CommandQuit {
			c.Quit = true
		}
		return handle.HandleCommand(cmd)
	}

	return nil
}

// Clear releases every button on both controllers.
func (c *Controllers) Clear() {
	c.Joy[0] = 0
	c.Joy[1] = 0
}
