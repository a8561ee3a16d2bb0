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

// Event represents all the different types of events that can occur.
type Event interface{}

// KeyMod indicates which modifier keys are being pressed.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is the data for a keyboard event. Key is the name of the key
// as given by SDL.
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

// EventQuit is sent when the window is closed.
type EventQuit struct{}

// Command is an instruction to the emulation that does not involve the
// controllers.
type Command int

// List of valid Command values.
const (
	CommandReset Command = iota
	CommandPower
	CommandQuickSave
	CommandQuickLoad
	CommandScreenshot
	CommandQuit
)

func (cmd Command) String() string {
	switch cmd {
	case CommandReset:
		return "reset"
	case CommandPower:
		return "power"
	case CommandQuickSave:
		return "quick save"
	case CommandQuickLoad:
		return "quick load"
	case CommandScreenshot:
		return "screenshot"
	case CommandQuit:
		return "quit"
	}
	return "unknown command"
}

// HandleInput is implemented by the front-end that is running the emulation.
type HandleInput interface {
	HandleCommand(cmd Command) error
}
