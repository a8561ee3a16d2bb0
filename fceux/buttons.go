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

import "strings"

// Buttons is the state of a single NES controller. Bit layout is fixed.
type Buttons uint8

// List of valid Buttons bits.
const (
	ButtonA Buttons = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

var buttonNames = [...]string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	s := make([]string, 0, len(buttonNames))
	for i, n := range buttonNames {
		if b&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	return strings.Join(s, "+")
}

// Set returns a copy of the Buttons with the button(s) pressed or released.
func (b Buttons) Set(button Buttons, pressed bool) Buttons {
	if pressed {
		return b | button
	}
	return b &^ button
}

// Pressed returns true if all of the specified buttons are pressed.
func (b Buttons) Pressed(button Buttons) bool {
	return b&button == button
}
