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

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated console.
//
// It can be thought of as a translation layer between the GUI implementation
// and the fceux package. As such, this package attempts to hide details of
// the GUI implementation while keeping the emulation free of complication.
//
// The GUI implementation in use during development was SDL and so key names
// are the names used by SDL.
//
// Default key bindings:
//
//	           player 1       player 2
//	A          X              G
//	B          Z              F
//	Select     Right Shift    T
//	Start      Return         Y
//	Up         Up             I
//	Down       Down           K
//	Left       Left           J
//	Right      Right          L
//
//	F1 reset, F2 power, F5 quick save, F7 quick load, F12 screenshot
//	Escape quit
package userinput
