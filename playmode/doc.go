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

// Package playmode runs an fceux.Instance for a human player. The display
// and the source of input events are supplied through the Display interface,
// which the gui/sdlplay package implements.
//
// Besides the controllers, the player can reset or power cycle the console,
// keep a single quick save in memory, restore it, and save screenshots.
package playmode
