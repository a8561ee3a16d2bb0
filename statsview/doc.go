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

// Package statsview serves runtime statistics over HTTP while the emulator
// is running. It is only built with the statsview build tag:
//
//	go build -tags statsview
//
// Charts are then viewable at:
//
//	localhost:12650/debug/statsview
//
// And the standard pprof pages at:
//
//	localhost:12650/debug/pprof/
//
// Without the build tag Launch() does nothing and Available() returns false.
package statsview
