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

// Package headless runs an fceux.Instance without a display. Every frame is
// run with no controller input and the output is summarised with chained
// digests of the video and audio, which makes the headless mode suitable for
// comparing emulation runs.
//
// Optionally, the audio can be written to a WAV file, the number of times an
// instruction address is executed can be counted and the determinism of a
// snapshot round trip can be checked.
package headless
