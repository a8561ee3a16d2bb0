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

// Package digest produces cryptographic hashes of the video and audio output
// of the emulation. The hash can then be used to compare output from
// subsequent emulation executions. If a new hash differs from a previously
// recorded value then something has changed.
//
// Hashes are chained. The hash of a frame includes the hash of the previous
// frame so the final value depends on the entire history of the output.
//
// Note that the use of sha1 is fine for this application because this is
// not a cryptographic task.
package digest

// Digest implementations return the current hash in response to a Hash()
// request. Generation of the hash is achieved by calling Frame() for every
// frame of the emulation. The signature of Frame() is the same as the
// fceux.FrameFunc type.
type Digest interface {
	Frame(video []uint8, audio []int32)
	Hash() string
	ResetDigest()
}
