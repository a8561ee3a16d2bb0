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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 4096

// the buffer includes the previous digest value at its head. samples are
// written after that
const audioBufferStart = sha1.Size

// Audio is an implementation of the Digest interface for the audio output.
// Samples are hashed as 32 bit little-endian values.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	samples  int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Samples that have not yet been
// flushed are included in the value but remain unflushed, so calling Hash()
// does not change future values.
func (dig *Audio) Hash() string {
	if dig.bufferCt == audioBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	copy(dig.buffer, dig.digest[:])
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
	dig.samples = 0
}

// Frame implements the Digest interface.
func (dig *Audio) Frame(_ []uint8, audio []int32) {
	for _, s := range audio {
		if dig.bufferCt+4 > len(dig.buffer) {
			dig.flush()
		}
		binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], uint32(s))
		dig.bufferCt += 4
	}
	dig.samples += len(audio)
}

func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = audioBufferStart
}

// Samples returns the number of samples in the digest.
func (dig *Audio) Samples() int {
	return dig.samples
}
