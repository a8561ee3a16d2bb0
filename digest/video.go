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
	"fmt"

	"github.com/gofceux/gofceux/abi"
)

// Video is an implementation of the Digest interface for the video output.
// The pixel data is hashed as palette indices.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// length of pixels array contains enough room for the previous
		// frame's digest value
		pixels: make([]byte, sha1.Size+abi.ScreenWidth*abi.ScreenHeight),
	}
}

func (dig *Video) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frame implements the Digest interface.
func (dig *Video) Frame(video []uint8, _ []int32) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the screen data
	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], video)
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}
