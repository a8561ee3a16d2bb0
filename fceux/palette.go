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

import (
	"math"

	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/logger"
)

// Palette returns the colour of a palette index, as found in the video
// buffer passed to a FrameFunc. The result for an index never changes.
func (ins *Instance) Palette(index uint8) (r uint8, g uint8, b uint8) {
	ins.assertLive()
	return ins.core.VideoGetPalette(index)
}

// SetAudioFrequency sets the sample rate of the audio produced by RunFrame().
func (ins *Instance) SetAudioFrequency(freq int) error {
	ins.assertLive()

	if freq <= 0 || freq > math.MaxInt32 {
		return curated.Errorf(UnsupportedFrequency, freq)
	}

	if !ins.core.SoundSetFreq(int32(freq)).OK() {
		return curated.Errorf(UnsupportedFrequency, freq)
	}

	logger.Logf(logger.Allow, logTag, "audio frequency set to %dHz", freq)

	return nil
}
