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

package sdlplay

import (
	"encoding/binary"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gofceux/gofceux/logger"
)

// the number of sample frames in the device buffer. the precise value is not
// critical but a long buffer adds lag between the audio and video
const bufferLength = 1024

// the maximum length of the audio queue, in seconds. audio runs ahead of the
// device when the frame rate is uncapped and the queue is cleared when this
// is exceeded
const maxQueueDuration = 0.25

// audio outputs the samples of each frame through an SDL audio queue. the
// samples from the native core are 32 bit but the device is opened for
// signed 16 bit mono.
type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer   []uint8
	maxQueue uint32
}

func newAudio(freq int) (*audio, error) {
	aud := &audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(freq),
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, err
	}

	aud.maxQueue = uint32(float64(freq)*maxQueueDuration) * 2
	logger.Logf(logger.Allow, logTag, "audio device opened at %dHz", aud.spec.Freq)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// queue the samples of one frame.
func (aud *audio) queue(samples []int32) error {
	if len(samples) == 0 {
		return nil
	}

	if sdl.GetQueuedAudioSize(aud.id) > aud.maxQueue {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.buffer = appendSamples(aud.buffer[:0], samples)
	return sdl.QueueAudio(aud.id, aud.buffer)
}

func (aud *audio) destroy() {
	sdl.CloseAudioDevice(aud.id)
}

// appendSamples truncates each sample to 16 bits and appends it to buffer in
// the byte order of the audio device.
func appendSamples(buffer []uint8, samples []int32) []uint8 {
	for _, s := range samples {
		buffer = binary.NativeEndian.AppendUint16(buffer, uint16(int16(s)))
	}
	return buffer
}
