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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/logger"
)

// the WAV file is always 16 bit mono. the same conversion as the audio output
// in PLAY mode
const (
	bitDepth    = 16
	numChannels = 1

	// PCM format code in the WAV header
	formatPCM = 1
)

// WavWriter collects the audio from every frame.
type WavWriter struct {
	filename string
	freq     int
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// frequency argument should be the same as the native core is using.
func New(filename string, freq int) (*WavWriter, error) {
	if freq <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "bad frequency for wav encoding")
	}

	aw := &WavWriter{
		filename: filename,
		freq:     freq,
		buffer:   make([]int, 0, freq),
	}

	return aw, nil
}

// Frame has the same signature as fceux.FrameFunc. Only the audio is used.
//
// Samples are truncated to 16 bits.
func (aw *WavWriter) Frame(_ []uint8, samples []int32) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(int16(s)))
	}
}

// Samples returns the number of samples collected so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// EndMixing writes the collected audio to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.freq, bitDepth, numChannels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.freq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards the collected audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
