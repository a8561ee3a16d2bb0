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

package headless

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/digest"
	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/logger"
	"github.com/gofceux/gofceux/wavwriter"
)

const logTag = "headless"

// SnapshotMismatch is returned by Run() when the emulation after a snapshot
// is restored does not match the emulation after the snapshot was saved.
const SnapshotMismatch = "headless: snapshot round trip mismatch at frame %d"

// DefaultFreq is the audio frequency used when Options.Freq is zero.
const DefaultFreq = 44100

// Options for a call to Run().
type Options struct {
	// number of frames to run
	Frames int

	// audio frequency. DefaultFreq if zero
	Freq int

	// write the audio to this file
	WavFile string

	// count the number of times the instruction at this address is about to
	// be executed. see ParseAddress()
	Trace string

	// save a snapshot half way through the run and check that the remaining
	// frames produce the same output after the snapshot is loaded
	CheckSnapshot bool
}

// Result of a call to Run().
type Result struct {
	Frames  int
	Video   string
	Audio   string
	Samples int

	// total number of calls to the execution hook
	HookCalls int

	// number of calls to the execution hook for the trace address
	TraceAddr  uint16
	TraceHits  int
	TraceValid bool
}

func (r Result) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "frames: %d\n", r.Frames)
	fmt.Fprintf(&s, "video: %s\n", r.Video)
	fmt.Fprintf(&s, "audio: %s (%d samples)\n", r.Audio, r.Samples)
	fmt.Fprintf(&s, "hook: %d calls\n", r.HookCalls)
	if r.TraceValid {
		fmt.Fprintf(&s, "trace $%04x: %d hits\n", r.TraceAddr, r.TraceHits)
	}
	return s.String()
}

// ParseAddress accepts an address in decimal or hexadecimal. A hexadecimal
// address is prefixed with either $ or 0x.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if v, ok := strings.CutPrefix(s, "$"); ok {
		s = "0x" + v
	}
	a, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, curated.Errorf("headless: invalid address: %s", s)
	}
	return uint16(a), nil
}

// counter is the execution hook for a headless run.
type counter struct {
	calls int

	addr  uint16
	trace bool
	hits  int
}

func (c *counter) BeforeExec(addr uint16) {
	c.calls++
	if c.trace && addr == c.addr {
		c.hits++
	}
}

// Run the ROM for the number of frames in the Options and write the Result to
// output.
func Run(output io.Writer, core abi.ABI, romPath string, opts Options) (Result, error) {
	if opts.Frames <= 0 {
		return Result{}, curated.Errorf("headless: number of frames must be positive")
	}

	cnt := &counter{}
	if opts.Trace != "" {
		var err error
		cnt.addr, err = ParseAddress(opts.Trace)
		if err != nil {
			return Result{}, err
		}
		cnt.trace = true
	}

	ins, err := fceux.New(core, romPath, cnt)
	if err != nil {
		return Result{}, curated.Errorf("headless: %v", err)
	}
	defer ins.Destroy()

	freq := opts.Freq
	if freq == 0 {
		freq = DefaultFreq
	}
	err = ins.SetAudioFrequency(freq)
	if err != nil {
		return Result{}, curated.Errorf("headless: %v", err)
	}

	vid := digest.NewVideo()
	aud := digest.NewAudio()
	frame := []fceux.FrameFunc{vid.Frame, aud.Frame}

	var wav *wavwriter.WavWriter
	if opts.WavFile != "" {
		wav, err = wavwriter.New(opts.WavFile, freq)
		if err != nil {
			return Result{}, curated.Errorf("headless: %v", err)
		}
		frame = append(frame, wav.Frame)
	}

	onFrame := func(video []uint8, audio []int32) {
		for _, f := range frame {
			f(video, audio)
		}
	}

	first := opts.Frames
	if opts.CheckSnapshot {
		first = opts.Frames / 2
	}

	for range first {
		ins.RunFrame(0, 0, onFrame)
	}

	if opts.CheckSnapshot {
		err = checkSnapshot(ins, opts.Frames-first, onFrame)
		if err != nil {
			return Result{}, err
		}
	}

	if wav != nil {
		err = wav.EndMixing()
		if err != nil {
			return Result{}, curated.Errorf("headless: %v", err)
		}
	}

	res := Result{
		Frames:     vid.Frames(),
		Video:      vid.Hash(),
		Audio:      aud.Hash(),
		Samples:    aud.Samples(),
		HookCalls:  cnt.calls,
		TraceAddr:  cnt.addr,
		TraceHits:  cnt.hits,
		TraceValid: cnt.trace,
	}

	logger.Logf(logger.Allow, logTag, "%d frames run", res.Frames)
	io.WriteString(output, res.String())

	return res, nil
}

// checkSnapshot runs the remaining frames twice, once after saving a
// snapshot and once after loading it. The frames of the first pass are sent
// to onFrame.
func checkSnapshot(ins *fceux.Instance, frames int, onFrame fceux.FrameFunc) error {
	snap := ins.NewSnapshot()
	defer snap.Destroy()

	err := snap.Save()
	if err != nil {
		return curated.Errorf("headless: %v", err)
	}
	start := ins.FrameCount()

	first := make([]string, 0, frames)
	for range frames {
		ins.RunFrame(0, 0, func(video []uint8, audio []int32) {
			onFrame(video, audio)
			first = append(first, frameDigest(video, audio))
		})
	}

	err = snap.Load()
	if err != nil {
		return curated.Errorf("headless: %v", err)
	}

	for i := range frames {
		ins.RunFrame(0, 0, func(video []uint8, audio []int32) {
			if err == nil && frameDigest(video, audio) != first[i] {
				err = curated.Errorf(SnapshotMismatch, start+i)
			}
		})
	}

	if err == nil {
		logger.Logf(logger.Allow, logTag, "snapshot round trip of %d frames matches", frames)
	}

	return err
}

// frameDigest of a single frame.
func frameDigest(video []uint8, audio []int32) string {
	vid := digest.NewVideo()
	aud := digest.NewAudio()
	vid.Frame(video, audio)
	aud.Frame(video, audio)
	return vid.Hash() + aud.Hash()
}
