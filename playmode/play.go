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

package playmode

import (
	"os"
	"os/signal"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/logger"
	"github.com/gofceux/gofceux/performance"
	"github.com/gofceux/gofceux/performance/limiter"
	"github.com/gofceux/gofceux/screenshot"
	"github.com/gofceux/gofceux/userinput"
	"github.com/gofceux/gofceux/wavwriter"
)

const logTag = "play"

// Display shows the output of the emulation and is the source of user
// input.
type Display interface {
	// SetPalette is called once, before the first frame.
	SetPalette(pal screenshot.Palette)

	// Frame has the same signature as fceux.FrameFunc.
	Frame(video []uint8, audio []int32)

	// Service sends every pending input event to the handler. Service is
	// called once per frame.
	Service(handle func(ev userinput.Event) error) error
}

// Options for a call to Play() that are not kept in the preferences.
type Options struct {
	// name of the ROM used in screenshot filenames. the base of the ROM
	// path if empty
	Name string

	// record the audio of the session to this file
	WavFile string
}

// Play the ROM until the player quits, the window is closed or the process
// is interrupted.
func Play(disp Display, core abi.ABI, romPath string, prf *Preferences, opts Options) (rerr error) {
	pl, err := newPlaymode(core, romPath, prf)
	if err != nil {
		return err
	}
	defer pl.end()
	pl.name = opts.Name

	if opts.WavFile != "" {
		pl.wav, err = wavwriter.New(opts.WavFile, prf.Freq.Get().(int))
		if err != nil {
			return curated.Errorf("play: %v", err)
		}
		defer func() {
			if err := pl.wav.EndMixing(); err != nil && rerr == nil {
				rerr = curated.Errorf("play: %v", err)
			}
		}()
	}

	disp.SetPalette(pl.ins)
	pl.disp = disp

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for !pl.ctrl.Quit {
		select {
		case <-intChan:
			logger.Log(logger.Allow, logTag, "interrupted")
			return nil
		default:
		}

		err := pl.step()
		if err != nil {
			return err
		}
	}

	return nil
}

type playmode struct {
	ins  *fceux.Instance
	disp Display
	ctrl *userinput.Controllers
	prf  *Preferences

	lmtr *limiter.FpsLimiter
	scr  *screenshot.Screenshot
	wav  *wavwriter.WavWriter

	name string

	// in memory quick save. created on first use
	quick *fceux.Snapshot
}

func newPlaymode(core abi.ABI, romPath string, prf *Preferences) (*playmode, error) {
	ins, err := fceux.New(core, romPath, nil)
	if err != nil {
		return nil, curated.Errorf("play: %v", err)
	}

	pl := &playmode{
		ins:  ins,
		ctrl: userinput.NewControllers(),
		prf:  prf,
	}

	err = ins.SetAudioFrequency(prf.Freq.Get().(int))
	if err != nil {
		pl.end()
		return nil, curated.Errorf("play: %v", err)
	}

	pl.lmtr, err = limiter.NewFPSLimiter(performance.RefreshRate)
	if err != nil {
		pl.end()
		return nil, curated.Errorf("play: %v", err)
	}

	pl.scr = screenshot.New(ins, prf.Scale.Get().(int))

	return pl, nil
}

// end releases the quick save and the instance.
func (pl *playmode) end() {
	if pl.quick != nil {
		pl.quick.Destroy()
		pl.quick = nil
	}
	pl.ins.Destroy()
	if pl.lmtr != nil && pl.lmtr.Late() > 0 {
		logger.Logf(logger.Allow, logTag, "%d late frames", pl.lmtr.Late())
	}
}

// step services input and runs a single frame.
func (pl *playmode) step() error {
	if pl.disp != nil {
		err := pl.disp.Service(func(ev userinput.Event) error {
			return pl.ctrl.HandleUserInput(ev, pl)
		})
		if err != nil {
			return curated.Errorf("play: %v", err)
		}
	}

	if pl.ctrl.Quit {
		return nil
	}

	pl.ins.RunFrame(pl.ctrl.Joy[0], pl.ctrl.Joy[1], pl.frame)

	if pl.prf.FPSCap.Get().(bool) {
		pl.lmtr.Wait()
	}

	return nil
}

// frame is the fceux.FrameFunc for every frame of the session.
func (pl *playmode) frame(video []uint8, audio []int32) {
	if pl.disp != nil {
		pl.disp.Frame(video, audio)
	}
	pl.scr.Frame(video, audio)
	if pl.wav != nil {
		pl.wav.Frame(video, audio)
	}
}
