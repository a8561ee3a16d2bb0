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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/fceux"
)

// the emulation runs for this long before measurement begins, to allow the
// framerate to settle down
var leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied ROM. The emulation
// runs uncapped with no input for the duration and the frame rate is written
// to output.
//
// A cpu profile, a memory profile, a trace (or a combination of those) will be
// created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, core abi.ABI, romPath string, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive")
	}

	ins, err := fceux.New(core, romPath, nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer ins.Destroy()

	var startFrame int

	runner := func() error {
		// the timer channel signals false when the lead time has elapsed and
		// true when the measurement period has finished
		timerChan := make(chan bool)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		for {
			ins.RunFrame(0, 0, nil)

			select {
			case v := <-timerChan:
				if v {
					return nil
				}
				startFrame = ins.FrameCount()
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := ins.FrameCount() - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
