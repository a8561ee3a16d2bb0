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

// Package limiter provides a way of limiting events to a fixed rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		renderImage()
//		fps.Wait()
//	}
//
// The limiter does not try to catch up. If a frame takes longer than the
// frame period then the next deadline is one frame period from the time the
// lateness is noticed. The rate never goes above the limit to make up for
// lost time.
package limiter

import (
	"time"

	"github.com/gofceux/gofceux/curated"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	frameDuration   time.Duration

	// time of the next deadline
	next time.Time

	// number of times Wait() was called after the deadline had passed
	late int

	// replaced for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits. The first deadline
// is one frame period from now.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: frames per second must be positive: %d", framesPerSecond)
	}
	lim.framesPerSecond = framesPerSecond
	lim.frameDuration = time.Second / time.Duration(framesPerSecond)
	lim.next = lim.now().Add(lim.frameDuration)
	return nil
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until the next deadline.
func (lim *FpsLimiter) Wait() {
	now := lim.now()
	if now.Before(lim.next) {
		lim.sleep(lim.next.Sub(now))
		lim.next = lim.next.Add(lim.frameDuration)
		return
	}

	// too late. give up on the missed time and aim for the frame rate from
	// now on
	lim.next = now.Add(lim.frameDuration)
	lim.late++
}

// Late returns the number of times Wait() was called after the deadline.
func (lim *FpsLimiter) Late() int {
	return lim.late
}
