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

import "github.com/gofceux/gofceux/abi"

// Dimensions of the video buffer passed to a FrameFunc.
const (
	ScreenWidth  = abi.ScreenWidth
	ScreenHeight = abi.ScreenHeight
)

// FrameFunc is called at the end of every frame. The video slice is exactly
// ScreenWidth*ScreenHeight palette indices. The audio slice has a variable
// number of samples.
//
// Both slices are borrowed from the native core and are only valid for the
// duration of the call. Copy them if they are needed afterwards.
type FrameFunc func(video []uint8, audio []int32)

// RunFrame advances the emulation by exactly one frame with the supplied
// controller states and then calls onFrame, which can be nil.
//
// Any installed Hook is called by the native core during the frame and so
// all hook calls happen before onFrame is called.
//
// RunFrame must only be called between frames. Calling RunFrame from inside
// onFrame or from inside a Hook is not allowed and the result is undefined.
func (ins *Instance) RunFrame(joy1 Buttons, joy2 Buttons, onFrame FrameFunc) {
	ins.assertLive()
	releaseLeaked()
	video, audio := ins.core.RunFrame(uint8(joy1), uint8(joy2))
	ins.frameCount++
	if onFrame != nil {
		onFrame(video, audio)
	}
}

// FrameCount returns the number of frames run by this instance.
func (ins *Instance) FrameCount() int {
	return ins.frameCount
}
