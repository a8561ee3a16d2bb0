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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/logger"
	"github.com/gofceux/gofceux/screenshot"
	"github.com/gofceux/gofceux/version"
)

// screenshot.Lookup writes pixels as R,G,B,A bytes. RGBA32 is the packed
// format with that byte order on any host.
const textureFormat = uint32(sdl.PIXELFORMAT_RGBA32)

const logTag = "sdlplay"

const pixelDepth = 4

// SdlPlay is a window showing the output of the emulation. It implements the
// playmode.Display interface.
//
// SDL must only be used from the main thread. The caller is responsible for
// locking the main goroutine to the main thread.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	aud *audio

	lookup *screenshot.Lookup

	// RGBA copy of the most recent frame, copied to the texture every frame
	pixels []uint8
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// window is the size of the NES screen multiplied by scale.
func NewSdlPlay(scale int, freq int) (*SdlPlay, error) {
	scr := &SdlPlay{
		pixels: make([]uint8, abi.ScreenWidth*abi.ScreenHeight*pixelDepth),
	}

	err := sdl.Init(uint32(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scale = max(scale, 1)
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(abi.ScreenWidth*scale), int32(abi.ScreenHeight*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the texture is the size of the NES screen. the renderer stretches it to
	// fill the window
	scr.texture, err = scr.renderer.CreateTexture(textureFormat,
		int(sdl.TEXTUREACCESS_STREAMING),
		abi.ScreenWidth, abi.ScreenHeight)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.aud, err = newAudio(freq)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf(logger.Allow, logTag, "window opened at scale %d", scale)

	return scr, nil
}

// Destroy the window and the audio device. SDL is shut down.
func (scr *SdlPlay) Destroy() {
	if scr.aud != nil {
		scr.aud.destroy()
		scr.aud = nil
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// SetPalette implements the playmode.Display interface.
func (scr *SdlPlay) SetPalette(pal screenshot.Palette) {
	scr.lookup = screenshot.NewLookup(pal)
}

// Frame implements the playmode.Display interface. The video is converted
// with the palette and presented. The audio is queued.
func (scr *SdlPlay) Frame(video []uint8, audio []int32) {
	if scr.lookup != nil {
		scr.lookup.Convert(scr.pixels, video)
	}

	if err := scr.present(); err != nil {
		logger.Log(logger.Allow, logTag, err)
	}

	if err := scr.aud.queue(audio); err != nil {
		logger.Log(logger.Allow, logTag, err)
	}
}

func (scr *SdlPlay) present() error {
	pix, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}

	// the pitch of a locked texture may be wider than the image
	w := abi.ScreenWidth * pixelDepth
	for y := 0; y < abi.ScreenHeight; y++ {
		copy(pix[y*pitch:y*pitch+w], scr.pixels[y*w:(y+1)*w])
	}
	scr.texture.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}
