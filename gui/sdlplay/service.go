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

	"github.com/gofceux/gofceux/userinput"
)

// Service implements the playmode.Display interface. Every event in the SDL
// queue is translated and sent to the handler.
//
// Must only be called from the main thread.
func (scr *SdlPlay) Service(handle func(ev userinput.Event) error) error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		var err error

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			err = handle(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			err = handle(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Mod:    keyMod(ev.Keysym.Sym, sdl.GetModState()),
				Repeat: ev.Repeat != 0,
			})
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// keyMod ignores the modifier of the key itself so that a modifier key can
// be bound to a controller button.
func keyMod(key sdl.Keycode, mod sdl.Keymod) userinput.KeyMod {
	switch key {
	case sdl.K_LSHIFT, sdl.K_RSHIFT:
		mod &^= sdl.KMOD_SHIFT
	case sdl.K_LCTRL, sdl.K_RCTRL:
		mod &^= sdl.KMOD_CTRL
	case sdl.K_LALT, sdl.K_RALT:
		mod &^= sdl.KMOD_ALT
	}

	switch {
	case mod&sdl.KMOD_ALT != 0:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_SHIFT != 0:
		return userinput.KeyModShift
	case mod&sdl.KMOD_CTRL != 0:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}
