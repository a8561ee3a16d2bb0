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
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/prefs"
)

// defaults for a new prefs file
const (
	defaultScale = 2
	defaultFreq  = 44100
	maxScale     = 8
)

// Preferences for the play mode.
type Preferences struct {
	dsk *prefs.Disk

	// integer scaling of the window
	Scale prefs.Int

	// limit the emulation to the refresh rate of the console
	FPSCap prefs.Bool

	// audio frequency requested from the native core and the audio device
	Freq prefs.Int

	// directory for screenshots. the working directory if empty
	Screenshots prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the prefs file at path, which is
// created if it does not exist.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	err = p.dsk.Add("play.scale", &p.Scale)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}
	err = p.dsk.Add("play.fpscap", &p.FPSCap)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}
	err = p.dsk.Add("audio.freq", &p.Freq)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}
	err = p.dsk.Add("play.screenshots", &p.Screenshots)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s, ok := v.(int); ok && (s < 1 || s > maxScale) {
			return curated.Errorf("playmode: scale must be between 1 and %d", maxScale)
		}
		return nil
	})
	p.Freq.SetHookPre(func(v prefs.Value) error {
		if f, ok := v.(int); ok && f <= 0 {
			return curated.Errorf("playmode: audio frequency must be positive")
		}
		return nil
	})

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, curated.Errorf("playmode: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values. The values
// are not saved.
func (p *Preferences) SetDefaults() {
	_ = p.Scale.Set(defaultScale)
	_ = p.FPSCap.Set(true)
	_ = p.Freq.Set(defaultFreq)
	_ = p.Screenshots.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
