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

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/gui/sdlplay"
	"github.com/gofceux/gofceux/libfceux"
	"github.com/gofceux/gofceux/logger"
	"github.com/gofceux/gofceux/modalflag"
	"github.com/gofceux/gofceux/paths"
	"github.com/gofceux/gofceux/performance"
	"github.com/gofceux/gofceux/playmode"
	"github.com/gofceux/gofceux/prefs"
	"github.com/gofceux/gofceux/romloader"
	"github.com/gofceux/gofceux/statsview"
	"github.com/gofceux/gofceux/version"
)

// SDL must be used from the main thread. the main goroutine runs on the main
// thread from the start of the program so it is locked there
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch the mode selected by the command line and return the exit code.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "HEADLESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "HEADLESS":
		err = runHeadless(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

// flags common to more than one mode.
type common struct {
	log   *bool
	prefs *string
}

func addCommon(md *modalflag.Modes) common {
	return common{
		log:   md.AddBool("log", false, "echo log to stderr"),
		prefs: md.AddString("prefs", "", "override preferences for this session: \"key::value; key::value\""),
	}
}

// apply the common flags. the returned function must be called when the mode
// has finished.
func (c common) apply() func() {
	if *c.log {
		logger.EchoTo(os.Stderr)
	}
	if *c.prefs == "" {
		return func() {}
	}
	prefs.PushCommandLineStack(*c.prefs)
	return func() {
		if s := prefs.PopCommandLineStack(); s != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", s)
		}
	}
}

// loadROM resolves the single remaining argument to a path that can be opened
// by the native core.
func loadROM(md *modalflag.Modes) (*romloader.Loader, string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, "", curated.Errorf("NES ROM required for %s mode", md)
	case 1:
	default:
		return nil, "", curated.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	err := ld.Load()
	if err != nil {
		return nil, "", err
	}

	pth, err := ld.Path()
	if err != nil {
		_ = ld.Close()
		return nil, "", err
	}

	return &ld, pth, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("keys: F1 reset, F2 power, F5 quick save, F7 quick load, F12 screenshot, Escape quit")

	cmn := addCommon(md)
	md.AddInt("scale", 2, "window scaling")
	md.AddInt("freq", 44100, "audio frequency")
	md.AddBool("fpscap", true, "cap fps to the refresh rate of the console")
	md.AddString("screenshots", "", "directory for screenshots")
	savePrefs := md.AddBool("saveprefs", false, "save preferences, including those given on the command line")
	wav := md.AddString("wav", "", "record audio to wav file")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run stats server")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer cmn.apply()()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return err
	}
	prf, err := playmode.NewPreferences(pth)
	if err != nil {
		return err
	}

	// flags given on the command line take precedence over the prefs file
	md.Visit(func(name string, value string) {
		var perr error
		switch name {
		case "scale":
			perr = prf.Scale.Set(value)
		case "freq":
			perr = prf.Freq.Set(value)
		case "fpscap":
			perr = prf.FPSCap.Set(value)
		case "screenshots":
			perr = prf.Screenshots.Set(value)
		}
		if perr != nil && err == nil {
			err = perr
		}
	})
	if err != nil {
		return err
	}

	if *savePrefs {
		err = prf.Save()
		if err != nil {
			return err
		}
	}

	ld, romPath, err := loadROM(md)
	if err != nil {
		return err
	}
	defer ld.Close()

	if stats != nil && *stats {
		defer statsview.Launch(os.Stdout)()
	}

	scr, err := sdlplay.NewSdlPlay(prf.Scale.Get().(int), prf.Freq.Get().(int))
	if err != nil {
		return err
	}
	defer scr.Destroy()

	return playmode.Play(scr, libfceux.Core{}, romPath, prf, playmode.Options{
		Name:    ld.ShortName(),
		WavFile: *wav,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration, not including a two second lead time")
	profile := md.AddString("profile", "none", "create profile: cpu, mem, trace, or a comma separated combination")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer cmn.apply()()

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	ld, romPath, err := loadROM(md)
	if err != nil {
		return err
	}
	defer ld.Close()

	return performance.Check(os.Stdout, prf, libfceux.Core{}, romPath, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
