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
	"os"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/fceux/fceuxtest"
	"github.com/gofceux/gofceux/headless"
	"github.com/gofceux/gofceux/libfceux"
	"github.com/gofceux/gofceux/modalflag"
)

func runHeadless(md *modalflag.Modes) error {
	md.NewMode()

	cmn := addCommon(md)
	frames := md.AddInt("frames", 600, "number of frames to run")
	freq := md.AddInt("freq", headless.DefaultFreq, "audio frequency")
	wav := md.AddString("wav", "", "record audio to wav file")
	trace := md.AddString("trace", "", "count executions of the instruction at this address")
	snapshot := md.AddBool("snapshot", false, "check that a snapshot round trip is deterministic")
	selfTest := md.AddBool("selftest", false, "run against the built in test core instead of libfceux")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defer cmn.apply()()

	opts := headless.Options{
		Frames:        *frames,
		Freq:          *freq,
		WavFile:       *wav,
		Trace:         *trace,
		CheckSnapshot: *snapshot,
	}

	var core abi.ABI
	var romPath string

	if *selfTest {
		f, err := os.CreateTemp("", "gofceux-selftest-*.nes")
		if err != nil {
			return err
		}
		defer os.Remove(f.Name())

		_, err = f.Write(fceuxtest.ROM(2, 0x8100, 0x8000, 0x8200))
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}

		core = fceuxtest.NewCore()
		romPath = f.Name()
	} else {
		ld, pth, err := loadROM(md)
		if err != nil {
			return err
		}
		defer ld.Close()

		core = libfceux.Core{}
		romPath = pth
	}

	_, err = headless.Run(os.Stdout, core, romPath, opts)
	return err
}
