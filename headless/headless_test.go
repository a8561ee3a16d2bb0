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

package headless_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/fceux/fceuxtest"
	"github.com/gofceux/gofceux/headless"
	"github.com/gofceux/gofceux/test"
)

func romPath(t *testing.T) string {
	return fceuxtest.WriteROM(t, 0x8100, 0x8000, 0x8200)
}

func TestRun(t *testing.T) {
	out := &test.CompareWriter{}
	res, err := headless.Run(out, fceuxtest.NewCore(), romPath(t), headless.Options{
		Frames: 10,
		Trace:  "$8100",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 10)
	test.ExpectEquality(t, res.Samples, 10*headless.DefaultFreq/fceuxtest.FramesPerSecond)

	// the reset vector once and the NMI vector every frame
	test.ExpectEquality(t, res.HookCalls, 11)
	test.ExpectSuccess(t, res.TraceValid)
	test.ExpectEquality(t, res.TraceAddr, uint16(0x8100))
	test.ExpectEquality(t, res.TraceHits, 10)

	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "frames: 10\n"), out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "trace $8100: 10 hits\n"), out.String())
	test.ExpectFailure(t, fceux.Active())
}

func TestDeterminism(t *testing.T) {
	rom := romPath(t)
	opts := headless.Options{Frames: 30}

	a, err := headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), rom, opts)
	test.DemandSuccess(t, err)
	b, err := headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), rom, opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Video, b.Video)
	test.ExpectEquality(t, a.Audio, b.Audio)

	opts.Frames = 31
	c, err := headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), rom, opts)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, a.Video, c.Video)
}

func TestCheckSnapshot(t *testing.T) {
	rom := romPath(t)

	plain, err := headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), rom, headless.Options{Frames: 20})
	test.DemandSuccess(t, err)

	// the digests cover the frames of the first pass only
	checked, err := headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), rom, headless.Options{
		Frames:        20,
		CheckSnapshot: true,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, checked.Frames, 20)
	test.ExpectEquality(t, checked.Video, plain.Video)
	test.ExpectEquality(t, checked.Audio, plain.Audio)
}

// forgetful reports success when loading a snapshot but does not restore
// anything
type forgetful struct {
	*fceuxtest.Core
}

func (forgetful) SnapshotLoad(_ abi.Snapshot) abi.Status {
	return 1
}

func TestCheckSnapshotMismatch(t *testing.T) {
	_, err := headless.Run(&test.CompareWriter{}, forgetful{fceuxtest.NewCore()}, romPath(t), headless.Options{
		Frames:        20,
		CheckSnapshot: true,
	})
	test.ExpectSuccess(t, curated.Is(err, headless.SnapshotMismatch), err)
	test.ExpectFailure(t, fceux.Active())
}

func TestWav(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")
	_, err := headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), romPath(t), headless.Options{
		Frames:  5,
		Freq:    22050,
		WavFile: fn,
	})
	test.DemandSuccess(t, err)

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() >= int64(5*(22050/fceuxtest.FramesPerSecond)*2), info.Size())
}

func TestRunErrors(t *testing.T) {
	_, err := headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), romPath(t), headless.Options{})
	test.ExpectFailure(t, err)

	_, err = headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), romPath(t), headless.Options{
		Frames: 1,
		Trace:  "nowhere",
	})
	test.ExpectFailure(t, err)

	_, err = headless.Run(&test.CompareWriter{}, fceuxtest.NewCore(), romPath(t), headless.Options{
		Frames: 1,
		Freq:   12345,
	})
	test.ExpectSuccess(t, curated.Has(err, fceux.UnsupportedFrequency), err)
	test.ExpectFailure(t, fceux.Active())
}

func TestParseAddress(t *testing.T) {
	for s, a := range map[string]uint16{
		"$8000":  0x8000,
		"0xfffc": 0xfffc,
		"256":    256,
		" $10 ":  0x10,
	} {
		v, err := headless.ParseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, v, a, s)
	}

	for _, s := range []string{"", "$", "0x10000", "-1", "zz"} {
		_, err := headless.ParseAddress(s)
		test.ExpectFailure(t, err, s)
	}
}
