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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/prefs"
	"github.com/gofceux/gofceux/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")

	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "ba")
	test.ExpectSuccess(t, v.Set("quux"))
	test.ExpectEquality(t, v.Get(), prefs.Value("qu"))
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set(" 99 "))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectFailure(t, w.Set(1.5))

	// failed Set() calls leave the value unchanged
	test.ExpectEquality(t, w.Get(), prefs.Value(99))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var scale prefs.Int
	var capped prefs.Bool
	test.DemandSuccess(t, dsk.Add("play.scale", &scale))
	test.DemandSuccess(t, dsk.Add("play.fpscap", &capped))
	test.DemandSuccess(t, scale.Set(2))
	test.DemandSuccess(t, capped.Set(true))

	// missing file is reported but the file is created
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpPrefFile(t, fn, "play.fpscap :: true\nplay.scale :: 2\n")

	// change values and load them back
	test.DemandSuccess(t, scale.Set(4))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get(), prefs.Value(2))

	// reset
	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, scale.Get(), prefs.Value(0))
	test.ExpectEquality(t, capped.Get(), prefs.Value(false))
}

func TestSharedFile(t *testing.T) {
	fn := tmpPrefFile(t)

	a, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var av prefs.Int
	test.DemandSuccess(t, a.Add("a.value", &av))
	test.DemandSuccess(t, av.Set(1))
	test.DemandSuccess(t, a.Save())

	b, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var bv prefs.String
	test.DemandSuccess(t, b.Add("b.value", &bv))
	test.DemandSuccess(t, bv.Set("hello world"))
	test.DemandSuccess(t, b.Save())

	// entries from the other disk are preserved
	cmpPrefFile(t, fn, "a.value :: 1\nb.value :: hello world\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var freq prefs.Int
	test.DemandSuccess(t, dsk.Add("audio.freq", &freq))
	test.DemandSuccess(t, freq.Set(44100))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("audio.freq::48000; other::value")

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, freq.Get(), prefs.Value(48000))

	// the used value has been removed from the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load(false))
	test.ExpectFailure(t, dsk.Save())
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("bad key", &v))
	test.ExpectFailure(t, dsk.Add("bad::key", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post []int
	v.SetHookPost(func(nv prefs.Value) error {
		post = append(post, nv.(int))
		return nil
	})

	refuse := errors.New("refused")
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return refuse
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(1))
	test.ExpectSuccess(t, errors.Is(v.Set(-1), refuse))
	test.ExpectSuccess(t, v.Set(2))

	test.ExpectEquality(t, v.Get(), prefs.Value(2))
	test.DemandEquality(t, len(post), 2)
	test.ExpectEquality(t, post[1], 2)
}
