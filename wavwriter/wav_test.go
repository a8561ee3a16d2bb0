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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gofceux/gofceux/test"
	"github.com/gofceux/gofceux/wavwriter"
)

func TestWavWriter(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(pth, 44100)
	test.DemandSuccess(t, err)

	aw.Frame(nil, []int32{0, 1000, -1000, 32767})

	// samples outside the 16 bit range are truncated
	aw.Frame(nil, []int32{0x12345})
	test.ExpectEquality(t, aw.Samples(), 5)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), 44100)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	test.DemandEquality(t, len(buf.Data), 5)
	test.ExpectEquality(t, buf.Data[1], 1000)
	test.ExpectEquality(t, buf.Data[2], -1000)
	test.ExpectEquality(t, buf.Data[3], 32767)
	test.ExpectEquality(t, buf.Data[4], 0x2345)
}

func TestReset(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "out.wav"), 48000)
	test.DemandSuccess(t, err)
	aw.Frame(nil, make([]int32, 800))
	aw.Reset()
	test.ExpectEquality(t, aw.Samples(), 0)
}

func TestBadFrequency(t *testing.T) {
	_, err := wavwriter.New("out.wav", 0)
	test.ExpectFailure(t, err)
}
