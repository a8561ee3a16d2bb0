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

package fceux_test

import (
	"testing"

	"github.com/gofceux/gofceux/fceux"
	"github.com/gofceux/gofceux/fceux/fceuxtest"
	"github.com/gofceux/gofceux/test"
)

// vectors used by the test ROM
const (
	nmiAddr   = 0x8100
	resetAddr = 0x8000
	irqAddr   = 0x8200
)

// create an instance with the stand-in core. the instance is destroyed at the
// end of the test
func newInstance(t *testing.T, hook fceux.Hook) (*fceux.Instance, *fceuxtest.Core) {
	t.Helper()
	core := fceuxtest.NewCore()
	ins, err := fceux.New(core, fceuxtest.WriteROM(t, nmiAddr, resetAddr, irqAddr), hook)
	test.DemandSuccess(t, err)
	t.Cleanup(ins.Destroy)
	return ins, core
}
