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

package libfceux

// the preamble of a file containing an export must not contain definitions

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"

	"github.com/gofceux/gofceux/abi"
)

// called by the C trampoline installed with HookBeforeExec(). userdata is the
// value of the cgo.Handle that was installed.
//
//export goHookBeforeExec
func goHookBeforeExec(userdata C.uintptr_t, addr C.uint16_t) {
	if userdata == 0 {
		return
	}
	if h, ok := cgo.Handle(userdata).Value().(abi.Hook); ok {
		h.BeforeExec(uint16(addr))
	}
}
