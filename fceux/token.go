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

package fceux

import (
	"sync"
	"sync/atomic"
)

// the exclusivity token. the mutex is only ever acquired with TryLock() and is
// held for the lifetime of the Instance.
var token sync.Mutex

// active is true while the token is held.
var active atomic.Bool

func acquireToken() bool {
	if !token.TryLock() {
		return false
	}
	active.Store(true)
	return true
}

func releaseToken() {
	active.Store(false)
	token.Unlock()
}

// Active returns true if an Instance is currently live.
func Active() bool {
	return active.Load()
}
