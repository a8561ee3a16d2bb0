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

// Error patterns for use with curated.Is().
const (
	// another instance is live. the existing instance must be destroyed
	// before a new one can be created
	AlreadyActive = "fceux: an instance is already active"

	// the ROM path cannot be passed to the native core
	InvalidPath = "fceux: rom path cannot be represented as a C string: %q"

	// the native core rejected the ROM
	InitFailed = "fceux: native init failed for %s"

	// the native core rejected a snapshot operation
	LoadFailed = "fceux: snapshot load failed"
	SaveFailed = "fceux: snapshot save failed"

	// the native core rejected the audio sample rate
	UnsupportedFrequency = "fceux: unsupported audio frequency: %d"
)

// log tag used by the package
const logTag = "fceux"
