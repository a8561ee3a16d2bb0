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

package romloader

// Sentinel error patterns for use with curated.Is().
const (
	NoROMFile         = "romloader: no ROM file found in archive"
	UnsupportedFormat = "romloader: unsupported file format: %s"
	FileTooLarge      = "romloader: file exceeds maximum size limit"
)
