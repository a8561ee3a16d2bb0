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

// Package romloader resolves the ROM named on the command line to a file that
// the native core can open.
//
// The native core only understands paths to uncompressed ROM files. A Loader
// accepts local files, HTTP URLs and archives (zip, 7z, gzip, tar.gz and rar)
// and, when necessary, writes the ROM to a temporary file:
//
//	ld := romloader.NewLoader("games.7z")
//	pth, err := ld.Path()
//	if err != nil {
//		return err
//	}
//	defer ld.Close()
//
// Archives and iNES or FDS headers are detected by their magic bytes and
// failing that by their file extension. The first file in an archive with one of the extensions listed
// in FileExtensions is used.
package romloader
