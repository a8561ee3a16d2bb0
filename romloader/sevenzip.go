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

import (
	"path/filepath"

	"github.com/bodgit/sevenzip"
	"github.com/gofceux/gofceux/curated"
)

func extractFrom7z(filename string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf("romloader: 7z: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf("romloader: 7z: %v", err)
		}
		defer rc.Close()

		data, err := limitedRead(rc)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", curated.Errorf(NoROMFile)
}
