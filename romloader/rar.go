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
	"io"
	"path/filepath"

	"github.com/gofceux/gofceux/curated"
	"github.com/nwaples/rardecode/v2"
)

func extractFromRAR(filename string) ([]byte, string, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf("romloader: rar: %v", err)
	}
	defer r.Close()

	for {
		hdr, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf("romloader: rar: %v", err)
		}

		if hdr.IsDir || !isROMFile(hdr.Name) {
			continue
		}

		data, err := limitedRead(r)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(hdr.Name), nil
	}

	return nil, "", curated.Errorf(NoROMFile)
}
