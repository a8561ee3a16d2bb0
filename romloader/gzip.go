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
	"archive/tar"
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofceux/gofceux/curated"
)

// extractFromGzip handles both plain gzip files and tar.gz archives. a plain
// gzip file is assumed to contain the ROM.
func extractFromGzip(r io.Reader, filename string) ([]byte, string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", curated.Errorf("romloader: gzip: %v", err)
	}
	defer gr.Close()

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return extractFromTar(gr)
	}

	data, err := limitedRead(gr)
	if err != nil {
		return nil, "", err
	}

	name := filepath.Base(filename)
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-3]
	}
	return data, name, nil
}

func extractFromTar(r io.Reader) ([]byte, string, error) {
	tr := tar.NewReader(r)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf("romloader: tar: %v", err)
		}

		if hdr.Typeflag != tar.TypeReg || !isROMFile(hdr.Name) {
			continue
		}

		data, err := limitedRead(tr)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(hdr.Name), nil
	}

	return nil, "", curated.Errorf(NoROMFile)
}
