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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofceux/gofceux/curated"
)

// magic bytes for format detection
var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip     = []byte{0x1f, 0x8b}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
	magicINES     = []byte{0x4e, 0x45, 0x53, 0x1a}
	magicFDS      = []byte{0x46, 0x44, 0x53, 0x1a}
)

type format int

const (
	formatUnknown format = iota
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

func (f format) String() string {
	switch f {
	case formatRaw:
		return "raw"
	case formatZIP:
		return "zip"
	case format7z:
		return "7z"
	case formatGzip:
		return "gzip"
	case formatRAR:
		return "rar"
	}
	return "unknown"
}

// load reads the ROM from the file, extracting it if the file is an archive.
// returns the ROM data, the name of the ROM file and whether the file was a
// raw ROM.
func load(filename string) ([]byte, string, bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", false, curated.Errorf("romloader: %v", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, "", false, curated.Errorf("romloader: %v", err)
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", false, curated.Errorf("romloader: %v", err)
	}

	var data []byte
	var name string

	ft := detectFormat(header, filename)
	switch ft {
	case formatRaw:
		data, err = limitedRead(f)
		name = filepath.Base(filename)
	case formatZIP:
		data, name, err = extractFromZIP(filename)
	case format7z:
		data, name, err = extractFrom7z(filename)
	case formatGzip:
		data, name, err = extractFromGzip(f, filename)
	case formatRAR:
		data, name, err = extractFromRAR(filename)
	default:
		return nil, "", false, curated.Errorf(UnsupportedFormat, filename)
	}

	if err != nil {
		return nil, "", false, err
	}

	if len(data) == 0 {
		return nil, "", false, curated.Errorf("romloader: %s is empty", name)
	}

	return data, name, ft == formatRaw, nil
}

// detectFormat uses the magic bytes in the header and then the file extension
// to decide the format of the file.
func detectFormat(header []byte, filename string) format {
	switch {
	case bytes.HasPrefix(header, magicZIP), bytes.HasPrefix(header, magicZIPEmpty):
		return formatZIP
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR
	case bytes.HasPrefix(header, magic7z):
		return format7z
	case bytes.HasPrefix(header, magicGzip):
		return formatGzip
	case bytes.HasPrefix(header, magicINES), bytes.HasPrefix(header, magicFDS):
		return formatRaw
	}

	lower := strings.ToLower(filename)
	switch filepath.Ext(lower) {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz", ".tgz":
		return formatGzip
	case ".rar":
		return formatRAR
	}

	if isROMFile(lower) {
		return formatRaw
	}

	return formatUnknown
}

// isROMFile checks whether the filename has one of the FileExtensions.
func isROMFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range FileExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// limitedRead reads no more than maxROMSize bytes.
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxROMSize+1))
	if err != nil {
		return nil, curated.Errorf("romloader: %v", err)
	}
	if len(data) > maxROMSize {
		return nil, curated.Errorf(FileTooLarge)
	}
	return data, nil
}
