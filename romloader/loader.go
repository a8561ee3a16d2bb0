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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/logger"
)

const logTag = "romloader"

// FileExtensions is the list of file extensions that are recognised as NES
// ROM files.
var FileExtensions = [...]string{".nes", ".fds", ".unf", ".unif", ".nsf"}

// maximum size of a ROM. archives are not limited but their contents are
const maxROMSize = 8 * 1024 * 1024

// Loader is used to specify the ROM to load.
type Loader struct {
	// filename of the ROM, archive or URL
	Filename string

	// basename of the ROM file. for archives this is the name of the file
	// inside the archive. set after a successful call to Load()
	Name string

	// sha1 of the ROM data. set after a successful call to Load()
	Hash string

	// copy of the loaded data
	Data []byte

	// path to pass to the native core. either the Filename or the temporary
	// file
	path string
	temp bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the name of the ROM without the file extension.
func (ld Loader) ShortName() string {
	name := ld.Name
	if name == "" {
		name = filepath.Base(ld.Filename)
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data. Filenames with a URL scheme of http or https are
// downloaded. Everything else is treated as a local file.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		err = ld.download()
	default:
		err = ld.open(ld.Filename)
	}

	if err != nil {
		return err
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	logger.Logf(logger.Allow, logTag, "loaded %s (%d bytes, sha1 %s)", ld.Name, len(ld.Data), ld.Hash)

	return nil
}

func (ld *Loader) download() error {
	resp, err := http.Get(ld.Filename)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return curated.Errorf("romloader: %s: %s", ld.Filename, resp.Status)
	}

	// downloads are written to a temporary file and then treated like any
	// other local file so that archives are handled the same way
	ext := filepath.Ext(resp.Request.URL.Path)
	if strings.HasSuffix(strings.ToLower(resp.Request.URL.Path), ".tar.gz") {
		ext = ".tar.gz"
	}
	f, err := os.CreateTemp("", "gofceux-download-*"+ext)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	// the download limit is generous because archives can be larger than
	// the ROM they contain
	_, err = io.Copy(f, io.LimitReader(resp.Body, 4*maxROMSize))
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	if err := ld.open(f.Name()); err != nil {
		return err
	}

	// a raw ROM is named after the URL and not the temporary file
	if ld.Name == filepath.Base(f.Name()) {
		ld.Name = path.Base(resp.Request.URL.Path)
	}

	return nil
}

// open the local file and extract the ROM if it is an archive.
func (ld *Loader) open(filename string) error {
	data, name, raw, err := load(filename)
	if err != nil {
		return err
	}

	ld.Data = data
	ld.Name = name

	// raw local files can be passed to the native core directly
	if raw && filename == ld.Filename {
		ld.path = ld.Filename
	}

	return nil
}

// Path loads the ROM if necessary and returns a path to an uncompressed ROM
// file. The path is either the original file or a temporary file that will be
// removed by Close().
func (ld *Loader) Path() (string, error) {
	if err := ld.Load(); err != nil {
		return "", err
	}

	if ld.path != "" {
		return ld.path, nil
	}

	f, err := os.CreateTemp("", "gofceux-*-"+ld.Name)
	if err != nil {
		return "", curated.Errorf("romloader: %v", err)
	}
	defer f.Close()

	if _, err := f.Write(ld.Data); err != nil {
		os.Remove(f.Name())
		return "", curated.Errorf("romloader: %v", err)
	}

	ld.path = f.Name()
	ld.temp = true
	logger.Logf(logger.Allow, logTag, "extracted %s to %s", ld.Name, ld.path)

	return ld.path, nil
}

// Close removes any temporary file created by Path(). The Loader can be used
// again after Close().
func (ld *Loader) Close() error {
	if !ld.temp {
		return nil
	}

	pth := ld.path
	ld.path = ""
	ld.temp = false

	if err := os.Remove(pth); err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	return nil
}
