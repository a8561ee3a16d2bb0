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

package logger

import (
	"bytes"
	"io"
)

const (
	ansiDimTag = "\033[2m"
	ansiNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// each line is dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var b bytes.Buffer

	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}
		i := bytes.Index(l, []byte(": "))
		if i < 0 {
			b.Write(l)
			continue
		}
		b.WriteString(ansiDimTag)
		b.Write(l[:i+1])
		b.WriteString(ansiNormal)
		b.Write(l[i+1:])
	}

	_, err := c.out.Write(b.Bytes())
	if err != nil {
		return 0, err
	}

	// report the number of bytes consumed from p, not the number written
	return len(p), nil
}
