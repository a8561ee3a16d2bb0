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

// Package screenshot converts the palette indexed video output of the
// emulation to an image and saves it to disk as a PNG file.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gofceux/gofceux/abi"
	"github.com/gofceux/gofceux/curated"
	"github.com/gofceux/gofceux/logger"
	"golang.org/x/image/draw"
)

// Palette is implemented by the fceux.Instance type.
type Palette interface {
	Palette(index uint8) (r uint8, g uint8, b uint8)
}

// Lookup is a colour for every possible pixel value.
type Lookup [256]color.NRGBA

// NewLookup builds the Lookup from the Palette. The palette of the native core
// never changes so the Lookup can be built once for the lifetime of the
// instance.
func NewLookup(pal Palette) *Lookup {
	var lu Lookup
	for i := range lu {
		r, g, b := pal.Palette(uint8(i))
		lu[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return &lu
}

// Convert palette indices into the RGBA pixel slice. The pix slice must be
// four times the length of the video slice.
func (lu *Lookup) Convert(pix []uint8, video []uint8) {
	for i, v := range video {
		c := lu[v]
		p := pix[i*4 : i*4+4 : i*4+4]
		p[0] = c.R
		p[1] = c.G
		p[2] = c.B
		p[3] = c.A
	}
}

// Screenshot keeps a copy of the most recent frame so that it can be saved on
// request.
type Screenshot struct {
	lookup *Lookup
	scale  int

	video    []uint8
	frameNum int
}

// New is the preferred method of initialisation for the Screenshot type. The
// scale value is the integer scaling applied when the image is saved.
func New(pal Palette, scale int) *Screenshot {
	return &Screenshot{
		lookup:   NewLookup(pal),
		scale:    max(scale, 1),
		video:    make([]uint8, abi.ScreenWidth*abi.ScreenHeight),
		frameNum: -1,
	}
}

// Frame has the same signature as fceux.FrameFunc. Only the video is used.
func (scr *Screenshot) Frame(video []uint8, _ []int32) {
	copy(scr.video, video)
	scr.frameNum++
}

// Image returns the most recent frame as an image with the scaling applied.
func (scr *Screenshot) Image() *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, abi.ScreenWidth, abi.ScreenHeight))
	scr.lookup.Convert(src.Pix, scr.video)
	if scr.scale == 1 {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, abi.ScreenWidth*scr.scale, abi.ScreenHeight*scr.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Save the most recent frame. The frame number and file extension are
// appended to the fileNameBase argument. The file must not already exist.
//
// Returns the name of the saved file.
func (scr *Screenshot) Save(fileNameBase string) (string, error) {
	if scr.frameNum < 0 {
		return "", curated.Errorf("screenshot: %v", "no frame to save")
	}

	imageName := fmt.Sprintf("%s_%d.png", fileNameBase, scr.frameNum)

	f, err := os.OpenFile(imageName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", curated.Errorf("screenshot: image file (%s) already exists", imageName)
		}
		return "", curated.Errorf("screenshot: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, scr.Image()); err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved %s", imageName)

	return imageName, nil
}
