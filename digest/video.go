// This file is part of Gravitron.
//
// Gravitron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gravitron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gravitron.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Video is an implementation of the Digest interface for presented frames.
// It is not safe for concurrent use.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// AddFrame adds the image to the digest. A nil image is ignored. The alpha
// channel is not included.
func (dig *Video) AddFrame(img image.Image) {
	if img == nil {
		return
	}

	b := img.Bounds()

	// length of pixels array contains enough room for the previous frames
	// digest value and the size of the frame
	l := len(dig.digest) + 8 + b.Dx()*b.Dy()*pixelDepth
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	i := copy(dig.pixels, dig.digest[:])

	// frames of different sizes with the same pixel data must not produce
	// the same digest
	w, h := b.Dx(), b.Dy()
	dig.pixels[i] = byte(w >> 24)
	dig.pixels[i+1] = byte(w >> 16)
	dig.pixels[i+2] = byte(w >> 8)
	dig.pixels[i+3] = byte(w)
	dig.pixels[i+4] = byte(h >> 24)
	dig.pixels[i+5] = byte(h >> 16)
	dig.pixels[i+6] = byte(h >> 8)
	dig.pixels[i+7] = byte(h)
	i += 8

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			dig.pixels[i] = byte(r >> 8)
			dig.pixels[i+1] = byte(g >> 8)
			dig.pixels[i+2] = byte(bl >> 8)
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
}
