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

package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"sync/atomic"

	// image formats registered with image.Decode()
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gravitron/gravitron/archivefs"
	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/logger"
)

// Sentinal errors.
const (
	LoadError   = "assets: %s: %v"
	DecodeError = "assets: decode: %v"
)

// Store loads assets from the root path.
type Store struct {
	root string

	// the number of buffers returned by LoadAssetToMemory() that have not yet
	// been passed to FreeMemory()
	outstanding atomic.Int64
}

// NewStore is the preferred method of initialisation for the Store type. The
// root is a directory or an archive, or a directory inside an archive.
func NewStore(root string) *Store {
	return &Store{
		root: root,
	}
}

func (s *Store) String() string {
	return s.root
}

// LoadAssetToMemory returns the contents of the named asset. The name is
// relative to the root of the store and always uses the forward slash
// separator.
//
// The returned memory should be released with FreeMemory() once it is no
// longer required.
func (s *Store) LoadAssetToMemory(name string) ([]byte, error) {
	pth := filepath.Join(s.root, filepath.FromSlash(name))

	b, err := archivefs.ReadFile(pth)
	if err != nil {
		return nil, curated.Errorf(LoadError, name, err)
	}

	s.outstanding.Add(1)
	logger.Logf(logger.Allow, "assets", "loaded %s (%d bytes)", name, len(b))

	return b, nil
}

// FreeMemory releases memory returned by LoadAssetToMemory(). The slice is
// set to nil. Calling FreeMemory() on a nil slice has no effect.
func (s *Store) FreeMemory(mem *[]byte) {
	if mem == nil || *mem == nil {
		return
	}
	*mem = nil
	s.outstanding.Add(-1)
}

// Outstanding returns the number of buffers that have been loaded but not
// freed.
func (s *Store) Outstanding() int {
	return int(s.outstanding.Load())
}

// Decode24 decodes image data and returns it as packed 24-bit RGB, three
// bytes per pixel with no padding between rows. Also returns the width and
// height of the image.
func (s *Store) Decode24(data []byte) ([]byte, int, int, error) {
	return Decode24(data)
}

// Decode24 decodes image data and returns it as packed 24-bit RGB. Any alpha
// channel is composited onto black.
func Decode24(data []byte) ([]byte, int, int, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, curated.Errorf(DecodeError, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, 0, 0, curated.Errorf(DecodeError, fmt.Errorf("empty image"))
	}

	// normalise the image to RGBA with the origin at zero
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Over)

	w := b.Dx()
	h := b.Dy()
	rgb := make([]byte, w*h*3)
	for y := range h {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		dst := rgb[y*w*3 : (y+1)*w*3]
		for x := range w {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}

	return rgb, w, h, nil
}
