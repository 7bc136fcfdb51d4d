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

package screen

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/gravitron/gravitron/platform"
)

// logicalSurface presents the pixels of a platform.Surface as a draw.Image.
// The colour model is non-premultiplied, matching the ARGB8888 format.
type logicalSurface struct {
	srf    platform.Surface
	format Format
}

func (s *logicalSurface) ColorModel() color.Model {
	return color.NRGBAModel
}

func (s *logicalSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.srf.Width(), s.srf.Height())
}

func (s *logicalSurface) offset(x, y int) (int, bool) {
	if !(image.Point{x, y}.In(s.Bounds())) {
		return 0, false
	}
	return y*s.srf.Pitch() + x*s.format.BytesPerPixel, true
}

func (s *logicalSurface) At(x, y int) color.Color {
	return s.NRGBAAt(x, y)
}

// NRGBAAt returns the colour of the pixel at x, y.
func (s *logicalSurface) NRGBAAt(x, y int) color.NRGBA {
	i, ok := s.offset(x, y)
	if !ok {
		return color.NRGBA{}
	}
	r, g, b, a := s.format.GetRGBA(binary.NativeEndian.Uint32(s.srf.Pixels()[i:]))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (s *logicalSurface) Set(x, y int, c color.Color) {
	i, ok := s.offset(x, y)
	if !ok {
		return
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	binary.NativeEndian.PutUint32(s.srf.Pixels()[i:], s.format.MapRGBA(nc.R, nc.G, nc.B, nc.A))
}

// clear every pixel to zero, which is transparent black.
func (s *logicalSurface) clear() {
	clear(s.srf.Pixels())
}
