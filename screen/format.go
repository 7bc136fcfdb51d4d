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

// Format describes the pixel layout of the logical surface.
type Format struct {
	BitsPerPixel  int
	BytesPerPixel int
	Rmask         uint32
	Gmask         uint32
	Bmask         uint32
	Amask         uint32
}

// ARGB8888 is the format of the logical surface. Pixels are stored as native
// endian 32bit words.
var ARGB8888 = Format{
	BitsPerPixel:  32,
	BytesPerPixel: 4,
	Rmask:         0x00ff0000,
	Gmask:         0x0000ff00,
	Bmask:         0x000000ff,
	Amask:         0xff000000,
}

// MapRGBA returns the pixel value for the colour.
func (f Format) MapRGBA(r, g, b, a uint8) uint32 {
	return place(r, f.Rmask) | place(g, f.Gmask) | place(b, f.Bmask) | place(a, f.Amask)
}

// GetRGBA returns the colour of the pixel value.
func (f Format) GetRGBA(p uint32) (r, g, b, a uint8) {
	return extract(p, f.Rmask), extract(p, f.Gmask), extract(p, f.Bmask), extract(p, f.Amask)
}

func shift(mask uint32) uint {
	var s uint
	for mask != 0 && mask&1 == 0 {
		mask >>= 1
		s++
	}
	return s
}

func place(v uint8, mask uint32) uint32 {
	return (uint32(v) << shift(mask)) & mask
}

func extract(p uint32, mask uint32) uint8 {
	return uint8((p & mask) >> shift(mask))
}
