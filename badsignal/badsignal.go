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

package badsignal

import (
	"image"
	"image/draw"
	"sync"

	"github.com/gravitron/gravitron/random"
)

// Filter applies the bad signal effect.
type Filter struct {
	rnd *random.Random

	// probability that any single row is displaced
	Jitter float64

	// the largest displacement of a jittered row, in pixels
	JitterAmount int

	// distance in pixels between the red and blue channels
	Separation int

	// brightness of the darkened rows. one is no darkening
	Scanline float64

	// probability that any single pixel is replaced with static
	Noise float64

	// the source image is normalised to RGBA before the effect is applied
	scratch *image.RGBA

	pool        sync.Pool
	outstanding int
}

// NewFilter is the preferred method of initialisation for the Filter type.
func NewFilter(rnd *random.Random) *Filter {
	if rnd == nil {
		rnd = random.NewRandom()
	}
	return &Filter{
		rnd:          rnd,
		Jitter:       0.05,
		JitterAmount: 3,
		Separation:   1,
		Scanline:     0.8,
		Noise:        0.02,
	}
}

func (f *Filter) get(bounds image.Rectangle) *image.RGBA {
	if v := f.pool.Get(); v != nil {
		img := v.(*image.RGBA)
		if img.Bounds() == bounds {
			return img
		}
	}
	return image.NewRGBA(bounds)
}

// Outstanding returns the number of images returned by Apply() that have not
// been released.
func (f *Filter) Outstanding() int {
	return f.outstanding
}

// Release returns an image created by Apply() to the pool. Images not
// created by Apply() are ignored.
func (f *Filter) Release(img image.Image) {
	if o, ok := img.(*output); ok && !o.released {
		o.released = true
		f.outstanding--
		f.pool.Put(o.RGBA)
	}
}

// output wraps the pooled image so that Release() can recognise it.
type output struct {
	*image.RGBA
	released bool
}

// Apply the effect to the image. The source image is not changed.
func (f *Filter) Apply(src image.Image) image.Image {
	b := src.Bounds()
	if b.Empty() {
		return src
	}

	if f.scratch == nil || f.scratch.Bounds() != b {
		f.scratch = image.NewRGBA(b)
	}
	draw.Draw(f.scratch, b, src, b.Min, draw.Src)

	dst := f.get(b)
	f.outstanding++

	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		var shift int
		if f.JitterAmount > 0 && f.rnd.Float64() < f.Jitter {
			shift = f.rnd.Intn(f.JitterAmount*2+1) - f.JitterAmount
		}

		dark := 1.0
		if (y-b.Min.Y)%2 == 1 {
			dark = f.Scanline
		}

		srow := f.scratch.Pix[f.scratch.PixOffset(b.Min.X, y):]
		drow := dst.Pix[dst.PixOffset(b.Min.X, y):]

		for x := range w {
			sx := clamp(x-shift, w)
			i := x * 4

			if f.Noise > 0 && f.rnd.Float64() < f.Noise {
				a := srow[sx*4+3]
				v := uint8(f.rnd.Intn(int(a) + 1))
				drow[i] = v
				drow[i+1] = v
				drow[i+2] = v
				drow[i+3] = a
				continue
			}

			r := srow[clamp(sx-f.Separation, w)*4]
			g := srow[sx*4+1]
			bl := srow[clamp(sx+f.Separation, w)*4+2]
			a := srow[sx*4+3]

			// the image is premultiplied so channels must not exceed alpha
			drow[i] = min(darken(r, dark), a)
			drow[i+1] = min(darken(g, dark), a)
			drow[i+2] = min(darken(bl, dark), a)
			drow[i+3] = a
		}
	}

	return &output{RGBA: dst}
}

func clamp(x int, w int) int {
	if x < 0 {
		return 0
	}
	if x >= w {
		return w - 1
	}
	return x
}

func darken(c uint8, dark float64) uint8 {
	return uint8(max(min(float64(c)*dark, 255), 0))
}
