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

package screen_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/gravitron/gravitron/platform/headless"
	"github.com/gravitron/gravitron/screen"
	"github.com/gravitron/gravitron/test"
)

// a logical sized image with a red top half and a green bottom half. the
// top-left pixel is white.
func testCard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, screen.LogicalWidth, screen.LogicalHeight))
	for y := range screen.LogicalHeight {
		for x := range screen.LogicalWidth {
			if y < screen.LogicalHeight/2 {
				img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{G: 255, A: 255})
			}
		}
	}
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func framesEqual(a, b *image.RGBA) bool {
	if a == nil || b == nil || a.Bounds() != b.Bounds() {
		return false
	}
	return string(a.Pix) == string(b.Pix)
}

// with a window the same size as the logical surface, the presented frame is
// an exact copy of the image.
func TestPresentCopy(t *testing.T) {
	b := headless.NewBinding()
	scr := newScreen(t, b, screen.NewSettings())

	card := testCard()
	scr.UpdateScreen(card, nil)
	scr.FlipScreen(false)

	f := b.Frame()
	test.DemandSuccess(t, f != nil)
	test.ExpectEquality(t, f.Bounds(), image.Rect(0, 0, 320, 240))
	test.ExpectSuccess(t, framesEqual(f, card))

	// the logical surface is cleared after every flip
	scr.FlipScreen(false)
	f = b.Frame()
	test.ExpectEquality(t, rgbaAt(f, 0, 0), color.RGBA{A: 255})
	test.ExpectEquality(t, rgbaAt(f, 160, 200), color.RGBA{A: 255})
}

func TestPresentFlipped(t *testing.T) {
	b := headless.NewBinding()
	scr := newScreen(t, b, screen.NewSettings())

	scr.UpdateScreen(testCard(), nil)
	scr.FlipScreen(true)

	f := b.Frame()
	test.ExpectEquality(t, rgbaAt(f, 10, 10), color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, rgbaAt(f, 10, 230), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, rgbaAt(f, 0, 239), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestUpdateAtPosition(t *testing.T) {
	b := headless.NewBinding()
	scr := newScreen(t, b, screen.NewSettings())

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	// the size of the rectangle is ignored
	scr.UpdateScreen(img, &image.Rectangle{Min: image.Pt(315, 100), Max: image.Pt(316, 101)})
	scr.FlipScreen(false)

	f := b.Frame()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	test.ExpectEquality(t, rgbaAt(f, 315, 100), white)
	test.ExpectEquality(t, rgbaAt(f, 319, 109), white)
	test.ExpectEquality(t, rgbaAt(f, 314, 100), black)
	test.ExpectEquality(t, rgbaAt(f, 315, 110), black)
}

func TestUpdateNil(t *testing.T) {
	b := headless.NewBinding()
	scr := newScreen(t, b, screen.NewSettings())

	scr.UpdateScreen(testCard(), nil)
	scr.UpdateScreen(nil, nil)
	scr.FlipScreen(false)

	f := b.Frame()
	test.ExpectEquality(t, rgbaAt(f, 10, 10), color.RGBA{A: 255})
}

// passThrough is a filter that does nothing.
type passThrough struct {
	applied  int
	released int
}

func (p *passThrough) Apply(img image.Image) image.Image {
	p.applied++
	return img
}

func (p *passThrough) Release(image.Image) {
	p.released++
}

func TestBadSignalPassThrough(t *testing.T) {
	b := headless.NewBinding()
	scr := newScreen(t, b, screen.NewSettings())

	scr.UpdateScreen(testCard(), nil)
	scr.FlipScreen(false)
	plain := b.Frame()

	p := &passThrough{}
	scr.SetFilter(p)
	scr.ToggleBadSignal()
	scr.UpdateScreen(testCard(), nil)
	scr.FlipScreen(false)

	test.ExpectEquality(t, p.applied, 1)
	test.ExpectEquality(t, p.released, 1)
	test.ExpectSuccess(t, framesEqual(plain, b.Frame()))

	// the filter is not used when the effect is off
	scr.ToggleBadSignal()
	scr.UpdateScreen(testCard(), nil)
	test.ExpectEquality(t, p.applied, 1)
}

func TestBadSignalEffect(t *testing.T) {
	b := headless.NewBinding()
	scr := newScreen(t, b, screen.NewSettings())

	scr.UpdateScreen(testCard(), nil)
	scr.FlipScreen(false)
	plain := b.Frame()

	scr.ToggleBadSignal()
	scr.UpdateScreen(testCard(), nil)
	scr.FlipScreen(false)
	test.ExpectFailure(t, framesEqual(plain, b.Frame()))
}

func TestPresentFiltered(t *testing.T) {
	b := headless.NewBinding()
	settings := screen.NewSettings()
	settings.LinearFilter = true
	settings.WindowWidth = 640
	settings.WindowHeight = 480
	scr := newScreen(t, b, settings)

	scr.UpdateScreen(testCard(), nil)
	scr.FlipScreen(false)

	f := b.Frame()
	test.DemandSuccess(t, f != nil)
	test.ExpectEquality(t, f.Bounds(), image.Rect(0, 0, 640, 480))

	// the outermost pixels of the logical surface are not shown so the white
	// pixel in the corner is not visible
	c := rgbaAt(f, 0, 0)
	test.ExpectSuccess(t, c.R > 250 && c.G < 5 && c.B < 5)
	c = rgbaAt(f, 320, 470)
	test.ExpectSuccess(t, c.R < 5 && c.G > 250 && c.B < 5)
}

func TestPresentAfterDestroy(t *testing.T) {
	b := headless.NewBinding()
	scr, err := screen.NewScreen(b, nil, screen.NewSettings())
	test.DemandSuccess(t, err)
	scr.Destroy()

	b.ResetCalls()
	scr.UpdateScreen(testCard(), nil)
	scr.FlipScreen(false)
	scr.ResizeScreen(640, 480)
	test.ExpectEquality(t, len(b.Journal()), 0)
}
