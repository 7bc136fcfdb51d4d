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

package headless_test

import (
	"encoding/binary"
	"image"
	"testing"

	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/platform"
	"github.com/gravitron/gravitron/platform/headless"
	"github.com/gravitron/gravitron/test"
)

func create(t *testing.T, b *headless.Binding, w, h int) (*headless.Window, *headless.Renderer) {
	t.Helper()
	win, rnd, err := b.CreateWindowAndRenderer(platform.WindowSetup{
		Width:     w,
		Height:    h,
		Hidden:    true,
		Resizable: true,
		HighDPI:   true,
	})
	test.DemandSuccess(t, err)
	return win.(*headless.Window), rnd.(*headless.Renderer)
}

func TestViewport(t *testing.T) {
	b := headless.NewBinding()
	win, rnd := create(t, b, 640, 480)

	// no logical size. viewport is the whole output
	test.ExpectEquality(t, rnd.Viewport(), image.Rect(0, 0, 640, 480))

	test.ExpectSuccess(t, rnd.SetLogicalSize(320, 240))
	test.ExpectEquality(t, rnd.Viewport(), image.Rect(0, 0, 640, 480))

	// wide window. pillarbox
	win.SetSize(800, 480)
	test.ExpectEquality(t, rnd.Viewport(), image.Rect(80, 0, 720, 480))

	// tall window. letterbox
	win.SetSize(640, 600)
	test.ExpectEquality(t, rnd.Viewport(), image.Rect(0, 60, 640, 540))

	// integer scaling
	test.ExpectSuccess(t, rnd.SetIntegerScale(true))
	win.SetSize(700, 500)
	test.ExpectEquality(t, rnd.Viewport(), image.Rect(30, 10, 670, 490))

	// integer scaling never goes below one
	win.SetSize(200, 100)
	test.ExpectEquality(t, rnd.Viewport(), image.Rect(-60, -70, 260, 170))
}

func TestPixelDensity(t *testing.T) {
	b := headless.NewBinding()
	b.SetPixelDensity(2)
	_, rnd := create(t, b, 320, 240)

	w, h, err := rnd.OutputSize()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)
}

func TestFullscreen(t *testing.T) {
	b := headless.NewBinding()
	b.SetDesktopSize(1280, 720)
	win, _ := create(t, b, 640, 480)

	test.ExpectSuccess(t, win.SetFullscreen(true))
	test.ExpectSuccess(t, win.IsFullscreen())
	w, h := win.Size()
	test.ExpectEquality(t, w, 1280)
	test.ExpectEquality(t, h, 720)

	// size changes in fullscreen mode apply when returning to windowed mode
	win.SetSize(800, 600)
	w, _ = win.Size()
	test.ExpectEquality(t, w, 1280)

	test.ExpectSuccess(t, win.SetFullscreen(false))
	w, h = win.Size()
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)

	win.Center()
	test.ExpectSuccess(t, win.IsCentred())
	x, y := win.Position()
	test.ExpectEquality(t, x, 240)
	test.ExpectEquality(t, y, 60)
}

func TestFailureInjection(t *testing.T) {
	b := headless.NewBinding()
	win, rnd := create(t, b, 640, 480)

	b.Fail("SetFullscreen")
	err := win.SetFullscreen(true)
	test.ExpectSuccess(t, curated.Is(err, headless.InjectedFailure))
	test.ExpectFailure(t, win.IsFullscreen())
	test.ExpectEquality(t, b.Calls("SetFullscreen"), 1)

	b.Recover("SetFullscreen")
	test.ExpectSuccess(t, win.SetFullscreen(true))
	test.ExpectEquality(t, b.Calls("SetFullscreen"), 2)

	b.Fail("SetLogicalSize")
	test.ExpectFailure(t, rnd.SetLogicalSize(320, 240))
	lw, lh := rnd.LogicalSize()
	test.ExpectEquality(t, lw, 0)
	test.ExpectEquality(t, lh, 0)

	b.ResetCalls()
	test.ExpectEquality(t, b.Calls("SetFullscreen"), 0)
}

func TestLiveVSync(t *testing.T) {
	b := headless.NewBinding()
	test.ExpectSuccess(t, b.SetVSyncHint(true))
	_, rnd := create(t, b, 640, 480)
	test.ExpectSuccess(t, rnd.VSync())

	test.ExpectSuccess(t, rnd.SetVSync(false))
	test.ExpectFailure(t, rnd.VSync())

	b.SetLiveVSync(false)
	err := rnd.SetVSync(true)
	test.ExpectSuccess(t, curated.Is(err, platform.Unsupported))
	test.ExpectFailure(t, rnd.VSync())
}

func TestTextureQuality(t *testing.T) {
	b := headless.NewBinding()
	_, rnd := create(t, b, 640, 480)

	test.ExpectSuccess(t, b.SetScaleQuality(platform.ScaleLinear))
	tex, err := rnd.CreateTexture(320, 240)
	test.DemandSuccess(t, err)

	// changing the hint does not affect existing textures
	test.ExpectSuccess(t, b.SetScaleQuality(platform.ScaleNearest))
	test.ExpectEquality(t, tex.(*headless.Texture).Quality(), platform.ScaleLinear)

	tex, err = rnd.CreateTexture(320, 240)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tex.(*headless.Texture).Quality(), platform.ScaleNearest)
}

// a 2x2 texture with a red top row and a blue bottom row, drawn to a 2x2
// window, upright and flipped.
func TestPresent(t *testing.T) {
	b := headless.NewBinding()
	_, rnd := create(t, b, 2, 2)
	test.ExpectEquality(t, b.Frame(), (*image.RGBA)(nil))

	tex, err := rnd.CreateTexture(2, 2)
	test.DemandSuccess(t, err)

	pix := make([]byte, 16)
	binary.NativeEndian.PutUint32(pix[0:], 0xffff0000)
	binary.NativeEndian.PutUint32(pix[4:], 0xffff0000)
	binary.NativeEndian.PutUint32(pix[8:], 0xff0000ff)
	binary.NativeEndian.PutUint32(pix[12:], 0xff0000ff)
	test.DemandSuccess(t, tex.Update(pix, 8))

	test.ExpectSuccess(t, rnd.SetLogicalSize(2, 2))
	test.ExpectSuccess(t, rnd.Copy(tex, nil, platform.FlipNone))
	rnd.Present()

	f := b.Frame()
	test.DemandSuccess(t, f != nil)
	r, _, bl, _ := f.At(0, 0).RGBA()
	test.ExpectEquality(t, r>>8, 0xff)
	test.ExpectEquality(t, bl>>8, 0x00)

	test.ExpectSuccess(t, rnd.Clear())
	test.ExpectSuccess(t, rnd.Copy(tex, nil, platform.FlipVertical))
	rnd.Present()

	f = b.Frame()
	r, _, bl, _ = f.At(0, 0).RGBA()
	test.ExpectEquality(t, r>>8, 0x00)
	test.ExpectEquality(t, bl>>8, 0xff)

	// destroyed textures cannot be copied
	test.ExpectSuccess(t, tex.Destroy())
	test.ExpectFailure(t, rnd.Copy(tex, nil, platform.FlipNone))
}

func TestEvents(t *testing.T) {
	b := headless.NewBinding()
	win, _ := create(t, b, 640, 480)

	test.ExpectEquality(t, len(b.PollEvents()), 0)

	b.PushEvent(platform.EventKey{Key: platform.KeyF11})
	win.Resize(800, 600)

	ev := b.PollEvents()
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality(t, ev[0], platform.Event(platform.EventKey{Key: platform.KeyF11}))
	test.ExpectEquality(t, ev[1], platform.Event(platform.EventResized{Width: 800, Height: 600}))
	test.ExpectEquality(t, len(b.PollEvents()), 0)
}

func TestDestroy(t *testing.T) {
	b := headless.NewBinding()
	win, rnd := create(t, b, 640, 480)

	s, err := b.CreateSurface(320, 240)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.Pixels()), 320*240*4)
	test.ExpectEquality(t, s.Pitch(), 320*4)
	s.Free()
	test.ExpectSuccess(t, s.(*headless.Surface).IsFreed())

	test.ExpectSuccess(t, rnd.Destroy())
	test.ExpectSuccess(t, win.Destroy())
	test.ExpectSuccess(t, b.Renderer() == nil)
	test.ExpectSuccess(t, b.Window() == nil)
	test.ExpectSuccess(t, win.IsDestroyed())
	test.ExpectSuccess(t, rnd.IsDestroyed())
}
