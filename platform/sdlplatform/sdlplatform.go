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

package sdlplatform

import (
	"image"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/platform"
)

// Binding implements the platform.Binding and platform.EventSource interfaces.
type Binding struct{}

// NewBinding initialises the SDL video subsystem.
func NewBinding() (*Binding, error) {
	// the SDL package calls LockOSThread() but we call it here too so that it
	// is clear that the binding must be used from this goroutine
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	v := sdl.Version{}
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	return &Binding{}, nil
}

// Quit shuts down SDL. No other function in this package should be called
// after Quit().
func (b *Binding) Quit() {
	sdl.Quit()
}

func setHint(name string, value string) error {
	if !sdl.SetHintWithPriority(name, value, sdl.HINT_OVERRIDE) {
		return curated.Errorf("sdl: could not set hint %s to %s", name, value)
	}
	return nil
}

// SetScaleQuality implements the platform.Binding interface.
func (b *Binding) SetScaleQuality(q platform.ScaleQuality) error {
	switch q {
	case platform.ScaleLinear:
		return setHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")
	default:
		return setHint(sdl.HINT_RENDER_SCALE_QUALITY, "nearest")
	}
}

// SetVSyncHint implements the platform.Binding interface.
func (b *Binding) SetVSyncHint(set bool) error {
	if set {
		return setHint(sdl.HINT_RENDER_VSYNC, "1")
	}
	return setHint(sdl.HINT_RENDER_VSYNC, "0")
}

// CreateWindowAndRenderer implements the platform.Binding interface.
func (b *Binding) CreateWindowAndRenderer(setup platform.WindowSetup) (platform.Window, platform.Renderer, error) {
	var flags uint32
	if setup.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	}
	if setup.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if setup.HighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}

	w, r, err := sdl.CreateWindowAndRenderer(int32(setup.Width), int32(setup.Height), flags)
	if err != nil {
		return nil, nil, curated.Errorf("sdl: %v", err)
	}

	return &window{win: w}, &renderer{rnd: r}, nil
}

// CreateSurface implements the platform.Binding interface.
func (b *Binding) CreateSurface(width, height int) (platform.Surface, error) {
	s, err := sdl.CreateRGBSurface(0, int32(width), int32(height), 32,
		0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}
	return &surface{srf: s}, nil
}

// PollEvents implements the platform.EventSource interface.
func (b *Binding) PollEvents() []platform.Event {
	events := []platform.Event{}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, platform.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			events = append(events, platform.EventKey{Key: translateKey(ev.Keysym.Sym)})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_RESIZED {
				events = append(events, platform.EventResized{
					Width:  int(ev.Data1),
					Height: int(ev.Data2),
				})
			}
		}
	}

	return events
}

func translateKey(k sdl.Keycode) platform.Key {
	switch k {
	case sdl.K_ESCAPE:
		return platform.KeyEscape
	case sdl.K_F5:
		return platform.KeyF5
	case sdl.K_F6:
		return platform.KeyF6
	case sdl.K_F7:
		return platform.KeyF7
	case sdl.K_F8:
		return platform.KeyF8
	case sdl.K_F9:
		return platform.KeyF9
	case sdl.K_F10:
		return platform.KeyF10
	case sdl.K_F11:
		return platform.KeyF11
	case sdl.K_m:
		return platform.KeyM
	case sdl.K_UP:
		return platform.KeyUp
	case sdl.K_DOWN:
		return platform.KeyDown
	case sdl.K_RETURN:
		return platform.KeyReturn
	}
	return platform.KeyOther
}

type window struct {
	win *sdl.Window
}

func (w *window) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *window) SetIcon(rgb []byte, width, height int) error {
	if len(rgb) < width*height*3 {
		return curated.Errorf("sdl: icon data is too short")
	}

	// the surface does not copy the pixel data. the data must remain valid
	// until the surface is freed
	s, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&rgb[0]),
		int32(width), int32(height), 24, int32(width*3), uint32(sdl.PIXELFORMAT_RGB24))
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	defer s.Free()

	w.win.SetIcon(s)
	runtime.KeepAlive(rgb)

	return nil
}

func (w *window) SetFullscreen(set bool) error {
	var flags uint32
	if set {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := w.win.SetFullscreen(flags); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

func (w *window) SetSize(width, height int) {
	w.win.SetSize(int32(width), int32(height))
}

func (w *window) Center() {
	w.win.SetPosition(int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED))
}

func (w *window) Show() {
	w.win.Show()
}

func (w *window) Destroy() error {
	if err := w.win.Destroy(); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

type renderer struct {
	rnd *sdl.Renderer
}

func (r *renderer) OutputSize() (int, int, error) {
	w, h, err := r.rnd.GetOutputSize()
	if err != nil {
		return 0, 0, curated.Errorf("sdl: %v", err)
	}
	return int(w), int(h), nil
}

func (r *renderer) SetLogicalSize(width, height int) error {
	if err := r.rnd.SetLogicalSize(int32(width), int32(height)); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

func (r *renderer) SetIntegerScale(set bool) error {
	if err := r.rnd.SetIntegerScale(set); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

// the renderer does not offer a way of changing vsync once it has been
// created. the swap interval of the underlying GL context is changed instead,
// which only works when the renderer is using the OpenGL driver.
func (r *renderer) SetVSync(set bool) error {
	i := 0
	if set {
		i = 1
	}
	if err := sdl.GLSetSwapInterval(i); err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)
		return curated.Errorf(platform.Unsupported, "changing vsync on a live renderer")
	}
	return nil
}

func (r *renderer) CreateTexture(width, height int) (platform.Texture, error) {
	t, err := r.rnd.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}
	return &texture{tex: t}, nil
}

func (r *renderer) Copy(tex platform.Texture, src *image.Rectangle, flip platform.Flip) error {
	t, ok := tex.(*texture)
	if !ok {
		return curated.Errorf("sdl: cannot copy texture of type %T", tex)
	}

	var sr *sdl.Rect
	if src != nil {
		sr = &sdl.Rect{
			X: int32(src.Min.X),
			Y: int32(src.Min.Y),
			W: int32(src.Dx()),
			H: int32(src.Dy()),
		}
	}

	f := sdl.FLIP_NONE
	if flip == platform.FlipVertical {
		f = sdl.FLIP_VERTICAL
	}

	if err := r.rnd.CopyEx(t.tex, sr, nil, 0, nil, f); err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	return nil
}

func (r *renderer) Present() {
	r.rnd.Present()
}

func (r *renderer) Clear() error {
	if err := r.rnd.Clear(); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

func (r *renderer) Destroy() error {
	if err := r.rnd.Destroy(); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

type texture struct {
	tex *sdl.Texture
}

func (t *texture) Update(pixels []byte, pitch int) error {
	if err := t.tex.Update(nil, pixels, pitch); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

func (t *texture) Destroy() error {
	if err := t.tex.Destroy(); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

type surface struct {
	srf *sdl.Surface
}

func (s *surface) Pixels() []byte {
	return s.srf.Pixels()
}

func (s *surface) Pitch() int {
	return int(s.srf.Pitch)
}

func (s *surface) Width() int {
	return int(s.srf.W)
}

func (s *surface) Height() int {
	return int(s.srf.H)
}

func (s *surface) Free() {
	s.srf.Free()
}
