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

package headless

import (
	"fmt"
	"image"

	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/platform"
)

// Sentinal errors.
const (
	InjectedFailure = "headless: %s: injected failure"
	InvalidArgument = "headless: %s: %v"
)

// the default desktop size is used as the window size in fullscreen mode.
const (
	defaultDesktopWidth  = 1920
	defaultDesktopHeight = 1080
)

// Binding implements the platform.Binding and platform.EventSource
// interfaces.
type Binding struct {
	scaleQuality platform.ScaleQuality
	vsyncHint    bool

	desktopWidth  int
	desktopHeight int
	pixelDensity  int
	minWidth      int
	minHeight     int
	liveVSync     bool

	failures map[string]bool
	calls    map[string]int
	journal  []string

	window   *Window
	renderer *Renderer

	events []platform.Event

	// the most recently presented frame
	frame *image.RGBA
}

// NewBinding is the preferred method of initialisation for the Binding type.
func NewBinding() *Binding {
	return &Binding{
		desktopWidth:  defaultDesktopWidth,
		desktopHeight: defaultDesktopHeight,
		pixelDensity:  1,
		minWidth:      1,
		minHeight:     1,
		liveVSync:     true,
		failures:      make(map[string]bool),
		calls:         make(map[string]int),
	}
}

// SetDesktopSize changes the size of the desktop. Only affects windows that
// subsequently enter fullscreen mode or are centred.
func (b *Binding) SetDesktopSize(width, height int) {
	b.desktopWidth = width
	b.desktopHeight = height
}

// SetPixelDensity sets the number of device pixels per window point for
// windows created with the HighDPI flag.
func (b *Binding) SetPixelDensity(density int) {
	b.pixelDensity = max(density, 1)
}

// SetMinimumSize sets the smallest size a window can be.
func (b *Binding) SetMinimumSize(width, height int) {
	b.minWidth = max(width, 1)
	b.minHeight = max(height, 1)
}

// SetLiveVSync sets whether the renderer can change vsync after it has been
// created. If not, Renderer.SetVSync() returns the platform.Unsupported
// error.
func (b *Binding) SetLiveVSync(supported bool) {
	b.liveVSync = supported
}

// Fail causes all subsequent calls to the named operation to fail.
func (b *Binding) Fail(op string) {
	b.failures[op] = true
}

// Recover reverses the effect of a previous call to Fail().
func (b *Binding) Recover(op string) {
	delete(b.failures, op)
}

// Calls returns the number of times the named operation has been called,
// including calls that failed.
func (b *Binding) Calls(op string) int {
	return b.calls[op]
}

// ResetCalls sets all call counts to zero and empties the journal.
func (b *Binding) ResetCalls() {
	clear(b.calls)
	b.journal = b.journal[:0]
}

// Journal returns the names of all operations in the order they were called.
func (b *Binding) Journal() []string {
	return append([]string(nil), b.journal...)
}

// call records the use of an operation and returns an error if a failure has
// been injected for it.
func (b *Binding) call(op string) error {
	b.calls[op]++
	b.journal = append(b.journal, op)
	if b.failures[op] {
		return curated.Errorf(InjectedFailure, op)
	}
	return nil
}

// Window returns the most recently created window. Returns nil if no window
// has been created or if it has been destroyed.
func (b *Binding) Window() *Window {
	return b.window
}

// Renderer returns the most recently created renderer. Returns nil if no
// renderer has been created or if it has been destroyed.
func (b *Binding) Renderer() *Renderer {
	return b.renderer
}

// ScaleQuality returns the current scale quality hint.
func (b *Binding) ScaleQuality() platform.ScaleQuality {
	return b.scaleQuality
}

// VSyncHint returns the current vsync hint.
func (b *Binding) VSyncHint() bool {
	return b.vsyncHint
}

// Frame returns a copy of the most recently presented frame. Returns nil if
// nothing has been presented.
func (b *Binding) Frame() *image.RGBA {
	if b.frame == nil {
		return nil
	}
	f := image.NewRGBA(b.frame.Bounds())
	copy(f.Pix, b.frame.Pix)
	return f
}

// PushEvent adds an event to the queue returned by PollEvents().
func (b *Binding) PushEvent(ev platform.Event) {
	b.events = append(b.events, ev)
}

// PollEvents implements the platform.EventSource interface.
func (b *Binding) PollEvents() []platform.Event {
	ev := b.events
	b.events = nil
	if ev == nil {
		return []platform.Event{}
	}
	return ev
}

// SetScaleQuality implements the platform.Binding interface.
func (b *Binding) SetScaleQuality(q platform.ScaleQuality) error {
	if err := b.call("SetScaleQuality"); err != nil {
		return err
	}
	b.scaleQuality = q
	return nil
}

// SetVSyncHint implements the platform.Binding interface.
func (b *Binding) SetVSyncHint(v bool) error {
	if err := b.call("SetVSyncHint"); err != nil {
		return err
	}
	b.vsyncHint = v
	return nil
}

// CreateWindowAndRenderer implements the platform.Binding interface.
func (b *Binding) CreateWindowAndRenderer(setup platform.WindowSetup) (platform.Window, platform.Renderer, error) {
	if err := b.call("CreateWindowAndRenderer"); err != nil {
		return nil, nil, err
	}
	if setup.Width <= 0 || setup.Height <= 0 {
		return nil, nil, curated.Errorf(InvalidArgument, "CreateWindowAndRenderer",
			fmt.Errorf("window size %dx%d", setup.Width, setup.Height))
	}

	win := &Window{
		binding:   b,
		width:     max(setup.Width, b.minWidth),
		height:    max(setup.Height, b.minHeight),
		visible:   !setup.Hidden,
		resizable: setup.Resizable,
		density:   1,
	}
	if setup.HighDPI {
		win.density = b.pixelDensity
	}

	rnd := &Renderer{
		binding: b,
		window:  win,
		vsync:   b.vsyncHint,
	}

	b.window = win
	b.renderer = rnd

	return win, rnd, nil
}

// CreateSurface implements the platform.Binding interface.
func (b *Binding) CreateSurface(width, height int) (platform.Surface, error) {
	if err := b.call("CreateSurface"); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidArgument, "CreateSurface",
			fmt.Errorf("surface size %dx%d", width, height))
	}
	return &Surface{
		binding: b,
		width:   width,
		height:  height,
		pixels:  make([]byte, width*height*4),
	}, nil
}
