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
	"image"

	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/platform"
)

// Window implements the platform.Window interface.
type Window struct {
	binding *Binding

	title string
	icon  *image.RGBA

	width  int
	height int
	x      int
	y      int

	centred   bool
	visible   bool
	resizable bool
	destroyed bool

	// device pixels per window point
	density int

	// the size of the window before it entered fullscreen mode
	fullscreen     bool
	windowedWidth  int
	windowedHeight int
}

// Title returns the current window title.
func (win *Window) Title() string {
	return win.title
}

// Icon returns the current window icon. Returns nil if no icon has been set.
func (win *Window) Icon() *image.RGBA {
	return win.icon
}

// Size returns the size of the window in window points.
func (win *Window) Size() (int, int) {
	return win.width, win.height
}

// Position returns the position of the top-left corner of the window on the
// desktop.
func (win *Window) Position() (int, int) {
	return win.x, win.y
}

// IsCentred returns true if the window has been centred and has not been
// resized since.
func (win *Window) IsCentred() bool {
	return win.centred
}

// IsVisible returns true if the window is being shown.
func (win *Window) IsVisible() bool {
	return win.visible
}

// IsFullscreen returns true if the window is in fullscreen mode.
func (win *Window) IsFullscreen() bool {
	return win.fullscreen
}

// IsDestroyed returns true if the window has been destroyed.
func (win *Window) IsDestroyed() bool {
	return win.destroyed
}

// Resize changes the size of the window as though the user had dragged the
// window border. A resized event is added to the event queue.
func (win *Window) Resize(width, height int) {
	if win.fullscreen || !win.resizable {
		return
	}
	win.width = max(width, win.binding.minWidth)
	win.height = max(height, win.binding.minHeight)
	win.centred = false
	win.binding.PushEvent(platform.EventResized{Width: win.width, Height: win.height})
}

// SetTitle implements the platform.Window interface.
func (win *Window) SetTitle(title string) {
	_ = win.binding.call("SetTitle")
	win.title = title
}

// SetIcon implements the platform.Window interface.
func (win *Window) SetIcon(rgb []byte, width, height int) error {
	if err := win.binding.call("SetIcon"); err != nil {
		return err
	}
	if width <= 0 || height <= 0 || len(rgb) < width*height*3 {
		return curated.Errorf(InvalidArgument, "SetIcon", "icon data is too short")
	}

	icon := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range width * height {
		icon.Pix[i*4] = rgb[i*3]
		icon.Pix[i*4+1] = rgb[i*3+1]
		icon.Pix[i*4+2] = rgb[i*3+2]
		icon.Pix[i*4+3] = 0xff
	}
	win.icon = icon

	return nil
}

// SetFullscreen implements the platform.Window interface.
func (win *Window) SetFullscreen(fullscreen bool) error {
	if err := win.binding.call("SetFullscreen"); err != nil {
		return err
	}

	if fullscreen == win.fullscreen {
		return nil
	}

	win.fullscreen = fullscreen
	if fullscreen {
		win.windowedWidth = win.width
		win.windowedHeight = win.height
		win.width = win.binding.desktopWidth
		win.height = win.binding.desktopHeight
		win.x = 0
		win.y = 0
	} else {
		win.width = win.windowedWidth
		win.height = win.windowedHeight
	}

	return nil
}

// SetSize implements the platform.Window interface. In fullscreen mode the
// new size is used when the window returns to windowed mode.
func (win *Window) SetSize(width, height int) {
	_ = win.binding.call("SetSize")

	width = max(width, win.binding.minWidth)
	height = max(height, win.binding.minHeight)

	if win.fullscreen {
		win.windowedWidth = width
		win.windowedHeight = height
		return
	}

	win.width = width
	win.height = height
	win.centred = false
}

// Center implements the platform.Window interface.
func (win *Window) Center() {
	_ = win.binding.call("Center")
	if win.fullscreen {
		return
	}
	win.x = (win.binding.desktopWidth - win.width) / 2
	win.y = (win.binding.desktopHeight - win.height) / 2
	win.centred = true
}

// Show implements the platform.Window interface.
func (win *Window) Show() {
	_ = win.binding.call("Show")
	win.visible = true
}

// Destroy implements the platform.Window interface.
func (win *Window) Destroy() error {
	if err := win.binding.call("Window.Destroy"); err != nil {
		return err
	}
	win.destroyed = true
	win.visible = false
	if win.binding.window == win {
		win.binding.window = nil
	}
	return nil
}
