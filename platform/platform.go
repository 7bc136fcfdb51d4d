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

package platform

import "image"

// Sentinal errors.
const (
	Unsupported = "platform: %s is not supported"
)

// ScaleQuality is the filter used when a texture is scaled onto the window.
// The quality is fixed at the time the texture is created.
type ScaleQuality int

// List of valid ScaleQuality values.
const (
	ScaleNearest ScaleQuality = iota
	ScaleLinear
)

func (q ScaleQuality) String() string {
	switch q {
	case ScaleNearest:
		return "nearest"
	case ScaleLinear:
		return "linear"
	}
	return "unknown"
}

// Flip describes how a texture is flipped when it is copied to the window.
type Flip int

// List of valid Flip values.
const (
	FlipNone Flip = iota
	FlipVertical
)

// WindowSetup describes the window to be created by CreateWindowAndRenderer().
type WindowSetup struct {
	Width  int
	Height int

	// the window should be created hidden. it will be shown by a later call to
	// Window.Show()
	Hidden bool

	Resizable bool
	HighDPI   bool
}

// Binding is the entry point to a windowing library.
type Binding interface {
	// hints apply to resources created after the hint has been set
	SetScaleQuality(ScaleQuality) error
	SetVSyncHint(bool) error

	CreateWindowAndRenderer(WindowSetup) (Window, Renderer, error)

	// surface is always 32bit ARGB8888
	CreateSurface(width, height int) (Surface, error)
}

// Window is a single window created by a Binding.
type Window interface {
	SetTitle(string)

	// rgb is packed 24bit data, three bytes per pixel
	SetIcon(rgb []byte, width, height int) error

	// fullscreen is the desktop fullscreen mode. the display mode is not
	// changed
	SetFullscreen(bool) error

	SetSize(width, height int)
	Center()
	Show()
	Destroy() error
}

// Renderer draws textures to a Window.
type Renderer interface {
	// the size of the drawable area in device pixels
	OutputSize() (int, int, error)

	// a logical size makes the renderer scale the drawing to fit the output,
	// preserving the aspect ratio of the logical size
	SetLogicalSize(width, height int) error

	// restrict the logical size scaling to integer multiples
	SetIntegerScale(bool) error

	// change vsync on a live renderer. returns Unsupported if the renderer
	// cannot do this
	SetVSync(bool) error

	// a streaming ARGB8888 texture. the scale quality in force at the time of
	// creation is used when the texture is drawn
	CreateTexture(width, height int) (Texture, error)

	// copy all of the texture or, if src is not nil, a sub-rectangle of the
	// texture, to the whole of the logical area
	Copy(tex Texture, src *image.Rectangle, flip Flip) error

	Present()
	Clear() error
	Destroy() error
}

// Texture is an image that lives with the Renderer.
type Texture interface {
	// update the entire texture with ARGB8888 pixel data. pitch is the length
	// of one row in bytes
	Update(pixels []byte, pitch int) error
	Destroy() error
}

// Surface is an image that lives in main memory.
type Surface interface {
	// pixels are native endian ARGB8888 words
	Pixels() []byte
	Pitch() int
	Width() int
	Height() int
	Free()
}
