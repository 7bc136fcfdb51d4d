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
	"image"
	"runtime"

	"github.com/gravitron/gravitron/assert"
	"github.com/gravitron/gravitron/badsignal"
	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/notifications"
	"github.com/gravitron/gravitron/platform"
	"github.com/gravitron/gravitron/version"
)

// The size of the logical surface.
const (
	LogicalWidth  = 320
	LogicalHeight = 240
)

// the size of the window when it is first created. the window is hidden
// until it has been resized to the requested size.
const (
	initialWindowWidth  = 640
	initialWindowHeight = 480
)

// the icon asset loaded by NewScreen().
const iconAsset = "icon.png"

// Sentinal errors.
const (
	DeviceError = "screen: could not create %s: %v"
)

// the area of the logical surface that is shown when linear filtering is
// enabled. the outermost pixels are not shown because linear filtering blends
// them with the edge of the texture.
var filterSubrect = image.Rect(1, 1, LogicalWidth-1, LogicalHeight-1)

// Assets is used to load the window icon.
type Assets interface {
	// the memory returned by LoadAssetToMemory() is given back with
	// FreeMemory()
	LoadAssetToMemory(name string) ([]byte, error)
	FreeMemory(mem *[]byte)

	// decode image data to packed 24bit RGB. returns the width and height
	Decode24(data []byte) ([]byte, int, int, error)
}

// Filter implements the bad signal effect.
type Filter interface {
	// Apply must not change the image it is given
	Apply(image.Image) image.Image

	// Release is called with every image returned by Apply() once it has
	// been used. Images that were not created by Apply() must be ignored
	Release(image.Image)
}

// Screen is the output of the game.
type Screen struct {
	binding platform.Binding
	assets  Assets

	window   platform.Window
	renderer platform.Renderer
	texture  platform.Texture
	surface  platform.Surface

	// the surface as a draw.Image
	logical *logicalSurface

	isWindowed      bool
	stretchMode     StretchMode
	isFiltered      bool
	vsync           bool
	badSignalEffect bool

	// the size of the window in windowed mode. updated by every call to
	// ResizeScreen() with a concrete size
	rememberedWidth  int
	rememberedHeight int

	filter Filter
	notify notifications.Notify

	thread       assert.Thread
	threadWarned bool
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The assets argument can be nil, in which case the window has no icon.
func NewScreen(binding platform.Binding, assets Assets, settings Settings) (*Screen, error) {
	scr := &Screen{
		binding:          binding,
		assets:           assets,
		isWindowed:       !settings.Fullscreen,
		stretchMode:      settings.Stretch,
		isFiltered:       settings.LinearFilter,
		vsync:            settings.UseVSync,
		badSignalEffect:  settings.BadSignal,
		rememberedWidth:  LogicalWidth,
		rememberedHeight: LogicalHeight,
		filter:           badsignal.NewFilter(nil),
		thread:           assert.NewThread(),
	}

	if !scr.stretchMode.Valid() {
		logger.Logf(logger.Allow, "screen", "stretch mode %s is not valid. using %s", scr.stretchMode, StretchAspect)
		scr.stretchMode = StretchAspect
	}

	if err := binding.SetScaleQuality(scr.scaleQuality()); err != nil {
		logger.Log(logger.Allow, "screen", err)
	}
	if err := binding.SetVSyncHint(scr.vsync); err != nil {
		logger.Log(logger.Allow, "screen", err)
	}

	var err error

	scr.window, scr.renderer, err = binding.CreateWindowAndRenderer(platform.WindowSetup{
		Width:     initialWindowWidth,
		Height:    initialWindowHeight,
		Hidden:    true,
		Resizable: true,
		HighDPI:   true,
	})
	if err != nil {
		return nil, curated.Errorf(DeviceError, "window", err)
	}

	scr.window.SetTitle(version.Title())
	scr.loadIcon()

	scr.surface, err = binding.CreateSurface(LogicalWidth, LogicalHeight)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(DeviceError, "surface", err)
	}
	scr.logical = &logicalSurface{srf: scr.surface, format: ARGB8888}

	scr.texture, err = scr.renderer.CreateTexture(LogicalWidth, LogicalHeight)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(DeviceError, "texture", err)
	}

	scr.ResizeScreen(settings.WindowWidth, settings.WindowHeight)

	return scr, nil
}

// loadIcon sets the window icon. any problem is logged and the window is left
// without an icon. the icon is not set on macOS, where the application bundle
// provides it.
func (scr *Screen) loadIcon() {
	if scr.assets == nil || runtime.GOOS == "darwin" {
		return
	}

	mem, err := scr.assets.LoadAssetToMemory(iconAsset)
	if err != nil {
		logger.Log(logger.Allow, "screen", err)
		return
	}

	rgb, w, h, err := scr.assets.Decode24(mem)
	scr.assets.FreeMemory(&mem)
	if err != nil {
		logger.Log(logger.Allow, "screen", err)
		return
	}

	if err := scr.window.SetIcon(rgb, w, h); err != nil {
		logger.Log(logger.Allow, "screen", err)
	}
}

// Destroy the screen. Resources are released in the reverse order of
// creation. The Screen should not be used after Destroy() has been called.
func (scr *Screen) Destroy() {
	scr.checkThread("Destroy")

	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			logger.Log(logger.Allow, "screen", err)
		}
		scr.texture = nil
	}

	if scr.surface != nil {
		scr.surface.Free()
		scr.surface = nil
		scr.logical = nil
	}

	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			logger.Log(logger.Allow, "screen", err)
		}
		scr.renderer = nil
	}

	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "screen", err)
		}
		scr.window = nil
	}
}

// GetSettings returns the current settings. The window size is the size of
// the window as reported by the platform.
func (scr *Screen) GetSettings() Settings {
	scr.checkThread("GetSettings")

	w, h := scr.GetWindowSize()
	return Settings{
		WindowWidth:  w,
		WindowHeight: h,
		Fullscreen:   !scr.isWindowed,
		UseVSync:     scr.vsync,
		Stretch:      scr.stretchMode,
		LinearFilter: scr.isFiltered,
		BadSignal:    scr.badSignalEffect,
	}
}

// GetWindowSize returns the size of the drawable area of the window in device
// pixels. Returns zero for both values if the size cannot be determined.
func (scr *Screen) GetWindowSize() (int, int) {
	if scr.renderer == nil {
		return 0, 0
	}

	w, h, err := scr.renderer.OutputSize()
	if err != nil {
		logger.Logf(logger.Allow, "screen", "could not get window size: %v", err)
		return 0, 0
	}

	return w, h
}

// GetFormat returns the pixel format of the logical surface.
func (scr *Screen) GetFormat() Format {
	return ARGB8888
}

func (scr *Screen) scaleQuality() platform.ScaleQuality {
	if scr.isFiltered {
		return platform.ScaleLinear
	}
	return platform.ScaleNearest
}

// checkThread logs the first time a function is called from the wrong
// goroutine.
func (scr *Screen) checkThread(op string) {
	if scr.threadWarned || scr.thread.IsCurrent() {
		return
	}
	scr.threadWarned = true
	logger.Logf(logger.Allow, "screen", "%s() called from a goroutine other than the one that created the screen", op)
}
