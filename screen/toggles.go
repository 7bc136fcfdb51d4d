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
	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/notifications"
)

// SetNotify registers the observer that is told about changes to the display
// mode. Use nil to remove the observer.
func (scr *Screen) SetNotify(notify notifications.Notify) {
	scr.notify = notify
}

// SetFilter replaces the filter used for the bad signal effect. Use nil to
// disable the effect regardless of the BadSignal() setting.
func (scr *Screen) SetFilter(filter Filter) {
	scr.filter = filter
}

func (scr *Screen) sendNotice(notice notifications.Notice) {
	if scr.notify == nil {
		return
	}
	if err := scr.notify.Notify(notice); err != nil {
		logger.Logf(logger.Allow, "screen", "%s: %v", notice, err)
	}
}

// ToggleFullScreen switches between windowed and fullscreen mode.
func (scr *Screen) ToggleFullScreen() {
	scr.checkThread("ToggleFullScreen")
	scr.isWindowed = !scr.isWindowed
	scr.ResizeScreen(Unset, Unset)
	scr.sendNotice(notifications.NotifyDisplayModeChanged)
}

// ToggleStretchMode moves to the next stretch mode. After StretchInteger
// the mode returns to StretchAspect.
func (scr *Screen) ToggleStretchMode() {
	scr.checkThread("ToggleStretchMode")
	scr.stretchMode = (scr.stretchMode + 1) % numStretchModes
	scr.ResizeScreen(Unset, Unset)
	scr.sendNotice(notifications.NotifyStretchModeChanged)
}

// ToggleLinearFilter switches between linear and nearest neighbour scaling.
// The scale quality of a texture is fixed when it is created so the
// presentation texture is recreated.
func (scr *Screen) ToggleLinearFilter() {
	scr.checkThread("ToggleLinearFilter")

	scr.isFiltered = !scr.isFiltered

	if err := scr.binding.SetScaleQuality(scr.scaleQuality()); err != nil {
		logger.Log(logger.Allow, "screen", err)
	}

	if scr.renderer == nil {
		return
	}

	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			logger.Log(logger.Allow, "screen", err)
		}
		scr.texture = nil
	}

	tex, err := scr.renderer.CreateTexture(LogicalWidth, LogicalHeight)
	if err != nil {
		logger.Logf(logger.Allow, "screen", "could not create texture: %v", err)
		return
	}
	scr.texture = tex
}

// ToggleVSync switches vsync on or off. The setting does not change if the
// platform cannot change vsync on a running renderer.
func (scr *Screen) ToggleVSync() {
	scr.checkThread("ToggleVSync")

	if scr.renderer == nil {
		return
	}

	if err := scr.renderer.SetVSync(!scr.vsync); err != nil {
		logger.Logf(logger.Allow, "screen", "could not change vsync: %v", err)
		return
	}
	scr.vsync = !scr.vsync
}

// ToggleBadSignal switches the bad signal effect on or off.
func (scr *Screen) ToggleBadSignal() {
	scr.checkThread("ToggleBadSignal")
	scr.badSignalEffect = !scr.badSignalEffect
}

// IsWindowed returns true if the screen is not in fullscreen mode.
func (scr *Screen) IsWindowed() bool {
	return scr.isWindowed
}

// StretchMode returns the current stretch mode.
func (scr *Screen) StretchMode() StretchMode {
	return scr.stretchMode
}

// IsFiltered returns true if linear filtering is enabled.
func (scr *Screen) IsFiltered() bool {
	return scr.isFiltered
}

// VSync returns true if vsync is enabled.
func (scr *Screen) VSync() bool {
	return scr.vsync
}

// BadSignal returns true if the bad signal effect is enabled.
func (scr *Screen) BadSignal() bool {
	return scr.badSignalEffect
}

// RememberedSize returns the size of the window in windowed mode.
func (scr *Screen) RememberedSize() (int, int) {
	return scr.rememberedWidth, scr.rememberedHeight
}
