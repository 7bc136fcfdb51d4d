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
)

// Unset can be used for both arguments to ResizeScreen() to reapply the
// current mode without changing the remembered window size.
const Unset = -1

// ResizeScreen applies the current window mode and stretch mode. If x and y
// are not Unset they become the remembered window size, which is applied to
// the window in windowed mode. The window is shown once the resize has
// succeeded.
//
// A failure part of the way through is logged and the rest of the resize is
// abandoned. Nothing is rolled back.
func (scr *Screen) ResizeScreen(x, y int) {
	scr.checkThread("ResizeScreen")

	if scr.window == nil || scr.renderer == nil {
		return
	}

	concrete := x != Unset && y != Unset
	if concrete {
		scr.rememberedWidth = x
		scr.rememberedHeight = y
	}

	if scr.isWindowed {
		if err := scr.window.SetFullscreen(false); err != nil {
			logger.Logf(logger.Allow, "screen", "could not set the game to windowed mode: %v", err)
			return
		}
		if concrete {
			scr.window.SetSize(scr.rememberedWidth, scr.rememberedHeight)
			scr.window.Center()
		}
	} else {
		if err := scr.window.SetFullscreen(true); err != nil {
			logger.Logf(logger.Allow, "screen", "could not set the game to fullscreen mode: %v", err)
			return
		}
	}

	if scr.stretchMode == StretchFill {
		w, h := scr.GetWindowSize()
		if err := scr.renderer.SetLogicalSize(w, h); err != nil {
			logger.Logf(logger.Allow, "screen", "could not set logical size: %v", err)
			return
		}
		if err := scr.renderer.SetIntegerScale(false); err != nil {
			logger.Logf(logger.Allow, "screen", "could not set scale mode: %v", err)
			return
		}
	} else {
		if err := scr.renderer.SetLogicalSize(LogicalWidth, LogicalHeight); err != nil {
			logger.Logf(logger.Allow, "screen", "could not set logical size: %v", err)
			return
		}
		if err := scr.renderer.SetIntegerScale(scr.stretchMode == StretchInteger); err != nil {
			logger.Logf(logger.Allow, "screen", "could not set scale mode: %v", err)
			return
		}
	}

	scr.window.Show()
}

// ResizeToNearestMultiple resizes the window to the nearest size that is an
// exact multiple of the logical size. See NearestMultiple().
func (scr *Screen) ResizeToNearestMultiple() {
	scr.checkThread("ResizeToNearestMultiple")
	scr.ResizeScreen(NearestMultiple(scr.GetWindowSize()))
}

// NearestMultiple returns the size nearest to width and height that is a
// whole multiple of the logical size.
//
// The dimension that limits the scaling of the logical surface decides the
// multiple. Height is the limiting dimension if the size is wider than 4:3,
// otherwise it is width. That dimension is rounded to the nearest multiple of
// the logical size, with a value half way between two multiples being
// rounded up. The other dimension is calculated from it.
//
// A size smaller than half the logical size results in the logical size.
func NearestMultiple(width, height int) (int, int) {
	// comparing the aspect ratio using integers. width/height > 4/3
	heightLimited := width*LogicalHeight > height*LogicalWidth

	dim := width
	ratio := LogicalWidth
	if heightLimited {
		dim = height
		ratio = LogicalHeight
	}

	floor := dim / ratio * ratio
	ceiling := floor + ratio

	chosen := ceiling
	if dim-floor < ceiling-dim {
		chosen = floor
	}

	if chosen <= 0 {
		return LogicalWidth, LogicalHeight
	}

	if heightLimited {
		return chosen * LogicalWidth / LogicalHeight, chosen
	}
	return chosen, chosen / LogicalWidth * LogicalHeight
}
