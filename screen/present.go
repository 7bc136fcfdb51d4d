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
	"image/draw"

	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/platform"
)

// UpdateScreen copies the image to the logical surface. The logical surface
// is cleared first. If rect is not nil the image is placed with its top-left
// corner at rect.Min. The size of rect is ignored and the image is clipped to
// the logical surface.
//
// If the bad signal effect is enabled the effect is applied to a copy of the
// image before it is copied. A nil image leaves the logical surface clear.
func (scr *Screen) UpdateScreen(buffer image.Image, rect *image.Rectangle) {
	scr.checkThread("UpdateScreen")

	if scr.logical == nil {
		return
	}

	scr.logical.clear()

	if buffer == nil {
		return
	}

	src := buffer
	if scr.badSignalEffect && scr.filter != nil {
		src = scr.filter.Apply(buffer)
		defer scr.filter.Release(src)
	}

	var at image.Point
	if rect != nil {
		at = rect.Min
	}

	sb := src.Bounds()
	dr := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(scr.logical, dr, src, sb.Min, draw.Over)
}

// FlipScreen presents the logical surface in the window and then clears the
// logical surface, ready for the next frame. The image is presented upside
// down if flipVertical is true.
func (scr *Screen) FlipScreen(flipVertical bool) {
	scr.checkThread("FlipScreen")

	if scr.renderer == nil || scr.surface == nil {
		return
	}

	if scr.texture != nil {
		if err := scr.texture.Update(scr.surface.Pixels(), scr.surface.Pitch()); err != nil {
			logger.Logf(logger.Allow, "screen", "could not update texture: %v", err)
		}

		var src *image.Rectangle
		if scr.isFiltered {
			r := filterSubrect
			src = &r
		}

		flip := platform.FlipNone
		if flipVertical {
			flip = platform.FlipVertical
		}

		if err := scr.renderer.Copy(scr.texture, src, flip); err != nil {
			logger.Logf(logger.Allow, "screen", "could not copy texture: %v", err)
		}
	}

	scr.renderer.Present()

	if err := scr.renderer.Clear(); err != nil {
		logger.Logf(logger.Allow, "screen", "could not clear renderer: %v", err)
	}

	scr.logical.clear()
}
