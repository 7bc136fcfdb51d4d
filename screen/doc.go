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

// Package screen manages the output of a fixed resolution game to a window.
//
// The game draws to a logical surface of 320x240 pixels. The Screen type
// copies that image to a window of any size, according to the current
// stretch mode:
//
//	StretchAspect	the image is scaled to fit, preserving its 4:3 aspect ratio
//	StretchFill	the image fills the whole window
//	StretchInteger	the image is scaled by a whole number only
//
// The window can be fullscreen or windowed. The windowed size is remembered
// so that it can be restored when leaving fullscreen mode.
//
// Each frame follows the same pattern:
//
//	scr.UpdateScreen(img, nil)
//	scr.FlipScreen(false)
//
// Operations do not return errors. Failures in the platform are logged and
// the operation is abandoned. The exception is NewScreen(), which returns an
// error if the window or any of the drawing resources could not be created.
//
// All functions must be called from the goroutine that called NewScreen().
package screen
