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

// Package platform defines the interfaces between the screen and the
// windowing library. The screen package only ever talks to the windowing
// library through these interfaces.
//
// Two implementations exist. The sdlplatform package is the real binding,
// using SDL2. The headless package is a software implementation that is used
// for testing and for running without a display.
//
// All methods that can fail return an error. The screen logs these errors and
// abandons the current operation. A binding that does not support an
// operation returns the Unsupported error.
package platform
