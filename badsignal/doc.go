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

// Package badsignal implements the "bad signal" post-process effect. The
// effect imitates a poorly tuned analogue television: rows of the image are
// displaced horizontally, the red and blue channels are separated, every
// other row is darkened and static noise is added.
//
// Images returned by Filter.Apply() are taken from a pool and should be given
// back with Filter.Release() once they have been used.
package badsignal
