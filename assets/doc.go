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

// Package assets loads game assets into memory. The asset root can be a
// directory or an archive file such as a zip or 7z file (see the archivefs
// package).
//
// Images are decoded by Decode24() into packed 24-bit RGB data, which is the
// form required by the window icon. Supported image formats are PNG, GIF,
// JPEG, BMP and WebP.
package assets
