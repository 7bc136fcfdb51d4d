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

// Package paths contains functions to prepare paths for gravitron resources.
//
// The ResourcePath() function returns the correct path to a resource
// directory or file. If the directory ".gravitron" exists in the current
// working directory then that is used as the base. Otherwise the base is the
// "gravitron" directory in the user's configuration directory, as returned by
// os.UserConfigDir().
//
// Use UniqueFilename() to create a file name that is unlikely to clash with
// existing files, for example when saving a screenshot.
package paths
