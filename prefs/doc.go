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

// Package prefs facilitates the storing of preference values on disk.
//
// A preference value is one of the types Bool, Int, Float, String or Generic.
// The zero value of each type is ready to use. A value is associated with a
// Disk instance with the Add() function and a key:
//
//	var fullscreen prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("screen.fullscreen", &fullscreen)
//
// The file format is a simple list of key/value pairs, separated by the ::
// token, one pair per line. Keys are sorted. The first line of the file is
// WarningBoilerPlate.
//
// Saving a Disk instance does not remove entries written by other Disk
// instances to the same file. Entries not known to the Disk instance are
// carried forward unchanged.
//
// After values have been loaded from disk they are overridden by values on
// the command line stack (see PushCommandLineStack()). Command line values are
// never written back to disk unless Save() is called explicitly after the
// value has been changed.
package prefs
