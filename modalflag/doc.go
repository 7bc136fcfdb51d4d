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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode has its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(). If
// sub-modes have been added with AddSubModes() then the first argument
// after the flags is compared to the list of sub-modes (case insensitive). If
// it does not match then the first sub-mode in the list is the selected mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "HEADLESS")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		fullscreen := md.AddBool("fullscreen", false, "start in fullscreen mode")
//		...
//	}
//
// Flags for the new mode are added after the call to NewMode() and parsed by
// another call to Parse().
package modalflag
