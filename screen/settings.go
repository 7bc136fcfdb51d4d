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

import "fmt"

// StretchMode describes how the logical surface is scaled to fit the window.
type StretchMode int

// List of valid StretchMode values. The order is significant and is the
// order in which ToggleStretchMode() cycles through the modes.
const (
	StretchAspect StretchMode = iota
	StretchFill
	StretchInteger

	numStretchModes
)

// Valid returns true if the stretch mode is one of the defined modes.
func (m StretchMode) Valid() bool {
	return m >= StretchAspect && m < numStretchModes
}

func (m StretchMode) String() string {
	switch m {
	case StretchAspect:
		return "aspect"
	case StretchFill:
		return "fill"
	case StretchInteger:
		return "integer"
	}
	return fmt.Sprintf("unknown (%d)", int(m))
}

// Settings for the screen. Used to initialise a new Screen and retrieved from
// a running Screen with GetSettings() so that they can be saved.
type Settings struct {
	// the size of the window when it is not in fullscreen mode
	WindowWidth  int
	WindowHeight int

	Fullscreen   bool
	UseVSync     bool
	Stretch      StretchMode
	LinearFilter bool
	BadSignal    bool
}

// NewSettings returns the default settings.
func NewSettings() Settings {
	return Settings{
		WindowWidth:  LogicalWidth,
		WindowHeight: LogicalHeight,
		UseVSync:     true,
		Stretch:      StretchAspect,
	}
}

func (s Settings) String() string {
	mode := "windowed"
	if s.Fullscreen {
		mode = "fullscreen"
	}
	return fmt.Sprintf("%dx%d %s stretch=%s linear=%v vsync=%v badsignal=%v",
		s.WindowWidth, s.WindowHeight, mode, s.Stretch, s.LinearFilter, s.UseVSync, s.BadSignal)
}
