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
	"fmt"
	"strconv"
	"strings"

	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/paths"
	"github.com/gravitron/gravitron/prefs"
)

// PreferencesFile is the name of the file in the resource path that stores
// the screen preferences.
const PreferencesFile = "preferences"

// Preferences persist Settings between sessions.
type Preferences struct {
	dsk *prefs.Disk

	windowWidth  int
	windowHeight int

	WindowSize   *prefs.Generic
	Fullscreen   prefs.Bool
	VSync        prefs.Bool
	Stretch      prefs.Int
	LinearFilter prefs.Bool
	BadSignal    prefs.Bool
}

func (p *Preferences) String() string {
	return p.Settings().String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the preferences file in the resource
// path is used.
func NewPreferences(path string) (*Preferences, error) {
	if path == "" {
		var err error
		path, err = paths.ResourcePath("", PreferencesFile)
		if err != nil {
			return nil, fmt.Errorf("screen: preferences: %w", err)
		}
	}

	p := &Preferences{}
	p.WindowSize = prefs.NewGeneric(
		func(v prefs.Value) error {
			s := v.(string)
			if s == "" {
				p.windowWidth = LogicalWidth
				p.windowHeight = LogicalHeight
				return nil
			}
			w, h, err := parseWindowSize(s)
			if err != nil {
				return err
			}
			p.windowWidth = w
			p.windowHeight = h
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", p.windowWidth, p.windowHeight)
		},
	)

	p.Stretch.SetHookPre(func(v prefs.Value) error {
		if !StretchMode(v.(int)).Valid() {
			return fmt.Errorf("screen: preferences: invalid stretch mode (%d)", v.(int))
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("screen: preferences: %w", err)
	}

	for k, v := range map[string]interface {
		fmt.Stringer
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
	}{
		"screen.windowsize":   p.WindowSize,
		"screen.fullscreen":   &p.Fullscreen,
		"screen.vsync":        &p.VSync,
		"screen.stretch":      &p.Stretch,
		"screen.linearfilter": &p.LinearFilter,
		"screen.badsignal":    &p.BadSignal,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, fmt.Errorf("screen: preferences: %w", err)
		}
	}

	return p, nil
}

func parseWindowSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("screen: preferences: window size must be w,h (%q)", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("screen: preferences: window width: %w", err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("screen: preferences: window height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("screen: preferences: window size must be positive (%dx%d)", w, h)
	}
	return w, h, nil
}

// SetDefaults reverts all preferences to the values returned by NewSettings().
func (p *Preferences) SetDefaults() error {
	return p.Update(NewSettings())
}

// Load preferences from disk. A missing preferences file is not an error and
// the current values are saved in its place.
func (p *Preferences) Load() error {
	err := p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Settings returns the preferences as a Settings value suitable for use with
// NewScreen().
func (p *Preferences) Settings() Settings {
	return Settings{
		WindowWidth:  p.windowWidth,
		WindowHeight: p.windowHeight,
		Fullscreen:   p.Fullscreen.Get().(bool),
		UseVSync:     p.VSync.Get().(bool),
		Stretch:      StretchMode(p.Stretch.Get().(int)),
		LinearFilter: p.LinearFilter.Get().(bool),
		BadSignal:    p.BadSignal.Get().(bool),
	}
}

// Update preferences with the settings from a running Screen. Use
// GetSettings() to retrieve the current settings from the Screen.
func (p *Preferences) Update(s Settings) error {
	if err := p.WindowSize.Set(fmt.Sprintf("%d,%d", s.WindowWidth, s.WindowHeight)); err != nil {
		return err
	}
	if err := p.Fullscreen.Set(s.Fullscreen); err != nil {
		return err
	}
	if err := p.VSync.Set(s.UseVSync); err != nil {
		return err
	}
	if err := p.Stretch.Set(int(s.Stretch)); err != nil {
		return err
	}
	if err := p.LinearFilter.Set(s.LinearFilter); err != nil {
		return err
	}
	return p.BadSignal.Set(s.BadSignal)
}
