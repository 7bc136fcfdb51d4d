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

package screen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gravitron/gravitron/prefs"
	"github.com/gravitron/gravitron/screen"
	"github.com/gravitron/gravitron/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p, err := screen.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Settings(), screen.NewSettings())
}

func TestPreferencesRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := screen.NewPreferences(fn)
	test.DemandSuccess(t, err)

	// missing file is created on load
	test.ExpectSuccess(t, p.Load())
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	s := screen.Settings{
		WindowWidth:  960,
		WindowHeight: 720,
		Fullscreen:   true,
		UseVSync:     false,
		Stretch:      screen.StretchInteger,
		LinearFilter: true,
		BadSignal:    true,
	}
	test.ExpectSuccess(t, p.Update(s))
	test.ExpectSuccess(t, p.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "screen.windowsize :: 960,720\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "screen.stretch :: 2\n"))

	q, err := screen.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.Settings(), s)

	test.ExpectSuccess(t, q.SetDefaults())
	test.ExpectEquality(t, q.Settings(), screen.NewSettings())
}

func TestPreferencesInvalid(t *testing.T) {
	p, err := screen.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Stretch.Set(3))
	test.ExpectFailure(t, p.Stretch.Set(-1))
	test.ExpectEquality(t, p.Settings().Stretch, screen.StretchAspect)

	test.ExpectFailure(t, p.WindowSize.Set("640"))
	test.ExpectFailure(t, p.WindowSize.Set("0,480"))
	test.ExpectFailure(t, p.WindowSize.Set("a,b"))
	test.ExpectSuccess(t, p.WindowSize.Set("800, 600"))
	test.ExpectEquality(t, p.Settings().WindowWidth, 800)
	test.ExpectEquality(t, p.Settings().WindowHeight, 600)
}

func TestPreferencesPartialLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	data := strings.Join([]string{
		prefs.WarningBoilerPlate,
		"screen.badsignal :: true",
		"screen.fullscreen :: true",
		"screen.linearfilter :: true",
		"screen.stretch :: 7",
		"screen.vsync :: false",
		"screen.windowsize :: 800,600",
	}, "\n") + "\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	expected := screen.Settings{
		WindowWidth:  800,
		WindowHeight: 600,
		Fullscreen:   true,
		UseVSync:     true,
		Stretch:      screen.StretchAspect,
		LinearFilter: true,
		BadSignal:    true,
	}

	// the outcome must not depend on the order the file is read in
	for range 20 {
		p, err := screen.NewPreferences(fn)
		test.DemandSuccess(t, err)

		prefs.PushCommandLineStack("screen.vsync::true")
		err = p.Load()
		prefs.PopCommandLineStack()

		test.ExpectFailure(t, err)
		test.ExpectEquality(t, p.Settings(), expected)
	}
}
