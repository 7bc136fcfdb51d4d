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
	"fmt"
	"testing"

	"github.com/gravitron/gravitron/screen"
	"github.com/gravitron/gravitron/test"
)

func TestNearestMultiple(t *testing.T) {
	tests := []struct {
		w, h       int
		expW, expH int
	}{
		// exact multiples are unchanged
		{640, 480, 640, 480},
		{320, 240, 320, 240},

		// wider than 4:3. height decides
		{700, 500, 640, 480},
		{1000, 500, 640, 480},
		{1920, 1080, 1600, 1200},

		// narrower than 4:3. width decides
		{330, 800, 320, 240},
		{900, 900, 960, 720},

		// half way between two multiples rounds up
		{800, 600, 960, 720},
		{2000, 840, 1280, 960},

		// less than one unit
		{100, 100, 320, 240},
		{159, 119, 320, 240},
		{0, 0, 320, 240},
	}

	for _, tt := range tests {
		tag := fmt.Sprintf("%dx%d", tt.w, tt.h)
		w, h := screen.NearestMultiple(tt.w, tt.h)
		test.ExpectEquality(t, w, tt.expW, tag)
		test.ExpectEquality(t, h, tt.expH, tag)
	}
}

// every result must be an exact multiple of the logical size.
func TestNearestMultipleAspect(t *testing.T) {
	for w := 0; w < 2000; w += 37 {
		for h := 0; h < 1500; h += 29 {
			rw, rh := screen.NearestMultiple(w, h)
			tag := fmt.Sprintf("%dx%d -> %dx%d", w, h, rw, rh)
			test.ExpectEquality(t, rw*screen.LogicalHeight, rh*screen.LogicalWidth, tag)
			test.ExpectEquality(t, rw%screen.LogicalWidth, 0, tag)
			test.ExpectEquality(t, rh%screen.LogicalHeight, 0, tag)
		}
	}
}

func TestStretchMode(t *testing.T) {
	test.ExpectSuccess(t, screen.StretchAspect.Valid())
	test.ExpectSuccess(t, screen.StretchInteger.Valid())
	test.ExpectFailure(t, screen.StretchMode(3).Valid())
	test.ExpectFailure(t, screen.StretchMode(-1).Valid())
	test.ExpectEquality(t, screen.StretchFill.String(), "fill")
	test.ExpectEquality(t, screen.StretchMode(5).String(), "unknown (5)")
}

func TestDefaultSettings(t *testing.T) {
	s := screen.NewSettings()
	test.ExpectEquality(t, s.WindowWidth, 320)
	test.ExpectEquality(t, s.WindowHeight, 240)
	test.ExpectFailure(t, s.Fullscreen)
	test.ExpectSuccess(t, s.UseVSync)
	test.ExpectEquality(t, s.Stretch, screen.StretchAspect)
	test.ExpectFailure(t, s.LinearFilter)
	test.ExpectFailure(t, s.BadSignal)
}

func TestFormat(t *testing.T) {
	f := screen.ARGB8888
	test.ExpectEquality(t, f.MapRGBA(0x11, 0x22, 0x33, 0x44), uint32(0x44112233))

	r, g, b, a := f.GetRGBA(0x44112233)
	test.ExpectEquality(t, r, uint8(0x11))
	test.ExpectEquality(t, g, uint8(0x22))
	test.ExpectEquality(t, b, uint8(0x33))
	test.ExpectEquality(t, a, uint8(0x44))
}
