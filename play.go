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

package main

import (
	"fmt"

	"github.com/gravitron/gravitron/assets"
	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/modalflag"
	"github.com/gravitron/gravitron/performance"
	"github.com/gravitron/gravitron/performance/limiter"
	"github.com/gravitron/gravitron/platform/sdlplatform"
	"github.com/gravitron/gravitron/screen"
)

func play(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	profile, done, err := opts.prepare()
	if err != nil {
		return err
	}
	defer done()

	pref, settings, err := opts.settings(md)
	if err != nil {
		return err
	}

	binding, err := sdlplatform.NewBinding()
	if err != nil {
		return err
	}
	defer binding.Quit()

	var ast screen.Assets
	if *opts.assets != "" {
		ast = assets.NewStore(*opts.assets)
	}

	scr, err := screen.NewScreen(binding, ast, settings)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	lmtr, err := limiter.NewFPSLimiter(*opts.fps)
	if err != nil {
		return err
	}
	defer lmtr.Stop()

	sess := newSession(scr, binding)

	err = performance.RunProfiler(profile, "play", func() error {
		for sess.step() {
			// the renderer does not wait for the display refresh when vsync
			// is off
			if !scr.VSync() {
				lmtr.Wait()
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	err = pref.Update(scr.GetSettings())
	if err != nil {
		return err
	}
	err = pref.Save()
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "gravitron", "saved settings: %s", pref)

	return nil
}
