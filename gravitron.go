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
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/modalflag"
	"github.com/gravitron/gravitron/performance"
	"github.com/gravitron/gravitron/prefs"
	"github.com/gravitron/gravitron/screen"
	"github.com/gravitron/gravitron/statsview"
	"github.com/gravitron/gravitron/version"
)

// the window system requires that events are handled by the thread that
// created the window. the main goroutine is locked to the main thread before
// main() is called and the frame loop runs in the main goroutine.
func init() {
	runtime.LockOSThread()
}

// set by the interrupt handler. checked by the frame loop every frame.
var interrupted atomic.Bool

// #mainthread
func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		interrupted.Store(true)
	}()

	os.Exit(launch(os.Args[1:]))
}

// launch returns the value to use with os.Exit().
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "HEADLESS")
	md.AdditionalHelp(version.Title())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "HEADLESS":
		err = runHeadless(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to all modes.
type options struct {
	fullscreen *bool
	stretch    *int
	linear     *bool
	vsync      *bool
	badsignal  *bool
	fps        *int
	statsview  *bool
	assets     *string
	prefs      *string
	prefsFile  *string
	profile    *string
	log        *bool
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		fullscreen: md.AddBool("fullscreen", false, "start in fullscreen mode"),
		stretch:    md.AddInt("stretch", 0, "stretch mode: 0 aspect, 1 fill, 2 integer"),
		linear:     md.AddBool("linear", false, "use linear filtering when scaling"),
		vsync:      md.AddBool("vsync", true, "synchronise with the display refresh"),
		badsignal:  md.AddBool("badsignal", false, "enable the bad signal effect"),
		fps:        md.AddInt("fps", 60, "frame rate when vsync is not in use"),
		statsview:  md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		assets:     md.AddString("assets", "", "directory or zip file containing assets"),
		prefs:      md.AddString("prefs", "", "preferences for this session: \"key::value; key::value\""),
		prefsFile:  md.AddString("prefsfile", "", "preferences file to use instead of the default"),
		profile:    md.AddString("profile", "NONE", "run with profiling: CPU, MEM, NONE (comma separated)"),
		log:        md.AddBool("log", false, "echo log to stdout"),
	}
}

// apply the options that have been set on the command line to the settings.
// options that have not been set leave the settings unchanged.
func (opts *options) apply(md *modalflag.Modes, s *screen.Settings) {
	md.Visit(func(flag string) {
		switch flag {
		case "fullscreen":
			s.Fullscreen = *opts.fullscreen
		case "stretch":
			s.Stretch = screen.StretchMode(*opts.stretch)
		case "linear":
			s.LinearFilter = *opts.linear
		case "vsync":
			s.UseVSync = *opts.vsync
		case "badsignal":
			s.BadSignal = *opts.badsignal
		}
	})
}

// load preferences and apply command line options to the result.
func (opts *options) settings(md *modalflag.Modes) (*screen.Preferences, screen.Settings, error) {
	p, err := screen.NewPreferences(*opts.prefsFile)
	if err != nil {
		return nil, screen.Settings{}, err
	}

	// a bad preferences value is not fatal. the values that loaded are still used
	if err := p.Load(); err != nil {
		logger.Log(logger.Allow, "gravitron", err)
	}

	s := p.Settings()
	opts.apply(md, &s)
	return p, s, nil
}

// prepare the ambient environment for a mode. the returned function should be
// called when the mode has ended.
func (opts *options) prepare() (performance.Profile, func(), error) {
	if *opts.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	profile, err := performance.ParseProfileString(*opts.profile)
	if err != nil {
		return performance.ProfileNone, nil, err
	}

	if *opts.statsview {
		statsview.Launch(os.Stdout)
	}

	if strings.TrimSpace(*opts.prefs) != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		return profile, func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}, nil
	}

	return profile, func() {}, nil
}
