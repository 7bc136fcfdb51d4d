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
	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/menu"
	"github.com/gravitron/gravitron/platform"
	"github.com/gravitron/gravitron/screen"
	"github.com/gravitron/gravitron/testcard"
	"github.com/gravitron/gravitron/version"
)

// session drives a Screen with frames from the test card and services
// events from the platform.
type session struct {
	scr    *screen.Screen
	events platform.EventSource
	mnu    *menu.Menu
	card   *testcard.TestCard

	frameNum     int
	flipVertical bool
	quit         bool
}

func newSession(scr *screen.Screen, events platform.EventSource) *session {
	sess := &session{
		scr:    scr,
		events: events,
		mnu:    menu.NewMenu(scr),
		card:   testcard.NewTestCard(screen.LogicalWidth, screen.LogicalHeight, version.Title()),
	}
	scr.SetNotify(sess.mnu)
	return sess
}

// handle a single event.
func (sess *session) handle(ev platform.Event) {
	switch ev := ev.(type) {
	case platform.EventQuit:
		sess.quit = true

	case platform.EventResized:
		// the new size is retrieved from the window by ResizeScreen()
		sess.scr.ResizeScreen(screen.Unset, screen.Unset)

	case platform.EventKey:
		if sess.mnu.IsOpen() {
			switch ev.Key {
			case platform.KeyUp:
				sess.mnu.Up()
				return
			case platform.KeyDown:
				sess.mnu.Down()
				return
			case platform.KeyReturn:
				sess.mnu.Activate()
				return
			case platform.KeyEscape:
				sess.mnu.Close()
				return
			}
		}

		switch ev.Key {
		case platform.KeyEscape:
			sess.quit = true
		case platform.KeyM:
			sess.mnu.Toggle(menu.NameDisplayOptions)
		case platform.KeyF11:
			sess.scr.ToggleFullScreen()
		case platform.KeyF10:
			sess.scr.ToggleStretchMode()
		case platform.KeyF9:
			sess.scr.ToggleLinearFilter()
		case platform.KeyF8:
			sess.scr.ToggleVSync()
		case platform.KeyF7:
			sess.scr.ToggleBadSignal()
		case platform.KeyF6:
			if sess.scr.IsWindowed() {
				sess.scr.ResizeToNearestMultiple()
			}
		case platform.KeyF5:
			sess.flipVertical = !sess.flipVertical
			logger.Logf(logger.Allow, "gravitron", "flip mode: %v", sess.flipVertical)
		}
	}
}

// step services pending events and presents the next frame. returns false
// if the session should end.
func (sess *session) step() bool {
	if sess.events != nil {
		for _, ev := range sess.events.PollEvents() {
			sess.handle(ev)
		}
	}

	if sess.quit || interrupted.Load() {
		return false
	}

	var overlay *testcard.Overlay
	if sess.mnu.IsOpen() {
		overlay = &testcard.Overlay{
			Title:    sess.mnu.Current().String(),
			Lines:    sess.mnu.Items(),
			Selected: sess.mnu.Selected(),
		}
	}

	img := sess.card.Frame(sess.frameNum, overlay)
	sess.scr.UpdateScreen(img, nil)
	sess.scr.FlipScreen(sess.flipVertical)
	sess.frameNum++

	return true
}
