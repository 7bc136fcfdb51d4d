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

package menu

import (
	"fmt"

	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/notifications"
	"github.com/gravitron/gravitron/screen"
)

// Display is the part of screen.Screen that the menu controls.
type Display interface {
	IsWindowed() bool
	StretchMode() screen.StretchMode
	IsFiltered() bool
	VSync() bool
	BadSignal() bool

	ToggleFullScreen()
	ToggleStretchMode()
	ToggleLinearFilter()
	ToggleVSync()
	ToggleBadSignal()
	ResizeToNearestMultiple()
}

// Name identifies a menu.
type Name int

// List of valid Name values.
const (
	NameNone Name = iota
	NameDisplayOptions
)

func (n Name) String() string {
	switch n {
	case NameNone:
		return "none"
	case NameDisplayOptions:
		return "display options"
	}
	return fmt.Sprintf("unknown (%d)", int(n))
}

// Item is a single entry in a menu.
type Item struct {
	Label    string
	activate func()
}

// Menu is the current menu and the selected item within it.
type Menu struct {
	display Display

	current  Name
	items    []Item
	selected int
}

// NewMenu is the preferred method of initialisation for the Menu type. The
// menu is initially closed.
func NewMenu(display Display) *Menu {
	return &Menu{
		display: display,
	}
}

// Notify implements the notifications.Notify interface.
func (mnu *Menu) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyDisplayModeChanged, notifications.NotifyStretchModeChanged:
		if mnu.current == NameDisplayOptions {
			mnu.create(mnu.current, true)
		}
	}
	return nil
}

// Open the named menu with the first item selected.
func (mnu *Menu) Open(name Name) {
	mnu.create(name, false)
}

// Close the current menu.
func (mnu *Menu) Close() {
	mnu.create(NameNone, false)
}

// Toggle between the named menu and no menu.
func (mnu *Menu) Toggle(name Name) {
	if mnu.current == name {
		mnu.Close()
	} else {
		mnu.Open(name)
	}
}

// Current returns the name of the open menu.
func (mnu *Menu) Current() Name {
	return mnu.current
}

// IsOpen returns true if any menu is open.
func (mnu *Menu) IsOpen() bool {
	return mnu.current != NameNone
}

// Items returns the labels of the current menu.
func (mnu *Menu) Items() []string {
	l := make([]string, len(mnu.items))
	for i, it := range mnu.items {
		l[i] = it.Label
	}
	return l
}

// Selected returns the index of the selected item.
func (mnu *Menu) Selected() int {
	return mnu.selected
}

// Up moves the selection to the previous item, wrapping to the last item.
func (mnu *Menu) Up() {
	if len(mnu.items) == 0 {
		return
	}
	mnu.selected--
	if mnu.selected < 0 {
		mnu.selected = len(mnu.items) - 1
	}
}

// Down moves the selection to the next item, wrapping to the first item.
func (mnu *Menu) Down() {
	if len(mnu.items) == 0 {
		return
	}
	mnu.selected = (mnu.selected + 1) % len(mnu.items)
}

// Activate the selected item.
func (mnu *Menu) Activate() {
	if mnu.selected >= len(mnu.items) {
		return
	}
	it := mnu.items[mnu.selected]
	logger.Logf(logger.Allow, "menu", "%s: %s", mnu.current, it.Label)
	it.activate()

	// not every action results in a notice so the labels are refreshed here
	if mnu.current != NameNone {
		mnu.create(mnu.current, true)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// create the items for the named menu. if samePosition is true then the
// selected item is preserved as far as possible.
func (mnu *Menu) create(name Name, samePosition bool) {
	mnu.current = name
	mnu.items = mnu.items[:0]

	switch name {
	case NameDisplayOptions:
		mode := "fullscreen"
		if mnu.display.IsWindowed() {
			mode = "windowed"
		}
		mnu.items = append(mnu.items,
			Item{Label: fmt.Sprintf("display mode: %s", mode), activate: mnu.display.ToggleFullScreen},
			Item{Label: fmt.Sprintf("scaling mode: %s", mnu.display.StretchMode()), activate: mnu.display.ToggleStretchMode},
		)

		// resizing the window only makes sense when there is a window
		if mnu.display.IsWindowed() {
			mnu.items = append(mnu.items,
				Item{Label: "resize to nearest", activate: mnu.display.ResizeToNearestMultiple},
			)
		}

		mnu.items = append(mnu.items,
			Item{Label: fmt.Sprintf("filter: %s", filterLabel(mnu.display.IsFiltered())), activate: mnu.display.ToggleLinearFilter},
			Item{Label: fmt.Sprintf("bad signal: %s", onOff(mnu.display.BadSignal())), activate: mnu.display.ToggleBadSignal},
			Item{Label: fmt.Sprintf("vsync: %s", onOff(mnu.display.VSync())), activate: mnu.display.ToggleVSync},
			Item{Label: "return", activate: mnu.Close},
		)
	}

	if !samePosition || mnu.selected >= len(mnu.items) {
		mnu.selected = 0
	}
}

func filterLabel(linear bool) string {
	if linear {
		return "linear"
	}
	return "nearest"
}
