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

// Package notifications allow communication from a component to an observer
// that has registered an interest in changes made by that component. For
// example, the screen notifies the menu system when the display mode changes
// so that the menu can rebuild any options that depend on it.
package notifications

// Notice describes events that somehow change the presentation of the
// display.
type Notice string

// List of defined notifications.
const (
	// the screen has moved between fullscreen and windowed mode
	NotifyDisplayModeChanged Notice = "NotifyDisplayModeChanged"

	// the stretch mode has been cycled
	NotifyStretchModeChanged Notice = "NotifyStretchModeChanged"

	// a screenshot of the presented frame has been saved
	NotifyScreenshot Notice = "NotifyScreenshot"
)

// Notify is used for direct communication between the screen and an
// interested party. The notice can be ignored if it is of no interest.
type Notify interface {
	Notify(notice Notice) error
}
