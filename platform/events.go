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

package platform

// Key identifies a keyboard key in a KeyEvent.
type Key int

// List of keys that are meaningful to the application. Any other key is
// reported as KeyOther.
const (
	KeyOther Key = iota
	KeyEscape
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyM
	KeyUp
	KeyDown
	KeyReturn
)

// Event is the interface for all events returned by an EventSource.
type Event interface {
	event()
}

// EventQuit is sent when the user has requested that the application end.
type EventQuit struct{}

// EventKey is sent when a key has been pressed. Key repeats are not sent.
type EventKey struct {
	Key Key
}

// EventResized is sent when the window has been resized by the user.
type EventResized struct {
	Width  int
	Height int
}

func (EventQuit) event()    {}
func (EventKey) event()     {}
func (EventResized) event() {}

// EventSource is implemented by bindings that can deliver user input.
type EventSource interface {
	// returns all pending events. returns an empty slice if there are no
	// events pending. never blocks
	PollEvents() []Event
}
