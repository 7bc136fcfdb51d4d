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

// Package assert contains checks that are useful when reasoning about which
// goroutine an operation is running on.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns the ID of the current goroutine. It parses the
// output of runtime.Stack() so it is not fast and should not be called in
// tight loops.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread remembers the goroutine on which it was created.
type Thread struct {
	id uint64
}

// NewThread returns a Thread bound to the current goroutine.
func NewThread() Thread {
	return Thread{id: GetGoRoutineID()}
}

// IsCurrent returns true if the caller is running on the goroutine the Thread
// was created on.
func (th Thread) IsCurrent() bool {
	return th.id == GetGoRoutineID()
}
