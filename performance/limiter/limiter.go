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

// Package limiter restricts the rate at which a loop runs. It is used to
// pace the presentation loop when the renderer is not synchronised to the
// display's vertical refresh.
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gravitron/gravitron/curated"
)

// Sentinal errors.
const (
	InvalidLimit = "limiter: invalid limit: %v"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	fps    atomic.Int64
	ticker *time.Ticker

	// whether the most recent call to Wait() actually waited
	waited bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter type.
func NewFPSLimiter(fps int) (*FpsLimiter, error) {
	if fps <= 0 {
		return nil, curated.Errorf(InvalidLimit, fmt.Errorf("fps must be positive (%d)", fps))
	}
	lmtr := &FpsLimiter{
		ticker: time.NewTicker(period(fps)),
	}
	lmtr.fps.Store(int64(fps))
	return lmtr, nil
}

func period(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lmtr *FpsLimiter) SetLimit(fps int) error {
	if fps <= 0 {
		return curated.Errorf(InvalidLimit, fmt.Errorf("fps must be positive (%d)", fps))
	}
	lmtr.fps.Store(int64(fps))
	lmtr.ticker.Reset(period(fps))
	return nil
}

// Limit returns the current limit.
func (lmtr *FpsLimiter) Limit() int {
	return int(lmtr.fps.Load())
}

// Wait will block until the next tick. If a tick is already pending the
// function returns immediately.
func (lmtr *FpsLimiter) Wait() {
	select {
	case <-lmtr.ticker.C:
		lmtr.waited = false
	default:
		<-lmtr.ticker.C
		lmtr.waited = true
	}
}

// HasWaited returns true if the most recent call to Wait() blocked.
func (lmtr *FpsLimiter) HasWaited() bool {
	return lmtr.waited
}

// Stop the limiter. Wait() must not be called after Stop().
func (lmtr *FpsLimiter) Stop() {
	lmtr.ticker.Stop()
}
