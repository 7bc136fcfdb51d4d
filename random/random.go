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

// Package random should be used in preference to the math/rand package when
// a random number is required by a visual effect.
//
// Each Random instance has its own source. The ZeroSeed field makes the
// sequence predictable, which is useful for tests and for regression output
// that must be compared between runs.
package random

import (
	"math/rand"
	"time"
)

// the base seed is used for every instance that is not zero seeded.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a source of random numbers.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// the seed the current source was created with
	seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) source() *rand.Rand {
	seed := baseSeed
	if rnd.ZeroSeed {
		seed = 0
	}
	if rnd.rnd == nil || rnd.seed != seed {
		rnd.seed = seed
		rnd.rnd = rand.New(rand.NewSource(seed))
	}
	return rnd.rnd
}

// Intn returns a pseudo-random number in the half-open interval [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.source().Intn(n)
}

// Float64 returns a pseudo-random number in the half-open interval [0.0,1.0).
func (rnd *Random) Float64() float64 {
	return rnd.source().Float64()
}

// Reset restarts the sequence of random numbers.
func (rnd *Random) Reset() {
	rnd.rnd = nil
}
