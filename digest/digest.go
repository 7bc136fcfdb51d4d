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

// Package digest fingerprints a sequence of presented frames. Each frame's
// fingerprint is chained to the previous one, so the final Hash() value
// depends on every frame and the order in which they were presented.
//
// Useful for checking that a headless session produces the same output as a
// previous session.
package digest

// Digest implementations compute a hash of output from the screen.
type Digest interface {
	Hash() string
	ResetDigest()
}
