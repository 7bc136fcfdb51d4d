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

// Package logger is the central log repository for gravitron. Log entries are
// made up of a tag and a detail. The tag says which part of the program made
// the entry and the detail is the message itself:
//
//	logger.Logf(logger.Allow, "screen", "could not set logical size: %v", err)
//
// Consecutive identical entries are folded into one entry with a repeat
// count. The log is bounded and old entries are dropped as new ones arrive.
//
// The detail argument of Log() can be a string, an error, a fmt.Stringer or
// any other value that fmt can print with the %v verb.
//
// Every logging request is accompanied by a Permission. Use logger.Allow when
// the entry should always be made.
package logger
