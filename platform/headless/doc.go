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

// Package headless is a software implementation of the platform interfaces.
// Nothing is displayed. Presented frames are kept in memory and can be
// inspected with Binding.Frame().
//
// The renderer reproduces the logical size behaviour of SDL: the logical area
// is scaled to fit the output, preserving the aspect ratio, and centred with
// black bars where necessary. With integer scaling the scale is rounded down
// to a whole number, with a minimum of one.
//
// Any operation can be made to fail with Binding.Fail(). The number of times
// each operation has been called is available from Binding.Calls(). Operation
// names are the method names of the platform interfaces, prefixed with the
// interface name where the method name is shared. For example, "Window.Destroy"
// and "Renderer.Destroy".
package headless
