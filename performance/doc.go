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

// Package performance contains helper functions relating to performance.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value, as compared to the target frame rate. It is not suitable for live
// FPS monitoring.
//
// RunProfiler() runs a function with CPU and/or memory profiling enabled.
//
// The limiter sub-package can be used to restrict the frame rate when vsync
// is not available.
package performance
