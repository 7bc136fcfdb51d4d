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

package paths

import (
	"os"
	"path/filepath"
)

// the base resource path when found in the current working directory.
const portablePath = ".gravitron"

// the directory inside the user config directory.
const configDir = "gravitron"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the OS/build specific path. The sub-directory is
// created if it does not exist.
//
// The subPth argument should not include the leading resource path. The file
// argument can be the empty string to return the sub-directory path only.
func ResourcePath(subPth string, file string) (string, error) {
	b, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(b, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", err
		}
	}

	return filepath.Join(pth, file), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(portablePath); err == nil {
		return portablePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
