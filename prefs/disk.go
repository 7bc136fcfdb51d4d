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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gravitron/gravitron/curated"
)

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the token separating keys and values in the prefs file.
const separator = "::"

// Sentinal errors.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	NotAPrefFile = "prefs: not a valid prefs file (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. The key
// must not contain the separator token or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) || strings.ContainsAny(key, "\n\r") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default values. Nothing is written to disk.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load entries already in the file so they can be merged
	data := make(map[string]string)
	_, err := load(dsk.path, data)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, v := range dsk.entries {
		data[k] = v.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s %s %s\n", k, separator, data[k])
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. After the disk values have been applied,
// any values on the top of the command line stack are applied too.
//
// The saveOnFail argument causes the current values to be saved to disk if
// the prefs file does not exist. The NoPrefsFile error is still returned.
//
// A value that cannot be set does not stop the other values being applied.
// All such errors are returned together.
func (dsk *Disk) Load(saveOnFail bool) error {
	data := make(map[string]string)
	_, err := load(dsk.path, data)
	if err != nil {
		if saveOnFail && curated.Is(err, NoPrefsFile) {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
		return err
	}

	// keys are applied in a stable order. a value that cannot be set does not
	// prevent the remaining values being applied
	var errs []error

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if v, ok := data[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				errs = append(errs, fmt.Errorf("prefs: %s: %w", k, err))
			}
		}
	}

	for _, k := range keys {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				errs = append(errs, fmt.Errorf("prefs: %s: %w", k, err))
			}
		}
	}

	return errors.Join(errs...)
}

// load the prefs file into the data map. returns the number of entries read.
func load(path string, data map[string]string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, curated.Errorf(NoPrefsFile, path)
		}
		return 0, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return 0, curated.Errorf(NotAPrefFile, path)
	}

	var n int
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if isDefunct(k) {
			continue
		}
		data[k] = strings.TrimSpace(v)
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("prefs: %w", err)
	}

	return n, nil
}
