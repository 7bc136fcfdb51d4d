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

package archivefs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gravitron/gravitron/curated"
)

// Sentinal errors.
const (
	NotFound = "archivefs: not found (%s)"
	IsDir    = "archivefs: cannot open a directory (%s)"
)

// Entry represents a single part of a full path.
type Entry struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has IsArchive set to true. an archive file is
	// also considered to be directory
	IsArchive bool
}

func (e Entry) String() string {
	return e.Name
}

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	arc archive

	// paths inside an archive always use the forward slash separator
	inArcPath string
	inArcFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.arc != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the Set()
// function. A file inside an archive is read fully into memory. A file outside
// of an archive is returned as an *os.File.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf(IsDir, afs.current)
	}

	if afs.arc != nil {
		b, err := fs.ReadFile(afs.arc, path.Join(afs.inArcPath, afs.inArcFile))
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}
		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return f, int(info.Size()), nil
}

// Close any open archive and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inArcPath = ""
	afs.inArcFile = ""
	if afs.arc != nil {
		_ = afs.arc.Close()
		afs.arc = nil
	}
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing directory
// of that file.
func (afs *Path) List() ([]Entry, error) {
	var ent []Entry

	if afs.arc != nil {
		dir := afs.inArcPath
		if dir == "" {
			dir = "."
		}
		lst, err := fs.ReadDir(afs.arc, dir)
		if err != nil {
			return nil, fmt.Errorf("archivefs: list: %w", err)
		}
		for _, d := range lst {
			ent = append(ent, Entry{
				Name:  d.Name(),
				IsDir: d.IsDir(),
			})
		}
	} else {
		pth := afs.current
		if !afs.isDir {
			pth = filepath.Dir(pth)
		}

		dir, err := os.ReadDir(pth)
		if err != nil {
			return nil, fmt.Errorf("archivefs: list: %w", err)
		}

		for _, d := range dir {
			// os.Stat() follows links so that links to directories have the
			// IsDir() property
			p := filepath.Join(pth, d.Name())
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Entry{Name: d.Name(), IsDir: true})
				continue
			}

			if isArchive(p) {
				ent = append(ent, Entry{Name: d.Name(), IsDir: true, IsArchive: true})
			} else {
				ent = append(ent, Entry{Name: d.Name()})
			}
		}
	}

	Sort(ent)

	return ent, nil
}

// Set the path. The path can walk into an archive file. On error the path is
// reset to the empty string.
func (afs *Path) Set(pth string) error {
	afs.Close()

	err := afs.set(pth)
	if err != nil {
		afs.Close()
		return err
	}

	return nil
}

func (afs *Path) set(pth string) error {
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var walked string

	for _, l := range lst {
		walked = filepath.Join(walked, l)

		if afs.arc != nil {
			p := path.Join(afs.inArcPath, l)

			fi, err := fs.Stat(afs.arc, p)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return curated.Errorf(NotFound, walked)
				}
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				afs.inArcPath = p
				afs.inArcFile = ""
			} else {
				afs.inArcFile = l
			}

			continue
		}

		fi, err := os.Stat(walked)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return curated.Errorf(NotFound, walked)
			}
			return fmt.Errorf("archivefs: set: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		arc, err := openArchive(walked)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.arc = arc
			afs.isDir = true
			continue
		}

		if !errors.Is(err, errNotArchive) {
			return fmt.Errorf("archivefs: set: %w", err)
		}
	}

	afs.current = walked

	return nil
}

// Sort entries according to the archivefs rules, which are simply: case
// insensitive and directories at the top of the listing.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i int, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
