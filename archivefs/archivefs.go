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

// Package archivefs allows a path to walk into an archive as though the
// archive were a directory. It is used by the assets package so that game
// assets can be shipped either as a directory or as a single archive file.
//
// Supported archive formats are zip, 7z, rar and gzip compressed tar. The
// format is detected by the contents of the file and not by the extension,
// except for tar files, which must have the extension .tar.gz or .tgz.
//
// For example, the path "data/assets.zip/graphics/icon.png" names the file
// "graphics/icon.png" inside the archive "data/assets.zip".
package archivefs

import (
	"io"
	"os"
)

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive supported by archivefs.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors. The returned io.ReadSeeker should be closed if it implements
// io.Closer.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	if err := afs.Set(filename); err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// ReadFile returns the entire contents of the specified filename. Filename can
// be inside an archive supported by archivefs.
func ReadFile(filename string) ([]byte, error) {
	r, sz, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if f, ok := r.(*os.File); ok {
		defer f.Close()
	}

	b := make([]byte, sz)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}
