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
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

// archive is the interface to an open archive file. paths inside an archive
// always use the forward slash separator.
type archive interface {
	fs.FS
	io.Closer
}

// magic bytes for archive format detection.
var (
	magicZIP    = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z     = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21}
	magicGzip   = []byte{0x1f, 0x8b}
)

type format int

const (
	formatNone format = iota
	formatZIP
	format7z
	formatRAR
	formatTarGzip
)

// errNotArchive is returned by openArchive() if the file is not a recognised
// archive format.
var errNotArchive = errors.New("not an archive")

// the amount of data read from a file to detect the format.
const headerLen = 8

func detect(filename string) (format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return formatNone, err
	}
	defer f.Close()

	header := make([]byte, headerLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return formatNone, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd):
		return formatZIP, nil
	case bytes.HasPrefix(header, magic7z):
		return format7z, nil
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR, nil
	case bytes.HasPrefix(header, magicGzip):
		// a gzip file is only treated as an archive if it has the extension
		// of a compressed tar file
		l := strings.ToLower(filename)
		if strings.HasSuffix(l, ".tar.gz") || strings.HasSuffix(l, ".tgz") {
			return formatTarGzip, nil
		}
	}

	return formatNone, nil
}

// isArchive returns true if the file is a recognised archive. errors are
// treated as the file not being an archive.
func isArchive(filename string) bool {
	f, err := detect(filename)
	return err == nil && f != formatNone
}

// openArchive opens the archive file. returns errNotArchive if the file is
// not a recognised archive.
func openArchive(filename string) (archive, error) {
	f, err := detect(filename)
	if err != nil {
		return nil, err
	}

	switch f {
	case formatZIP:
		zf, err := zip.OpenReader(filename)
		if err != nil {
			return nil, fmt.Errorf("zip: %w", err)
		}
		return zf, nil
	case format7z:
		return open7z(filename)
	case formatRAR:
		return openRAR(filename)
	case formatTarGzip:
		return openTarGzip(filename)
	}

	return nil, errNotArchive
}

func open7z(filename string) (archive, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("7z: %w", err)
	}
	defer r.Close()

	mem := newMemArchive()
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			mem.add(f.Name, true, nil)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("7z: %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("7z: %s: %w", f.Name, err)
		}
		mem.add(f.Name, false, data)
	}

	return mem, nil
}

func openRAR(filename string) (archive, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("rar: %w", err)
	}
	defer r.Close()

	mem := newMemArchive()
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rar: %w", err)
		}

		if header.IsDir {
			mem.add(header.Name, true, nil)
			continue
		}

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("rar: %s: %w", header.Name, err)
		}
		mem.add(header.Name, false, data)
	}

	return mem, nil
}

func openTarGzip(filename string) (archive, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("tar: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("tar: %w", err)
	}
	defer gz.Close()

	mem := newMemArchive()
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tar: %w", err)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			mem.add(header.Name, true, nil)
		case tar.TypeReg:
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("tar: %s: %w", header.Name, err)
			}
			mem.add(header.Name, false, data)
		}
	}

	return mem, nil
}

// memArchive is an archive that has been read entirely into memory. used for
// archive formats that do not support random access.
type memArchive struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newMemArchive() *memArchive {
	return &memArchive{
		files: make(map[string][]byte),
		dirs:  map[string]bool{".": true},
	}
}

// add a file or directory. parent directories are added implicitly.
func (mem *memArchive) add(name string, isDir bool, data []byte) {
	name = path.Clean(strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "/"))
	if !fs.ValidPath(name) || name == "." {
		return
	}

	if isDir {
		mem.dirs[name] = true
	} else {
		mem.files[name] = data
	}

	for d := path.Dir(name); d != "."; d = path.Dir(d) {
		mem.dirs[d] = true
	}
}

// Close implements the io.Closer interface.
func (mem *memArchive) Close() error {
	return nil
}

// Open implements the fs.FS interface.
func (mem *memArchive) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if mem.dirs[name] {
		return &memFile{info: memInfo{name: path.Base(name), dir: true}}, nil
	}
	if data, ok := mem.files[name]; ok {
		return &memFile{
			info: memInfo{name: path.Base(name), size: int64(len(data))},
			r:    bytes.NewReader(data),
		}, nil
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// ReadDir implements the fs.ReadDirFS interface.
func (mem *memArchive) ReadDir(name string) ([]fs.DirEntry, error) {
	if !mem.dirs[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	var ent []fs.DirEntry
	for d := range mem.dirs {
		if d != "." && path.Dir(d) == name {
			ent = append(ent, fs.FileInfoToDirEntry(memInfo{name: path.Base(d), dir: true}))
		}
	}
	for f, data := range mem.files {
		if path.Dir(f) == name {
			ent = append(ent, fs.FileInfoToDirEntry(memInfo{name: path.Base(f), size: int64(len(data))}))
		}
	}

	slices.SortFunc(ent, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return ent, nil
}

type memFile struct {
	info memInfo
	r    *bytes.Reader
}

func (f *memFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

func (f *memFile) Read(b []byte) (int, error) {
	if f.r == nil {
		return 0, &fs.PathError{Op: "read", Path: f.info.name, Err: fs.ErrInvalid}
	}
	return f.r.Read(b)
}

func (f *memFile) Close() error {
	return nil
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) IsDir() bool  { return i.dir }
func (i memInfo) Sys() any     { return nil }

func (i memInfo) ModTime() time.Time { return time.Time{} }

func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
