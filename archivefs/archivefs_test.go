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

package archivefs_test

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gravitron/gravitron/archivefs"
	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/test"
)

// creates a directory with a plain file and a zip archive. the archive
// contains two files at the root and a directory containing one file and an
// empty directory.
func makeTestDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testdir")
	test.DemandSuccess(t, os.Mkdir(dir, 0o700))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o600))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	for _, n := range []string{"archivefile1", "archivefile2", "archivedir/", "archivedir/archivefile3", "archivedir/archivedir2/"} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		if n[len(n)-1] != '/' {
			_, err = fmt.Fprintf(w, "%s contents\n", filepath.Base(n))
			test.DemandSuccess(t, err)
		}
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := makeTestDir(t)

	var afs archivefs.Path
	defer afs.Close()

	var entries []archivefs.Entry
	var err error

	// non-existant file
	err = afs.Set(filepath.Join(dir, "foo"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotFound))
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	test.ExpectSuccess(t, afs.Set(dir))
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	// archives are listed as directories and so come first
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")
	test.ExpectSuccess(t, entries[0].IsArchive)

	// a real file in directory
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testfile")))
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	// listing a file lists the containing directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)

	// the root of an archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip")))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// directory in an archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir")))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir2 archivefile3]")

	// non-existant file in an archive
	err = afs.Set(filepath.Join(dir, "testarchive.zip", "foo"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotFound))
	test.ExpectSuccess(t, !afs.InArchive())

	// file in a directory in an archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile3")))
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())
}

func TestArchivefsOpen(t *testing.T) {
	dir := makeTestDir(t)

	r, sz, err := archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 22)
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1 contents\n")

	d, err = archivefs.ReadFile(filepath.Join(dir, "testfile"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents\n")

	// directories cannot be opened
	_, _, err = archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivedir"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.IsDir))
}

// creates a gzip compressed tar file containing the same files as the zip
// archive created by makeTestDir(). directories are not given their own
// entries in the tar file.
func makeTarGzip(t *testing.T, filename string) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for _, n := range []string{"archivefile1", "archivefile2", "archivedir/archivefile3"} {
		data := []byte(fmt.Sprintf("%s contents\n", filepath.Base(n)))
		test.DemandSuccess(t, tw.WriteHeader(&tar.Header{
			Name:     n,
			Mode:     0o600,
			Size:     int64(len(data)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write(data)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, tw.Close())
	test.DemandSuccess(t, gz.Close())
	test.DemandSuccess(t, f.Close())
}

func TestArchivefsTarGzip(t *testing.T) {
	dir := makeTestDir(t)
	fn := filepath.Join(dir, "testarchive.tar.gz")
	makeTarGzip(t, fn)

	var afs archivefs.Path
	defer afs.Close()

	test.ExpectSuccess(t, afs.Set(dir))
	entries, err := afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.tar.gz testarchive.zip testfile]")
	test.ExpectSuccess(t, entries[0].IsArchive)

	test.ExpectSuccess(t, afs.Set(fn))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// implicit directory
	test.ExpectSuccess(t, afs.Set(filepath.Join(fn, "archivedir")))
	test.ExpectSuccess(t, afs.IsDir())
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivefile3]")

	d, err := archivefs.ReadFile(filepath.Join(fn, "archivedir", "archivefile3"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile3 contents\n")

	err = afs.Set(filepath.Join(fn, "foo"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotFound))
}

func TestArchivefsCorrupt(t *testing.T) {
	dir := t.TempDir()

	// files that start with the magic bytes of an archive but are not
	// otherwise valid
	for name, data := range map[string][]byte{
		"bad.7z":  {0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c, 'x', 'x'},
		"bad.rar": {0x52, 0x61, 0x72, 0x21, 'x', 'x'},
		"bad.zip": {0x50, 0x4b, 0x03, 0x04, 'x', 'x'},
	} {
		fn := filepath.Join(dir, name)
		test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

		var afs archivefs.Path
		err := afs.Set(fn)
		test.ExpectFailure(t, err, name)
		test.ExpectSuccess(t, !curated.Is(err, archivefs.NotFound), name)
		test.ExpectEquality(t, afs.String(), "", name)
	}

	// a gzip file without a tar extension is a plain file
	fn := filepath.Join(dir, "plain.gz")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x1f, 0x8b, 0, 0}, 0o600))

	var afs archivefs.Path
	defer afs.Close()
	test.ExpectSuccess(t, afs.Set(fn))
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())
}
