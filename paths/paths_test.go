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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/gravitron/gravitron/paths"
	"github.com/gravitron/gravitron/test"
)

func TestResourcePath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// create the portable directory so that paths are predictable
	test.DemandSuccess(t, os.Mkdir(".gravitron", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gravitron", "foo", "bar", "baz"))

	// sub-directory has been created
	_, err = os.Stat(filepath.Join(".gravitron", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gravitron", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gravitron")
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^screenshot_headless_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("screenshot", "headless")))

	re = regexp.MustCompile(`^screenshot_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("screenshot", "  ")))
}
