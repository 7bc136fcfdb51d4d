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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/prefs"
	"github.com/gravitron/gravitron/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gravitron_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "ba")

	test.ExpectSuccess(t, v.Set("wibble"))
	test.ExpectEquality(t, v.String(), "wi")

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: wi\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set(" 99 "))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectEquality(t, w.Get().(int), 99)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.String(), "1.500")
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectApproximate(t, v.Get().(float64), 2.0, 0.0001)
	test.ExpectFailure(t, v.Set(false))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0.000")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook failure prevents the value being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			_, err := fmt.Sscanf(s.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))
	test.ExpectSuccess(t, v.Set("640,480"))
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 640,480\n")

	w = 100
	h = 200
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)
}

func TestGenericUndefined(t *testing.T) {
	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			return nil
		},
		func() prefs.Value {
			return prefs.GenericGetValueUndefined
		},
	)

	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.String(), "foo")
}

// entries saved by one Disk instance must survive being saved by another.
func TestMerge(t *testing.T) {
	fn := getTmpPrefFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.Bool
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set(1))
	test.ExpectSuccess(t, b.Set(true))
	test.DemandSuccess(t, dskA.Save())
	test.DemandSuccess(t, dskB.Save())
	cmpTmpFile(t, fn, "a :: 1\nb :: true\n")

	test.ExpectSuccess(t, a.Set(2))
	test.DemandSuccess(t, dskA.Save())
	cmpTmpFile(t, fn, "a :: 2\nb :: true\n")
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("value", &v))
	test.ExpectSuccess(t, v.Set(42))

	// no file yet. saveOnFail creates it
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpTmpFile(t, fn, "value :: 42\n")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 42)

	// command line values override disk values
	prefs.PushCommandLineStack("value::7")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 7)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestLoadBadValue(t *testing.T) {
	fn := getTmpPrefFile(t)
	data := fmt.Sprintf("%s\na :: 1\nb :: x\nc :: 3\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a, b, c prefs.Int
	test.ExpectSuccess(t, dsk.Add("a", &a))
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, dsk.Add("c", &c))

	// the bad value is reported but does not stop the other values loading
	prefs.PushCommandLineStack("c::9")
	test.ExpectFailure(t, dsk.Load(false))
	prefs.PopCommandLineStack()

	test.ExpectEquality(t, a.Get().(int), 1)
	test.ExpectEquality(t, b.Get().(int), 0)
	test.ExpectEquality(t, c.Get().(int), 9)
}

func TestNotAPrefsFile(t *testing.T) {
	fn := getTmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("foo :: bar\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NotAPrefFile))
}

func TestDefunct(t *testing.T) {
	fn := getTmpPrefFile(t)
	data := fmt.Sprintf("%s\nscreen.scalequality :: linear\nvalue :: 3\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("value", &v))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "value :: 0\n")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("foo::bar", &v))
	test.ExpectFailure(t, dsk.Add("foo\nbar", &v))
}
