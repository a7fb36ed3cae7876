// This file is part of mac-classic-rom-re.
//
// mac-classic-rom-re is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mac-classic-rom-re is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mac-classic-rom-re.  If not, see <https://www.gnu.org/licenses/>.

package names_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simon-frankau/mac-classic-rom-re/test"
	"github.com/simon-frankau/mac-classic-rom-re/traps/names"
)

func TestForEra(t *testing.T) {
	table, err := names.ForEra("system6")
	test.ExpectSuccess(t, err)

	// the merged table contains both OS and Toolbox traps
	test.ExpectEquality(t, table[0xa000], "_Open")
	test.ExpectEquality(t, table[0xa9f0], "_LoadSeg")

	_, err = names.ForEra("system9")
	test.ExpectFailure(t, err)
}

func TestForEraIsACopy(t *testing.T) {
	table, err := names.ForEra("system6")
	test.ExpectSuccess(t, err)

	table[0xa000] = "_Clobbered"

	table, err = names.ForEra("system6")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, table[0xa000], "_Open")
}

func TestReadNamesFile(t *testing.T) {
	doc := `# supplementary names
0xa89f _Unimplemented
abff   _DebugStr

; trailing comment
`

	filename := filepath.Join(t.TempDir(), "traps.txt")
	err := os.WriteFile(filename, []byte(doc), 0600)
	test.ExpectSuccess(t, err)

	table, err := names.ReadNamesFile(filename)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(table), 2)
	test.ExpectEquality(t, table[0xa89f], "_Unimplemented")
	test.ExpectEquality(t, table[0xabff], "_DebugStr")
}

func TestReadNamesFileRejectsBadLines(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "traps.txt")
	err := os.WriteFile(filename, []byte("a9f0 _LoadSeg extra\n"), 0600)
	test.ExpectSuccess(t, err)

	_, err = names.ReadNamesFile(filename)
	test.ExpectFailure(t, err)

	err = os.WriteFile(filename, []byte("xyzzy _LoadSeg\n"), 0600)
	test.ExpectSuccess(t, err)

	_, err = names.ReadNamesFile(filename)
	test.ExpectFailure(t, err)
}

func TestMerge(t *testing.T) {
	table, err := names.ForEra("system6")
	test.ExpectSuccess(t, err)

	table.Merge(names.Table{
		0xa000: "_OpenOverride",
		0xa89f: "_Unimplemented",
	})

	test.ExpectEquality(t, table[0xa000], "_OpenOverride")
	test.ExpectEquality(t, table[0xa89f], "_Unimplemented")
}
