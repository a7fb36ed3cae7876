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

package annotate_test

import (
	"strings"
	"testing"

	"github.com/simon-frankau/mac-classic-rom-re/annotate"
	"github.com/simon-frankau/mac-classic-rom-re/test"
	"github.com/simon-frankau/mac-classic-rom-re/traps"
)

func TestWrite(t *testing.T) {
	labeled := []traps.Labeled{
		{Entry: traps.Entry{Number: 0xa9f0, Address: 0x00409a20}, Name: "_LoadSeg", Matched: true},
		{Entry: traps.Entry{Number: 0xa000, Address: 0x00401234}, Name: "_Open", Matched: true},
		{Entry: traps.Entry{Number: 0xa123, Address: 0x00405678}, Name: "unknown_trap_a123"},
	}

	w := &strings.Builder{}
	test.ExpectSuccess(t, annotate.Write(w, labeled))

	// output is ordered by trap number regardless of input order
	expected := "createLabel(toAddr(0x00401234), \"_Open\", True)\n" +
		"createLabel(toAddr(0x00405678), \"unknown_trap_a123\", True)\n" +
		"createLabel(toAddr(0x00409a20), \"_LoadSeg\", True)\n"
	test.ExpectEquality(t, w.String(), expected)

	// the caller's slice has not been reordered
	test.ExpectEquality(t, labeled[0].Number, 0xa9f0)
}

func TestWriteEveryEntryOnce(t *testing.T) {
	labeled := make([]traps.Labeled, 0, 100)
	for i := 0; i < 100; i++ {
		labeled = append(labeled, traps.Labeled{
			Entry: traps.Entry{Number: uint16(0xa000 + i), Address: uint32(0x400000 + i*2)},
			Name:  traps.PlaceholderName(uint16(0xa000 + i)),
		})
	}

	w := &strings.Builder{}
	test.ExpectSuccess(t, annotate.Write(w, labeled))

	lines := strings.Split(strings.TrimRight(w.String(), "\n"), "\n")
	test.ExpectEquality(t, len(lines), 100)

	// every entry appears exactly once
	seen := make(map[string]bool)
	for _, l := range lines {
		test.ExpectSuccess(t, !seen[l])
		seen[l] = true
	}
}

func TestSanitizeName(t *testing.T) {
	test.ExpectEquality(t, annotate.SanitizeName("_LoadSeg"), "_LoadSeg")
	test.ExpectEquality(t, annotate.SanitizeName("Pack 3"), "Pack_3")
	test.ExpectEquality(t, annotate.SanitizeName("trap/name"), "trap_name")
	test.ExpectEquality(t, annotate.SanitizeName("0start"), "_0start")
	test.ExpectEquality(t, annotate.SanitizeName("a\"b"), "a_b")
}
