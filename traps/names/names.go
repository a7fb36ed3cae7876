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

package names

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
)

// sentinel error pattern returned by functions in this package.
const NamesError = "trap names: %v"

// Table maps trap numbers to symbolic names. Tables are built once and are
// read-only thereafter.
type Table map[uint16]string

// ForEra returns the reference table for the specified ROM era. The
// returned table is a copy and can be extended freely, with Merge() for
// example.
func ForEra(era string) (Table, error) {
	var src []Table

	switch strings.ToLower(era) {
	case "system6":
		src = []Table{osTraps, toolboxTraps}
	default:
		return nil, curated.Errorf(NamesError,
			fmt.Sprintf("unknown trap name era '%s' (available: system6)", era))
	}

	table := make(Table)
	for _, s := range src {
		for num, name := range s {
			table[num] = name
		}
	}

	return table, nil
}

// Merge the entries of another table into this one. Entries in the other
// table win.
func (table Table) Merge(other Table) {
	for num, name := range other {
		table[num] = name
	}
}

// Numbers returns the trap numbers in the table, sorted.
func (table Table) Numbers() []uint16 {
	nums := make([]uint16, 0, len(table))
	for num := range table {
		nums = append(nums, num)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	return nums
}

// ReadNamesFile builds a Table from a text file of trap definitions, one
// per line:
//
//	a9f0 _LoadSeg
//	0xa9ff _Debugger
//
// Blank lines and lines starting with '#' or ';' are ignored. The hex
// prefix on the trap number is optional.
func ReadNamesFile(filename string) (Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(NamesError, err)
	}
	defer f.Close()

	table := make(Table)

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		flds := strings.Fields(line)
		if len(flds) != 2 {
			return nil, curated.Errorf(NamesError,
				fmt.Sprintf("%s: line %d: expected 'number name'", filename, lineNum))
		}

		numFld := strings.TrimPrefix(strings.ToLower(flds[0]), "0x")
		num, err := strconv.ParseUint(numFld, 16, 16)
		if err != nil {
			return nil, curated.Errorf(NamesError,
				fmt.Sprintf("%s: line %d: bad trap number '%s'", filename, lineNum, flds[0]))
		}

		table[uint16(num)] = flds[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(NamesError, err)
	}

	return table, nil
}
