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

package traps

import (
	"fmt"

	"github.com/simon-frankau/mac-classic-rom-re/traps/names"
)

// Labeled is an Entry joined with a symbolic name. Every decoded entry
// receives a name; traps missing from the reference table get a synthesized
// placeholder so the overall mapping is total.
type Labeled struct {
	Entry

	// the symbolic name of the routine
	Name string

	// false if the name is a synthesized placeholder
	Matched bool
}

// PlaceholderName for a trap number with no match in the reference table.
func PlaceholderName(number uint16) string {
	return fmt.Sprintf("unknown_trap_%04x", number)
}

// Label the decoded entries against the reference table. The result has
// one element per input entry, in input order.
func Label(entries []Entry, table names.Table) []Labeled {
	labeled := make([]Labeled, 0, len(entries))

	for _, e := range entries {
		name, ok := table[e.Number]
		if !ok {
			name = PlaceholderName(e.Number)
		}
		labeled = append(labeled, Labeled{
			Entry:   e,
			Name:    name,
			Matched: ok,
		})
	}

	return labeled
}
