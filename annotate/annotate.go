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

package annotate

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/simon-frankau/mac-classic-rom-re/traps"
)

// Write the labelled traps to the io.Writer as a Ghidra script fragment,
// one createLabel() statement per trap in ascending trap number order.
//
// The function writes the statements and nothing else. Creation and
// buffering of the output file is the caller's responsibility.
func Write(output io.Writer, labeled []traps.Labeled) error {
	// sorting a copy: the caller's ordering is not ours to change
	sorted := make([]traps.Labeled, len(labeled))
	copy(sorted, labeled)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	for _, l := range sorted {
		_, err := fmt.Fprintf(output, "createLabel(toAddr(0x%08x), \"%s\", True)\n",
			l.Address, SanitizeName(l.Name))
		if err != nil {
			return err
		}
	}

	return nil
}

// SanitizeName replaces any character that is not legal in a label
// identifier with an underscore. A name starting with a digit gains an
// underscore prefix.
func SanitizeName(name string) string {
	s := strings.Builder{}
	s.Grow(len(name) + 1)

	for i, r := range name {
		legal := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')

		if i == 0 && r >= '0' && r <= '9' {
			s.WriteRune('_')
		}

		if legal {
			s.WriteRune(r)
		} else {
			s.WriteRune('_')
		}
	}

	return s.String()
}
