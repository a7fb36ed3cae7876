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

package romimage

import (
	"fmt"
)

// Region describes a sub-range of a ROM image. The offsets of the
// interesting regions differ between ROM revisions and are supplied by the
// revision package.
type Region struct {
	Offset int `yaml:"offset"`
	Length int `yaml:"length"`
}

func (reg Region) String() string {
	return fmt.Sprintf("%#06x +%#x", reg.Offset, reg.Length)
}

// IsEmpty returns true if the region has no extent. An empty region means
// the revision does not carry that feature.
func (reg Region) IsEmpty() bool {
	return reg.Length == 0
}

// Slice returns the bytes the region refers to. Returns TruncatedInput if
// the region does not fit inside the image.
func (reg Region) Slice(img *Image) ([]byte, error) {
	return img.Slice(reg.Offset, reg.Length)
}
