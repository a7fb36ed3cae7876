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

package revision

import (
	"fmt"
	"strings"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
	"github.com/simon-frankau/mac-classic-rom-re/logger"
	"github.com/simon-frankau/mac-classic-rom-re/romimage"
)

// sentinel error pattern returned by functions in this package.
const ConfigError = "revision: %v"

// Revision gathers the per-ROM-revision constants needed by the extraction
// passes. The interesting offsets move between revisions so every revision
// carries its own set.
type Revision struct {
	// short identifier used for selection on the command line
	ID string `yaml:"id"`

	// human readable name of the machine the ROM belongs to
	Name string `yaml:"name"`

	// expected size of the ROM image in bytes. an image of any other size
	// is a configuration error, not a data error
	RomSize int `yaml:"romsize"`

	// expected SHA1 of the ROM image. may be empty in which case the hash
	// is not checked. a mismatch is logged but is not an error - dumps of
	// the same revision differ in provenance
	Hash string `yaml:"hash,omitempty"`

	// location of the compressed trap table
	TrapTable romimage.Region `yaml:"traptable"`

	// location of the EDisk region. an empty region means the revision is
	// not known to carry a ROM disk and the EDISKS mode will scan for one
	DiskRegion romimage.Region `yaml:"diskregion,omitempty"`

	// which era of trap names to match against
	NameEra string `yaml:"nameera"`
}

func (rev Revision) String() string {
	return fmt.Sprintf("%s (%s)", rev.ID, rev.Name)
}

// Validate the loaded image against the revision constants. A size mismatch
// is fatal. A hash mismatch is only logged because many dumps of the same
// revision circulate with overdumps or byte-swapped sections.
func (rev Revision) Validate(img *romimage.Image) error {
	if img.Size() != rev.RomSize {
		return curated.Errorf(ConfigError,
			fmt.Sprintf("image size %d does not match %d expected for revision %s",
				img.Size(), rev.RomSize, rev.ID))
	}

	if rev.Hash != "" && !strings.EqualFold(rev.Hash, img.Hash) {
		logger.Logf(logger.Allow, "revision", "hash mismatch for %s: have %s, expected %s",
			rev.ID, img.Hash, rev.Hash)
	}

	return nil
}
