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
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
	"github.com/simon-frankau/mac-classic-rom-re/romimage"
)

// the embedded registry. entries can be overridden or extended with
// LoadFile(). keyed by lower-case revision ID.
var registry = map[string]Revision{
	"classic": {
		ID:      "classic",
		Name:    "Macintosh Classic",
		RomSize: 0x80000,
		TrapTable: romimage.Region{
			Offset: 0x00c000,
			Length: 0x000c00,
		},
		// the Classic boots from its ROM disk. EDisk regions sit on 64K
		// boundaries; the region below covers them all and the EDISKS mode
		// narrows it down by signature
		DiskRegion: romimage.Region{
			Offset: 0x010000,
			Length: 0x070000,
		},
		NameEra: "system6",
	},
	"plus": {
		ID:      "plus",
		Name:    "Macintosh Plus",
		RomSize: 0x20000,
		TrapTable: romimage.Region{
			Offset: 0x008000,
			Length: 0x000a00,
		},
		NameEra: "system6",
	},
}

// Lookup the revision with the specified ID. IDs are case insensitive.
func Lookup(id string) (Revision, error) {
	rev, ok := registry[strings.ToLower(id)]
	if !ok {
		return Revision{}, curated.Errorf(ConfigError,
			fmt.Sprintf("unknown revision '%s' (available: %s)", id, strings.Join(List(), ", ")))
	}
	return rev, nil
}

// List the IDs of all known revisions, sorted.
func List() []string {
	l := make([]string, 0, len(registry))
	for id := range registry {
		l = append(l, id)
	}
	sort.Strings(l)
	return l
}

// revisionFile is the top-level document in a revision YAML file.
type revisionFile struct {
	Revisions []Revision `yaml:"revisions"`
}

// LoadFile merges revisions from a YAML file into the registry. Entries
// with an ID already in the registry replace the embedded entry.
//
// The file has the form:
//
//	revisions:
//	  - id: classic
//	    name: Macintosh Classic
//	    romsize: 0x80000
//	    traptable: {offset: 0xc000, length: 0xc00}
//	    nameera: system6
func LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ConfigError, err)
	}

	var rf revisionFile
	err = yaml.Unmarshal(data, &rf)
	if err != nil {
		return curated.Errorf(ConfigError, err)
	}

	for _, rev := range rf.Revisions {
		if rev.ID == "" {
			return curated.Errorf(ConfigError, fmt.Sprintf("revision without an id in %s", filename))
		}
		if rev.RomSize <= 0 {
			return curated.Errorf(ConfigError,
				fmt.Sprintf("revision '%s' has no romsize in %s", rev.ID, filename))
		}
		registry[strings.ToLower(rev.ID)] = rev
	}

	return nil
}
