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

// Package traps decodes the compressed trap dispatch table found in
// Macintosh ROMs.
//
// The trap table maps A-line trap numbers to routine addresses. To save
// ROM space the table is stored as a chain of runs, mixing literal
// addresses with deltas from the previously decoded address. Decoding is
// therefore strictly sequential within one table, although tables from
// distinct ROM images can be decoded concurrently.
//
// Decoded entries are matched against the static reference tables in the
// names sub-package with the Label() function. Matching is best effort:
// traps with no known name receive a synthesized placeholder rather than
// causing a failure.
package traps
