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

// Package annotate serializes labelled trap entries into a script that a
// disassembly tool can execute to name the trap routines. The output is
// line oriented and deterministic: one label statement per trap, ascending
// by trap number.
package annotate
