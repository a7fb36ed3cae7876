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

// Package edisk extracts the ROM disks ("EDisks") embedded in Macintosh
// ROMs, reconstructing a standard linear disk image that emulators and
// disk tools can mount directly.
//
// An EDisk region begins on a 64K boundary with a header block naming the
// disk geometry, followed by a block table and the block data. Each block
// table entry carries an encoding mode in its top byte; blocks are stored
// negated, PackBits compressed, bitstream compressed or checksummed
// depending on the mode. Block decodes are independent of each other and
// are spread across a small worker pool.
//
// Extraction is deliberately forgiving: a block that fails its integrity
// check becomes a zero-filled gap in the output and is reported in the
// result, because a partially recovered disk image is still useful when
// excavating an old ROM.
package edisk
