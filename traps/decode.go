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

	"github.com/simon-frankau/mac-classic-rom-re/curated"
	"github.com/simon-frankau/mac-classic-rom-re/logger"
	"github.com/simon-frankau/mac-classic-rom-re/romimage"
)

// sentinel error pattern returned by functions in this package.
//
// the declared extent of the table does not agree with its contents. errors
// of this type name the byte offset at fault.
const MalformedTable = "trap table: malformed table: %v"

// ToolboxBoundary is the first trap number dispatched through the Toolbox
// table rather than the OS table.
const ToolboxBoundary = 0xa800

// Entry is one decoded trap table slot.
type Entry struct {
	// the A-line trap number the slot is dispatched from
	Number uint16

	// target address of the routine in the ROM
	Address uint32

	// whether the trap is dispatched through the Toolbox table. false
	// means an OS trap
	Toolbox bool
}

func (e Entry) String() string {
	class := "os"
	if e.Toolbox {
		class = "toolbox"
	}
	return fmt.Sprintf("%#04x -> %#08x (%s)", e.Number, e.Address, class)
}

// the compressed table begins with a fixed header: slot count (16bit),
// first trap number (16bit) and base address (32bit). all big-endian.
const headerLen = 8

// control byte layout: top two bits select the representation of the run,
// low six bits are the run length minus one.
const (
	ctrlLiteral       = 0x00 // run of 32bit absolute addresses
	ctrlDelta         = 0x40 // run of signed 16bit deltas, accumulated
	ctrlStride        = 0x80 // one signed 16bit delta applied run-length times
	ctrlUnimplemented = 0xc0 // run of slots pointing at the base address

	ctrlOpMask  = 0xc0
	ctrlRunMask = 0x3f
)

// Decode the compressed trap table in the specified region of the ROM
// image.
//
// The table is a chain of runs. Literal runs carry full addresses; delta
// runs carry differences from the previously decoded address, so decoding
// is strictly sequential. Slots for unimplemented traps point at the base
// address given in the header, which on a real ROM is the address of the
// unimplemented-trap handler.
//
// Returns MalformedTable if the contents disagree with the declared region
// length or slot count. Returns romimage.TruncatedInput if the region does
// not fit inside the image.
func Decode(img *romimage.Image, reg romimage.Region) ([]Entry, error) {
	// establishing up front that the whole region is inside the image means
	// a short ROM file fails here with TruncatedInput, before any output
	// can be produced
	if _, err := reg.Slice(img); err != nil {
		return nil, err
	}

	if reg.Length < headerLen {
		return nil, curated.Errorf(MalformedTable,
			fmt.Sprintf("region at %v is too short for the table header", reg))
	}

	count, _ := img.Read16(reg.Offset)
	firstTrap, _ := img.Read16(reg.Offset + 2)
	base, _ := img.Read32(reg.Offset + 4)

	logger.Logf(logger.Allow, "trap table", "%d slots from trap %#04x, base address %#08x",
		count, firstTrap, base)

	entries := make([]Entry, 0, count)

	idx := reg.Offset + headerLen
	end := reg.Offset + reg.Length

	// addr is the decode chain. every delta is relative to the previously
	// decoded address, starting from the header's base address
	addr := base

	for len(entries) < int(count) {
		if idx >= end {
			return nil, curated.Errorf(MalformedTable,
				fmt.Sprintf("table ends at offset %#06x with %d of %d slots decoded",
					idx, len(entries), count))
		}

		ctrl, _ := img.Read8(idx)
		idx++

		run := int(ctrl&ctrlRunMask) + 1
		if len(entries)+run > int(count) {
			return nil, curated.Errorf(MalformedTable,
				fmt.Sprintf("run of %d slots at offset %#06x passes the declared slot count of %d",
					run, idx-1, count))
		}

		switch ctrl & ctrlOpMask {
		case ctrlLiteral:
			if idx+4*run > end {
				return nil, curated.Errorf(MalformedTable,
					fmt.Sprintf("literal run at offset %#06x passes end of region", idx-1))
			}
			for i := 0; i < run; i++ {
				addr, _ = img.Read32(idx)
				idx += 4
				entries = append(entries, newEntry(firstTrap, len(entries), addr))
			}

		case ctrlDelta:
			if idx+2*run > end {
				return nil, curated.Errorf(MalformedTable,
					fmt.Sprintf("delta run at offset %#06x passes end of region", idx-1))
			}
			for i := 0; i < run; i++ {
				d, _ := img.Read16(idx)
				idx += 2
				addr = uint32(int64(addr) + int64(int16(d)))
				entries = append(entries, newEntry(firstTrap, len(entries), addr))
			}

		case ctrlStride:
			if idx+2 > end {
				return nil, curated.Errorf(MalformedTable,
					fmt.Sprintf("stride run at offset %#06x passes end of region", idx-1))
			}
			d, _ := img.Read16(idx)
			idx += 2
			for i := 0; i < run; i++ {
				addr = uint32(int64(addr) + int64(int16(d)))
				entries = append(entries, newEntry(firstTrap, len(entries), addr))
			}

		case ctrlUnimplemented:
			// unimplemented slots point at the base address and reset the
			// decode chain to it
			addr = base
			for i := 0; i < run; i++ {
				entries = append(entries, newEntry(firstTrap, len(entries), addr))
			}
		}
	}

	if idx != end {
		return nil, curated.Errorf(MalformedTable,
			fmt.Sprintf("all %d slots decoded at offset %#06x but region continues to %#06x",
				count, idx, end))
	}

	return entries, nil
}

func newEntry(firstTrap uint16, slot int, addr uint32) Entry {
	num := firstTrap + uint16(slot)
	return Entry{
		Number:  num,
		Address: addr,
		Toolbox: num >= ToolboxBoundary,
	}
}
