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
)

// maximum run length expressible in a control byte.
const maxRun = 64

// Encode a trap table from the list of target addresses. The result is a
// complete table region, header included, that Decode() reproduces the
// addresses from.
//
// The natural consumer is the test suite but an encoder is also what you
// want when building a patched ROM.
func Encode(firstTrap uint16, base uint32, addresses []uint32) ([]byte, error) {
	if len(addresses) > 0xffff {
		return nil, curated.Errorf(MalformedTable,
			fmt.Sprintf("%d slots cannot be expressed in a 16bit slot count", len(addresses)))
	}

	out := make([]byte, 0, headerLen+len(addresses)*4)
	out = append(out,
		byte(len(addresses)>>8), byte(len(addresses)),
		byte(firstTrap>>8), byte(firstTrap),
		byte(base>>24), byte(base>>16), byte(base>>8), byte(base),
	)

	// the encode chain mirrors the decode chain
	addr := base

	i := 0
	for i < len(addresses) {
		// a run of base-valued slots becomes an unimplemented run
		if addresses[i] == base {
			run := runLength(addresses[i:], func(a uint32) bool { return a == base })
			out = append(out, byte(ctrlUnimplemented|(run-1)))
			addr = base
			i += run
			continue
		}

		d := int64(addresses[i]) - int64(addr)
		if fitsInt16(d) {
			// prefer a stride run when at least three consecutive slots
			// advance by the same amount
			run := 1
			prev := addresses[i]
			for i+run < len(addresses) && run < maxRun {
				dn := int64(addresses[i+run]) - int64(prev)
				if dn != d {
					break
				}
				prev = addresses[i+run]
				run++
			}

			if run >= 3 {
				out = append(out, byte(ctrlStride|(run-1)), byte(uint16(d)>>8), byte(uint16(d)))
				addr = prev
				i += run
				continue
			}

			// otherwise gather consecutive slots whose deltas fit
			run = 0
			deltas := make([]int16, 0, maxRun)
			chain := addr
			for i+run < len(addresses) && run < maxRun {
				dn := int64(addresses[i+run]) - int64(chain)
				if !fitsInt16(dn) || addresses[i+run] == base {
					break
				}
				deltas = append(deltas, int16(dn))
				chain = addresses[i+run]
				run++
			}

			out = append(out, byte(ctrlDelta|(run-1)))
			for _, dn := range deltas {
				out = append(out, byte(uint16(dn)>>8), byte(uint16(dn)))
			}
			addr = chain
			i += run
			continue
		}

		// literal run: gather consecutive slots that neither match the
		// base address nor sit within delta range of their predecessor
		run := 0
		chain := addr
		for i+run < len(addresses) && run < maxRun {
			dn := int64(addresses[i+run]) - int64(chain)
			if fitsInt16(dn) || addresses[i+run] == base {
				break
			}
			chain = addresses[i+run]
			run++
		}

		out = append(out, byte(ctrlLiteral|(run-1)))
		for j := 0; j < run; j++ {
			a := addresses[i+j]
			out = append(out, byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
		}
		addr = chain
		i += run
	}

	return out, nil
}

func fitsInt16(v int64) bool {
	return v >= -32768 && v <= 32767
}

func runLength(addresses []uint32, match func(uint32) bool) int {
	run := 0
	for run < len(addresses) && run < maxRun && match(addresses[run]) {
		run++
	}
	return run
}
