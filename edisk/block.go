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

package edisk

import (
	"fmt"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
)

// the block encoding modes found in the wild, plus the checksummed mode
// used by later drivers.
const (
	// 512 stored bytes, each negated
	modeVerbatim uint8 = 0

	// PackBits run-length stream
	modePackBits uint8 = 1

	// bitstream with a 16 entry lookup table for the most common bytes
	modeLookup uint8 = 2

	// 512 stored bytes followed by a 16bit additive checksum
	modeChecksum uint8 = 3
)

// a blockDecoder turns the stored form of one block into BlockSize bytes.
// The storage argument runs from the block's start to the end of the ROM
// image; compressed modes discover their own length as they decode.
type blockDecoder func(storage []byte) ([]byte, error)

// decoders is keyed by the encoding mode byte from the block table. A new
// encoding is added by adding an entry here; the iteration logic never
// changes.
var decoders = map[uint8]blockDecoder{
	modeVerbatim: decodeVerbatim,
	modePackBits: decodePackBits,
	modeLookup:   decodeLookup,
	modeChecksum: decodeChecksum,
}

func shortStorage(mode uint8, have int, want int) error {
	return curated.Errorf(TruncatedInput,
		fmt.Sprintf("mode %d block wants %d bytes but only %d remain in the image", mode, want, have))
}

// mode 0. the driver stores blocks negated so that freshly erased ROM
// (all 0xff) reads back as zeros.
func decodeVerbatim(storage []byte) ([]byte, error) {
	if len(storage) < BlockSize {
		return nil, shortStorage(modeVerbatim, len(storage), BlockSize)
	}

	block := make([]byte, BlockSize)
	for i := range block {
		block[i] = -storage[i]
	}
	return block, nil
}

// mode 1. the same PackBits scheme as the Toolbox _PackBits trap: a
// command byte of 0x80 is a nop; less than 0x80 copies n+1 literal bytes;
// greater than 0x80 repeats the next byte 257-n times.
func decodePackBits(storage []byte) ([]byte, error) {
	block := make([]byte, 0, BlockSize)

	idx := 0
	for len(block) < BlockSize {
		if idx >= len(storage) {
			return nil, shortStorage(modePackBits, len(storage), idx+1)
		}

		cmd := storage[idx]
		idx++

		switch {
		case cmd == 0x80:
			// nop

		case cmd < 0x80:
			// literal copy of cmd+1 bytes
			n := int(cmd) + 1
			if idx+n > len(storage) {
				return nil, shortStorage(modePackBits, len(storage), idx+n)
			}
			block = append(block, storage[idx:idx+n]...)
			idx += n

		default:
			// -cmd+1 copies of the next byte
			n := int(-cmd) + 1
			if idx >= len(storage) {
				return nil, shortStorage(modePackBits, len(storage), idx+1)
			}
			for i := 0; i < n; i++ {
				block = append(block, storage[idx])
			}
			idx++
		}
	}

	// runs do not straddle block boundaries
	if len(block) != BlockSize {
		return nil, curated.Errorf(ChecksumMismatch,
			fmt.Sprintf("mode %d block expands to %d bytes instead of %d",
				modePackBits, len(block), BlockSize))
	}

	return block, nil
}

// mode 2. a 16 byte lookup table of the block's most common values
// followed by a bitstream. each output byte is either a set bit and a 4
// bit lookup index, or a clear bit and 8 literal bits.
func decodeLookup(storage []byte) ([]byte, error) {
	if len(storage) < 16 {
		return nil, shortStorage(modeLookup, len(storage), 16)
	}

	lookup := storage[:16]
	stream := newBitStream(storage[16:])

	block := make([]byte, BlockSize)
	for i := range block {
		if stream.Bit() != 0 {
			block[i] = lookup[stream.Bits(4)]
		} else {
			block[i] = uint8(stream.Bits(8))
		}
	}

	if stream.Overflowed() {
		return nil, shortStorage(modeLookup, len(storage), 16+stream.ByteIndex())
	}

	return block, nil
}

// mode 3. a plain copy of the block followed by a big-endian 16bit sum of
// its bytes. a sum mismatch is recoverable: the caller records the block
// as corrupt and carries on.
func decodeChecksum(storage []byte) ([]byte, error) {
	if len(storage) < BlockSize+2 {
		return nil, shortStorage(modeChecksum, len(storage), BlockSize+2)
	}

	var sum uint16
	for _, b := range storage[:BlockSize] {
		sum += uint16(b)
	}

	stored := uint16(storage[BlockSize])<<8 | uint16(storage[BlockSize+1])
	if sum != stored {
		return nil, curated.Errorf(ChecksumMismatch,
			fmt.Sprintf("stored checksum %#04x but block sums to %#04x", stored, sum))
	}

	block := make([]byte, BlockSize)
	copy(block, storage)
	return block, nil
}
