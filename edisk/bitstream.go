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

// bitStream reads a byte slice one bit at a time, most significant bit
// first. Reading past the end returns zero bits and raises the overflow
// flag; callers check Overflowed() once at the end of a decode rather than
// error-checking every bit.
type bitStream struct {
	data     []byte
	bitIndex int
	overflow bool
}

func newBitStream(data []byte) *bitStream {
	return &bitStream{data: data}
}

// Bit returns the next bit in the stream.
func (bs *bitStream) Bit() uint32 {
	byteIndex := bs.bitIndex / 8
	bitNum := bs.bitIndex % 8

	if byteIndex >= len(bs.data) {
		bs.overflow = true
		return 0
	}

	bs.bitIndex++

	return uint32(bs.data[byteIndex]>>(7-bitNum)) & 1
}

// Bits returns the next numBits bits in the stream, as an unsigned value.
func (bs *bitStream) Bits(numBits int) uint32 {
	var res uint32
	for i := 0; i < numBits; i++ {
		res = res<<1 | bs.Bit()
	}
	return res
}

// ByteIndex returns the number of whole bytes consumed, rounding up.
func (bs *bitStream) ByteIndex() int {
	return (bs.bitIndex + 7) / 8
}

// Overflowed returns true if any read has passed the end of the data.
func (bs *bitStream) Overflowed() bool {
	return bs.overflow
}
