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

package edisk_test

import (
	"bytes"
	"testing"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
	"github.com/simon-frankau/mac-classic-rom-re/edisk"
	"github.com/simon-frankau/mac-classic-rom-re/romimage"
	"github.com/simon-frankau/mac-classic-rom-re/test"
)

// diskBuilder assembles a synthetic EDisk region inside a ROM image, in
// the layout the driver uses: header block, block table, block data.
type diskBuilder struct {
	location    int
	tableOffset int
	dataOffset  int

	table []uint32
	data  []byte
}

func newDiskBuilder(location int) *diskBuilder {
	return &diskBuilder{
		location:    location,
		tableOffset: 512,
		dataOffset:  1024,

		// padding so that no stored block sits at offset zero, which the
		// block table reserves for unstored zero blocks
		data: make([]byte, 16),
	}
}

// addBlock stores the encoded bytes and adds a table entry referencing
// them.
func (bld *diskBuilder) addBlock(mode uint8, encoded []byte) {
	offset := len(bld.data)
	bld.table = append(bld.table, uint32(mode)<<24|uint32(offset&0x00ffffff))
	bld.data = append(bld.data, encoded...)
}

// addZeroBlock adds the special all-zeroes table entry.
func (bld *diskBuilder) addZeroBlock() {
	bld.table = append(bld.table, 0)
}

// addRawEntry adds a table entry as-is. Used for negative offsets and for
// unsupported modes.
func (bld *diskBuilder) addRawEntry(mode uint8, offset int) {
	bld.table = append(bld.table, uint32(mode)<<24|uint32(offset&0x00ffffff))
}

func put16(data []byte, offset int, v uint16) {
	data[offset] = byte(v >> 8)
	data[offset+1] = byte(v)
}

func put32(data []byte, offset int, v uint32) {
	data[offset] = byte(v >> 24)
	data[offset+1] = byte(v >> 16)
	data[offset+2] = byte(v >> 8)
	data[offset+3] = byte(v)
}

// build the ROM image. the image is twice the 64K boundary so there is
// room for the region wherever the builder puts it.
func (bld *diskBuilder) build() *romimage.Image {
	size := bld.location + 2*edisk.Boundary
	data := make([]byte, size)

	// header
	put16(data, bld.location+128, 512)
	put16(data, bld.location+130, 1)
	copy(data[bld.location+132:], "EDisk Gary D")
	put32(data, bld.location+144, uint32(len(bld.table)*edisk.BlockSize))
	put32(data, bld.location+156, uint32(bld.tableOffset))
	put32(data, bld.location+160, uint32(bld.dataOffset))

	// block table
	for i, v := range bld.table {
		put32(data, bld.location+bld.tableOffset+i*4, v)
	}

	// block data
	copy(data[bld.location+bld.dataOffset:], bld.data)

	return romimage.NewImage(data)
}

// encoding helpers, the inverses of the block decoders.

func encodeVerbatim(block []byte) []byte {
	enc := make([]byte, len(block))
	for i := range block {
		enc[i] = -block[i]
	}
	return enc
}

func encodePackBits(block []byte) []byte {
	var enc []byte

	// literal runs of up to 128 bytes. no attempt at compression: the
	// decoder does not care
	for len(block) > 0 {
		n := len(block)
		if n > 128 {
			n = 128
		}
		enc = append(enc, byte(n-1))
		enc = append(enc, block[:n]...)
		block = block[n:]
	}

	return enc
}

func encodeChecksum(block []byte) []byte {
	var sum uint16
	for _, b := range block {
		sum += uint16(b)
	}
	return append(append([]byte{}, block...), byte(sum>>8), byte(sum))
}

// bitWriter is the inverse of the decoder's bit stream.
type bitWriter struct {
	data []byte
	bits int
}

func (bw *bitWriter) writeBits(v uint32, numBits int) {
	for i := numBits - 1; i >= 0; i-- {
		if bw.bits%8 == 0 {
			bw.data = append(bw.data, 0)
		}
		bit := (v >> i) & 1
		bw.data[len(bw.data)-1] |= byte(bit << (7 - bw.bits%8))
		bw.bits++
	}
}

func encodeLookup(block []byte, lookup []byte) []byte {
	bw := &bitWriter{}

	for _, b := range block {
		idx := bytes.IndexByte(lookup, b)
		if idx >= 0 {
			bw.writeBits(1, 1)
			bw.writeBits(uint32(idx), 4)
		} else {
			bw.writeBits(0, 1)
			bw.writeBits(uint32(b), 8)
		}
	}

	return append(append([]byte{}, lookup...), bw.data...)
}

// a deterministic test block.
func testBlock(seed byte) []byte {
	block := make([]byte, edisk.BlockSize)
	for i := range block {
		block[i] = seed + byte(i*7)
	}
	return block
}

func TestScan(t *testing.T) {
	img := newDiskBuilder(edisk.Boundary).build()

	locations := edisk.Scan(img, romimage.Region{})
	test.ExpectEquality(t, len(locations), 1)
	test.ExpectEquality(t, locations[0], edisk.Boundary)

	// a region that excludes the disk
	locations = edisk.Scan(img, romimage.Region{Offset: 2 * edisk.Boundary, Length: edisk.Boundary})
	test.ExpectEquality(t, len(locations), 0)

	// an image with no signature at all
	img = romimage.NewImage(make([]byte, 4*edisk.Boundary))
	locations = edisk.Scan(img, romimage.Region{})
	test.ExpectEquality(t, len(locations), 0)
}

func TestExtractVerbatim(t *testing.T) {
	blockA := testBlock(3)
	blockB := testBlock(101)

	bld := newDiskBuilder(edisk.Boundary)
	bld.addZeroBlock()
	bld.addBlock(0, encodeVerbatim(blockA))
	bld.addBlock(0, encodeVerbatim(blockB))

	disk, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(disk.Image), 3*edisk.BlockSize)
	test.ExpectEquality(t, len(disk.Corrupt), 0)

	test.ExpectSuccess(t, bytes.Equal(disk.Image[:edisk.BlockSize], make([]byte, edisk.BlockSize)))
	test.ExpectSuccess(t, bytes.Equal(disk.Image[edisk.BlockSize:2*edisk.BlockSize], blockA))
	test.ExpectSuccess(t, bytes.Equal(disk.Image[2*edisk.BlockSize:], blockB))
}

func TestExtractNegativeOffset(t *testing.T) {
	// data sitting before the data base. the driver really does this
	block := testBlock(42)

	bld := newDiskBuilder(edisk.Boundary)
	bld.addRawEntry(0, -256)

	img := bld.build()

	// place the encoded block at dataOffset-256 by rebuilding the image
	// data around it. easiest done through a second builder with the
	// encoded bytes in the gap between table and data
	data := make([]byte, img.Size())
	s, err := img.Slice(0, img.Size())
	test.ExpectSuccess(t, err)
	copy(data, s)
	copy(data[edisk.Boundary+1024-256:], encodeVerbatim(block))
	img = romimage.NewImage(data)

	disk, err := edisk.Extract(img, edisk.Boundary)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(disk.Image, block))
}

func TestExtractPackBits(t *testing.T) {
	block := testBlock(7)

	bld := newDiskBuilder(edisk.Boundary)
	bld.addBlock(1, encodePackBits(block))

	disk, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(disk.Image, block))
}

func TestExtractPackBitsRuns(t *testing.T) {
	// a block the run-length cases can exercise: a long run, a nop and
	// some literals
	block := make([]byte, edisk.BlockSize)
	for i := 0; i < 300; i++ {
		block[i] = 0xaa
	}
	for i := 300; i < edisk.BlockSize; i++ {
		block[i] = byte(i)
	}

	// hand-built stream: a nop then repeat runs, encoded with the
	// production rule that n repeats of x is (257-n, x)
	stream := []byte{0x80}
	stream = append(stream, byte(257-128), 0xaa) // blocks 0..127
	stream = append(stream, byte(257-128), 0xaa) // blocks 128..255
	stream = append(stream, byte(257-44), 0xaa)  // blocks 256..299
	stream = append(stream, encodePackBits(block[300:])...)

	bld := newDiskBuilder(edisk.Boundary)
	bld.addBlock(1, stream)

	disk, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(disk.Image, block))
}

func TestExtractLookup(t *testing.T) {
	// a block dominated by a handful of values, the case mode 2 is there
	// for
	block := make([]byte, edisk.BlockSize)
	for i := range block {
		block[i] = byte(i % 4)
	}
	block[100] = 0xfe // a literal escape

	lookup := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	bld := newDiskBuilder(edisk.Boundary)
	bld.addBlock(2, encodeLookup(block, lookup))

	disk, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(disk.Image, block))
}

func TestExtractChecksum(t *testing.T) {
	blockA := testBlock(11)
	blockB := testBlock(13)
	blockC := testBlock(17)

	bld := newDiskBuilder(edisk.Boundary)
	bld.addBlock(3, encodeChecksum(blockA))
	bld.addBlock(3, encodeChecksum(blockB))
	bld.addBlock(3, encodeChecksum(blockC))

	disk, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(disk.Corrupt), 0)
	test.ExpectSuccess(t, bytes.Equal(disk.Image[edisk.BlockSize:2*edisk.BlockSize], blockB))
}

func TestExtractChecksumCorruption(t *testing.T) {
	blockA := testBlock(11)
	blockB := testBlock(13)
	blockC := testBlock(17)

	bld := newDiskBuilder(edisk.Boundary)
	bld.addBlock(3, encodeChecksum(blockA))
	bld.addBlock(3, encodeChecksum(blockB))
	bld.addBlock(3, encodeChecksum(blockC))

	clean, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)

	// flip the first stored byte of the second block. its checksum no
	// longer matches
	bld.data[16+edisk.BlockSize+2] ^= 0xff
	corrupted, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)

	// exactly the corrupted block is reported
	test.ExpectEquality(t, len(corrupted.Corrupt), 1)
	test.ExpectEquality(t, corrupted.Corrupt[0], 1)

	// the corrupt block is zero-filled, every other block matches the
	// clean run
	test.ExpectSuccess(t, bytes.Equal(corrupted.Image[:edisk.BlockSize], clean.Image[:edisk.BlockSize]))
	test.ExpectSuccess(t, bytes.Equal(corrupted.Image[edisk.BlockSize:2*edisk.BlockSize], make([]byte, edisk.BlockSize)))
	test.ExpectSuccess(t, bytes.Equal(corrupted.Image[2*edisk.BlockSize:], clean.Image[2*edisk.BlockSize:]))

	// output length is unaffected by corruption
	test.ExpectEquality(t, len(corrupted.Image), len(clean.Image))
}

func TestUnsupportedEncoding(t *testing.T) {
	bld := newDiskBuilder(edisk.Boundary)
	bld.addRawEntry(7, 0)

	_, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, edisk.UnsupportedEncoding))
}

func TestGeometryMismatch(t *testing.T) {
	// no signature
	img := romimage.NewImage(make([]byte, 2*edisk.Boundary))
	_, err := edisk.ReadHeader(img, 0)
	test.ExpectSuccess(t, curated.Is(err, edisk.GeometryMismatch))

	// bad version
	bld := newDiskBuilder(0)
	bld.addZeroBlock()
	img = bld.build()
	s, _ := img.Slice(0, img.Size())
	data := append([]byte{}, s...)
	put16(data, 130, 2)
	_, err = edisk.ReadHeader(romimage.NewImage(data), 0)
	test.ExpectSuccess(t, curated.Is(err, edisk.GeometryMismatch))

	// bad block size
	data = append([]byte{}, s...)
	put16(data, 128, 1024)
	_, err = edisk.ReadHeader(romimage.NewImage(data), 0)
	test.ExpectSuccess(t, curated.Is(err, edisk.GeometryMismatch))

	// disk length that is not a whole number of blocks
	data = append([]byte{}, s...)
	put32(data, 144, 1000)
	_, err = edisk.ReadHeader(romimage.NewImage(data), 0)
	test.ExpectSuccess(t, curated.Is(err, edisk.GeometryMismatch))

	// block table passing the end of the image
	data = append([]byte{}, s...)
	put32(data, 144, 0x4000000)
	_, err = edisk.ReadHeader(romimage.NewImage(data), 0)
	test.ExpectSuccess(t, curated.Is(err, edisk.GeometryMismatch))
}

func TestExtractLengthProperty(t *testing.T) {
	bld := newDiskBuilder(edisk.Boundary)
	for i := 0; i < 20; i++ {
		bld.addBlock(0, encodeVerbatim(testBlock(byte(i))))
	}

	disk, err := edisk.Extract(bld.build(), edisk.Boundary)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(disk.Image), 20*edisk.BlockSize)
}
