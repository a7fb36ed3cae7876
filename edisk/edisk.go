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
	"runtime"
	"sort"
	"sync"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
	"github.com/simon-frankau/mac-classic-rom-re/logger"
	"github.com/simon-frankau/mac-classic-rom-re/romimage"
)

// sentinel error patterns returned by functions in this package.
const (
	// the header's declared geometry does not fit the ROM image or is not
	// a geometry this package supports
	GeometryMismatch = "edisk: geometry mismatch: %v"

	// a block table entry names an encoding mode with no registered
	// decoder
	UnsupportedEncoding = "edisk: unsupported encoding: %v"

	// a block failed its integrity check. recoverable: the extraction
	// records the block index and carries on
	ChecksumMismatch = "edisk: checksum mismatch: %v"

	// block data extends past the end of the ROM image
	TruncatedInput = "edisk: truncated input: %v"
)

// the EDisk driver's header signature, at hdrSignature within the header
// block.
var signature = []byte("EDisk Gary D")

// BlockSize of an EDisk. The driver only ever shipped with 512 byte
// blocks.
const BlockSize = 512

// EDisk regions sit on a 64K boundary.
const Boundary = 0x10000

// field offsets within the 512 byte header block.
const (
	hdrBlockSize   = 128
	hdrVersion     = 130
	hdrSignature   = 132
	hdrDiskLen     = 144
	hdrTableOffset = 156
	hdrDataOffset  = 160

	headerLen = 512
)

// Header of one EDisk region, decoded from the ROM image.
type Header struct {
	// offset of the region within the ROM image
	Location int

	// always 1
	Version int

	// geometry. DiskLen is BlockSize * NumBlocks exactly
	DiskLen   int
	NumBlocks int

	// offsets, relative to Location, of the block table and of the base
	// that block data offsets are relative to
	TableOffset int
	DataOffset  int
}

func (hdr Header) String() string {
	return fmt.Sprintf("edisk at %#06x: %d blocks of %d bytes", hdr.Location, hdr.NumBlocks, BlockSize)
}

// IsDiskAt returns true if an EDisk header signature is present at the
// specified location.
func IsDiskAt(img *romimage.Image, location int) bool {
	sig, err := img.Slice(location+hdrSignature, len(signature))
	if err != nil {
		return false
	}
	return string(sig) == string(signature)
}

// Scan the region of the ROM image for EDisk headers. EDisks sit on 64K
// boundaries so only those locations are probed. An empty region means the
// whole image.
func Scan(img *romimage.Image, reg romimage.Region) []int {
	if reg.IsEmpty() {
		reg = romimage.Region{Offset: 0, Length: img.Size()}
	}

	var locations []int

	// align to the next boundary
	location := (reg.Offset + Boundary - 1) &^ (Boundary - 1)

	for ; location < reg.Offset+reg.Length; location += Boundary {
		if IsDiskAt(img, location) {
			logger.Logf(logger.Allow, "edisk", "found edisk at %#06x", location)
			locations = append(locations, location)
		}
	}

	return locations
}

// ReadHeader decodes and validates the EDisk header at the specified
// location.
func ReadHeader(img *romimage.Image, location int) (Header, error) {
	if _, err := img.Slice(location, headerLen); err != nil {
		return Header{}, err
	}

	if !IsDiskAt(img, location) {
		return Header{}, curated.Errorf(GeometryMismatch,
			fmt.Sprintf("no edisk signature at %#06x", location))
	}

	blockSize, _ := img.Read16(location + hdrBlockSize)
	version, _ := img.Read16(location + hdrVersion)
	diskLen, _ := img.Read32(location + hdrDiskLen)
	tableOffset, _ := img.Read32(location + hdrTableOffset)
	dataOffset, _ := img.Read32(location + hdrDataOffset)

	if version != 1 {
		return Header{}, curated.Errorf(GeometryMismatch,
			fmt.Sprintf("only version 1 is supported, header at %#06x declares %d", location, version))
	}

	if int(blockSize) != BlockSize {
		return Header{}, curated.Errorf(GeometryMismatch,
			fmt.Sprintf("only a block size of %d is supported, header at %#06x declares %d",
				BlockSize, location, blockSize))
	}

	if diskLen == 0 || diskLen%BlockSize != 0 {
		return Header{}, curated.Errorf(GeometryMismatch,
			fmt.Sprintf("disk length %d at %#06x is not a whole number of blocks", diskLen, location))
	}

	hdr := Header{
		Location:    location,
		Version:     int(version),
		DiskLen:     int(diskLen),
		NumBlocks:   int(diskLen) / BlockSize,
		TableOffset: int(tableOffset),
		DataOffset:  int(dataOffset),
	}

	// the block table must fit inside the image
	if _, err := img.Slice(location+hdr.TableOffset, hdr.NumBlocks*4); err != nil {
		return Header{}, curated.Errorf(GeometryMismatch,
			fmt.Sprintf("block table for %d blocks at %#06x does not fit the image",
				hdr.NumBlocks, location+hdr.TableOffset))
	}

	if location+hdr.DataOffset > img.Size() {
		return Header{}, curated.Errorf(GeometryMismatch,
			fmt.Sprintf("data offset %#06x at %#06x is outside the image",
				hdr.DataOffset, location))
	}

	return hdr, nil
}

// Disk is the result of extracting one EDisk region: a linear disk image
// of exactly BlockSize * NumBlocks bytes, plus the indices of any blocks
// that could not be recovered. Corrupt blocks are zero-filled in the
// image so that the surviving blocks keep their positions.
type Disk struct {
	Header Header

	// the reconstructed disk image, in logical block order
	Image []byte

	// logical indices of corrupt blocks, sorted. empty on a clean
	// extraction
	Corrupt []int
}

// a blockRef is one entry of the block table: the encoding mode in the
// top byte and a signed offset in the low 24 bits.
type blockRef struct {
	mode   uint8
	offset int
}

func readBlockRef(img *romimage.Image, hdr Header, idx int) blockRef {
	v, _ := img.Read32(hdr.Location + hdr.TableOffset + idx*4)

	offset := int(v & 0x00ffffff)

	// offsets are signed: data can sit before the data base
	if offset > 0x00800000 {
		offset -= 0x01000000
	}

	return blockRef{
		mode:   uint8(v >> 24),
		offset: offset,
	}
}

// decodeBlock decodes a single block. The resulting slice is always
// BlockSize bytes on success.
func decodeBlock(img *romimage.Image, hdr Header, ref blockRef) ([]byte, error) {
	// an all-zeroes table entry is an unstored zero block
	if ref.mode == modeVerbatim && ref.offset == 0 {
		return make([]byte, BlockSize), nil
	}

	decoder, ok := decoders[ref.mode]
	if !ok {
		return nil, curated.Errorf(UnsupportedEncoding,
			fmt.Sprintf("block mode %d (offset %#06x)", ref.mode, ref.offset))
	}

	start := hdr.Location + hdr.DataOffset + ref.offset
	storage, err := img.Slice(start, img.Size()-start)
	if err != nil {
		return nil, curated.Errorf(TruncatedInput,
			fmt.Sprintf("block storage at %#06x is outside the image", start))
	}

	return decoder(storage)
}

// number of concurrent block decodes. block decodes are independent of
// one another so the only limit is a sensible cap on goroutines.
func numWorkers() int {
	n := runtime.NumCPU()
	if n > 8 {
		n = 8
	}
	return n
}

// Extract the EDisk region at the specified location.
//
// Corrupt blocks do not abort the extraction: they appear zero-filled in
// the result and their indices are listed in the Corrupt field, so a
// partially recovered image remains usable. Structural problems
// (GeometryMismatch, UnsupportedEncoding, TruncatedInput) are fatal and
// nothing is returned.
func Extract(img *romimage.Image, location int) (*Disk, error) {
	hdr, err := ReadHeader(img, location)
	if err != nil {
		return nil, err
	}

	logger.Log(logger.Allow, "edisk", hdr.String())

	results := make([][]byte, hdr.NumBlocks)
	errs := make([]error, hdr.NumBlocks)

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = decodeBlock(img, hdr, readBlockRef(img, hdr, i))
			}
		}()
	}

	for i := 0; i < hdr.NumBlocks; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	disk := &Disk{
		Header: hdr,
		Image:  make([]byte, hdr.NumBlocks*BlockSize),
	}

	for i := 0; i < hdr.NumBlocks; i++ {
		if errs[i] != nil {
			// integrity failures are gaps in the output, anything else is
			// fatal
			if curated.Is(errs[i], ChecksumMismatch) {
				logger.Logf(logger.Allow, "edisk", "block %d: %v", i, errs[i])
				disk.Corrupt = append(disk.Corrupt, i)
				continue
			}
			return nil, errs[i]
		}
		copy(disk.Image[i*BlockSize:], results[i])
	}

	sort.Ints(disk.Corrupt)

	return disk, nil
}

// Filename returns the conventional name for the extracted disk image,
// derived from the region's location in the ROM.
func (disk *Disk) Filename() string {
	return fmt.Sprintf("EDisk-%06x.dsk", disk.Header.Location)
}
