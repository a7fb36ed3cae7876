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

package romimage

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
	"github.com/simon-frankau/mac-classic-rom-re/logger"
)

// sentinel error patterns returned by functions in this package.
const (
	LoadError = "rom image: %v"

	// a read passes the end of the image. the error message names the byte
	// offset at fault
	TruncatedInput = "rom image: truncated input: %v"
)

// Image is a ROM image loaded whole into memory. The data is never modified
// after loading and so can be shared freely between concurrent extraction
// passes.
type Image struct {
	// filename the image was loaded from
	Filename string

	// SHA1 of the loaded data, for matching against a revision's expected
	// hash. in the case of a gzipped file this is the hash of the
	// uncompressed data
	Hash string

	data []byte
}

// Load a ROM image from file. Files with the ".gz" extension are
// decompressed transparently; ROM dumps are commonly archived that way.
func Load(filename string) (*Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	var r io.Reader = f

	if strings.HasSuffix(strings.ToLower(filename), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	img := &Image{
		Filename: filename,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		data:     data,
	}

	logger.Logf(logger.Allow, "rom image", "%s: %d bytes, sha1 %s", filename, len(data), img.Hash)

	return img, nil
}

// NewImage wraps existing data in an Image. Used by tests and by callers
// that source ROM data from somewhere other than the filesystem.
func NewImage(data []byte) *Image {
	return &Image{
		Hash: fmt.Sprintf("%x", sha1.Sum(data)),
		data: data,
	}
}

// Size of the image in bytes.
func (img *Image) Size() int {
	return len(img.data)
}

// Read8 returns the byte at the specified offset.
func (img *Image) Read8(offset int) (uint8, error) {
	if offset < 0 || offset >= len(img.data) {
		return 0, img.truncated(offset, 1)
	}
	return img.data[offset], nil
}

// Read16 returns the big-endian 16bit value at the specified offset. The
// 68000 is a big-endian CPU and all multi-byte values in the ROM are stored
// that way.
func (img *Image) Read16(offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(img.data) {
		return 0, img.truncated(offset, 2)
	}
	return uint16(img.data[offset])<<8 | uint16(img.data[offset+1]), nil
}

// Read32 returns the big-endian 32bit value at the specified offset.
func (img *Image) Read32(offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(img.data) {
		return 0, img.truncated(offset, 4)
	}
	return uint32(img.data[offset])<<24 | uint32(img.data[offset+1])<<16 |
		uint32(img.data[offset+2])<<8 | uint32(img.data[offset+3]), nil
}

// Slice returns the bytes in the specified range. The returned slice is a
// view onto the image data and must not be modified.
func (img *Image) Slice(offset int, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(img.data) {
		return nil, img.truncated(offset, length)
	}
	return img.data[offset : offset+length], nil
}

func (img *Image) truncated(offset int, length int) error {
	return curated.Errorf(TruncatedInput,
		fmt.Sprintf("read of %d bytes at offset %#06x passes end of image (size %d)",
			length, offset, len(img.data)))
}
