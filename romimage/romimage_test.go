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

package romimage_test

import (
	"testing"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
	"github.com/simon-frankau/mac-classic-rom-re/romimage"
	"github.com/simon-frankau/mac-classic-rom-re/test"
)

func TestBigEndianReads(t *testing.T) {
	img := romimage.NewImage([]byte{0x12, 0x34, 0x56, 0x78})

	b, err := img.Read8(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0x34)

	w, err := img.Read16(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0x1234)

	l, err := img.Read32(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, uint32(0x12345678))
}

func TestTruncatedReads(t *testing.T) {
	img := romimage.NewImage([]byte{0x12, 0x34})

	_, err := img.Read16(1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romimage.TruncatedInput))

	_, err = img.Read32(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romimage.TruncatedInput))

	_, err = img.Read8(-1)
	test.ExpectFailure(t, err)

	_, err = img.Slice(0, 3)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romimage.TruncatedInput))
}

func TestRegion(t *testing.T) {
	img := romimage.NewImage([]byte{0x00, 0x01, 0x02, 0x03, 0x04})

	reg := romimage.Region{Offset: 1, Length: 3}
	test.ExpectSuccess(t, !reg.IsEmpty())

	s, err := reg.Slice(img)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(s), 3)
	test.ExpectEquality(t, s[0], 0x01)

	reg = romimage.Region{Offset: 3, Length: 3}
	_, err = reg.Slice(img)
	test.ExpectSuccess(t, curated.Is(err, romimage.TruncatedInput))

	test.ExpectSuccess(t, romimage.Region{}.IsEmpty())
}
