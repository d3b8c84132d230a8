// This file is part of Romload.
//
// Romload is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romload is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romload.  If not, see <https://www.gnu.org/licenses/>.

package byteorder_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/romload/byteorder"
	"github.com/jetsetilly/romload/curated"
	"github.com/jetsetilly/romload/test"
)

func TestReadMagic(t *testing.T) {
	m, err := byteorder.ReadMagic([]byte{0x80, 0x37, 0x12, 0x40, 0xff})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, byteorder.Native)
	test.ExpectEquality(t, m.String(), "80371240")

	m, err = byteorder.ReadMagic([]byte{0x40, 0x12, 0x37, 0x80})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, byteorder.WordSwapped)

	m, err = byteorder.ReadMagic([]byte{0x12, 0x40, 0x80, 0x37})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, byteorder.ByteSwapped)

	_, err = byteorder.ReadMagic([]byte{0x80, 0x37, 0x12})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, byteorder.ShortHeader))
}

func TestLayout(t *testing.T) {
	test.ExpectEquality(t, byteorder.Native.Layout(), byteorder.LayoutNative)
	test.ExpectEquality(t, byteorder.WordSwapped.Layout(), byteorder.LayoutWordSwapped)
	test.ExpectEquality(t, byteorder.ByteSwapped.Layout(), byteorder.LayoutByteSwapped)
	test.ExpectEquality(t, byteorder.Magic(0x37804012).Layout(), byteorder.LayoutUnrecognised)
	test.ExpectEquality(t, byteorder.Magic(0).Layout(), byteorder.LayoutUnrecognised)

	test.ExpectSuccess(t, byteorder.Native.Recognised())
	test.ExpectFailure(t, byteorder.Magic(0xdeadbeef).Recognised())
	test.ExpectEquality(t, byteorder.LayoutUnrecognised.String(), "unrecognised")
}

// correcting an image of any recognised layout results in a native header
func TestCorrectHeader(t *testing.T) {
	for _, h := range [][]byte{
		{0x80, 0x37, 0x12, 0x40},
		{0x40, 0x12, 0x37, 0x80},
		{0x12, 0x40, 0x80, 0x37},
	} {
		m, err := byteorder.ReadMagic(h)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, m.Correct(h))

		n, err := byteorder.ReadMagic(h)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, n, byteorder.Native, m)
	}
}

func TestCorrectNative(t *testing.T) {
	b := []byte{
		0x80, 0x37, 0x12, 0x40, 0xaa, 0xbb, 0xcc, 0xdd,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
	}
	o := bytes.Clone(b)
	test.ExpectSuccess(t, byteorder.Native.Correct(b))
	test.ExpectSuccess(t, bytes.Equal(b, o))
}

func TestCorrectUnrecognised(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}
	o := bytes.Clone(b)

	err := byteorder.Magic(0xdeadbeef).Correct(b)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, byteorder.UnrecognisedLayout))
	test.ExpectEquality(t, err.Error(), "byteorder: unrecognised layout (deadbeef)")
	test.ExpectSuccess(t, bytes.Equal(b, o))
}
