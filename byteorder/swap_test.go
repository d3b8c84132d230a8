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
	"math/rand"
	"testing"

	"github.com/jetsetilly/romload/byteorder"
	"github.com/jetsetilly/romload/test"
)

func TestSwapHalfWords(t *testing.T) {
	b := []byte{0x40, 0x12, 0x37, 0x80, 0x01, 0x02, 0x03, 0x04}
	byteorder.SwapHalfWords(b)
	test.ExpectSuccess(t, bytes.Equal(b, []byte{0x37, 0x80, 0x40, 0x12, 0x03, 0x04, 0x01, 0x02}))

	b = []byte{0x12, 0x40, 0x80, 0x37}
	byteorder.SwapHalfWords(b)
	test.ExpectSuccess(t, bytes.Equal(b, []byte{0x80, 0x37, 0x12, 0x40}))
}

func TestReverseWords(t *testing.T) {
	b := []byte{0x40, 0x12, 0x37, 0x80, 0x01, 0x02, 0x03, 0x04}
	byteorder.ReverseWords(b)
	test.ExpectSuccess(t, bytes.Equal(b, []byte{0x80, 0x37, 0x12, 0x40, 0x04, 0x03, 0x02, 0x01}))
}

func TestTrailingBytes(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	byteorder.ReverseWords(b)
	test.ExpectSuccess(t, bytes.Equal(b, []byte{0x04, 0x03, 0x02, 0x01, 0x05, 0x06, 0x07}))

	b = []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	byteorder.SwapHalfWords(b)
	test.ExpectSuccess(t, bytes.Equal(b, []byte{0x03, 0x04, 0x01, 0x02, 0x05, 0x06, 0x07}))

	// buffers shorter than a single group are left alone
	b = []byte{0x01, 0x02}
	byteorder.ReverseWords(b)
	byteorder.SwapHalfWords(b)
	test.ExpectSuccess(t, bytes.Equal(b, []byte{0x01, 0x02}))

	byteorder.ReverseWords(nil)
	byteorder.SwapHalfWords(nil)
}

// applying either transform twice restores the original buffer
func TestInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(0x80371240))

	transforms := []struct {
		name string
		f    func([]byte)
	}{
		{name: "ReverseWords", f: byteorder.ReverseWords},
		{name: "SwapHalfWords", f: byteorder.SwapHalfWords},
	}

	for _, tr := range transforms {
		for i := 0; i < 64; i++ {
			b := make([]byte, i*4)
			rng.Read(b)
			o := bytes.Clone(b)

			tr.f(b)
			tr.f(b)
			test.ExpectSuccess(t, bytes.Equal(b, o), tr.name, len(b))
		}
	}
}
