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

package cartridgeloader_test

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/romload/byteorder"
	"github.com/jetsetilly/romload/cartridgeloader"
	"github.com/jetsetilly/romload/curated"
	"github.com/jetsetilly/romload/logger"
	"github.com/jetsetilly/romload/test"
)

func TestNewLoader(t *testing.T) {
	cl := cartridgeloader.NewLoader("roms/Mario.V64")
	test.ExpectEquality(t, cl.Filename, "roms/Mario.V64")
	test.ExpectEquality(t, cl.Container, cartridgeloader.ContainerRaw)
	test.ExpectEquality(t, cl.ShortName(), "Mario")
	test.ExpectFailure(t, cl.HasLoaded())

	cl = cartridgeloader.NewLoader("roms/Mario.ZIP")
	test.ExpectEquality(t, cl.Container, cartridgeloader.ContainerArchived)
	test.ExpectEquality(t, cl.ShortName(), "Mario")

	// creating a loader for a file that doesn't exist is fine
	cl = cartridgeloader.NewLoader("does/not/exist.z64")
	test.ExpectSuccess(t, cl.Close())
}

func TestLoadDataFailure(t *testing.T) {
	cl := cartridgeloader.NewLoaderWithSource("missing.z64", failingSource{})
	diagnostics := &test.CompareWriter{}

	b := make([]byte, 4)
	test.ExpectFailure(t, cl.LoadData(4, b, diagnostics))
	test.ExpectEquality(t, diagnostics.Writes(), 1)
	test.ExpectEquality(t, diagnostics.Lines(), 1)
	test.ExpectSuccess(t, diagnostics.Contains("'missing.z64'"))
	test.ExpectSuccess(t, diagnostics.Contains("device not ready"))

	// the failure is also logged
	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unable to get rom info from 'missing.z64'"))

	// nil diagnostics is allowed
	test.ExpectFailure(t, cl.LoadData(4, b, nil))
}

func TestLoadDataSuccess(t *testing.T) {
	img := nativeImage(0x100)
	cl := cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{data: img})
	diagnostics := &test.CompareWriter{}

	b := make([]byte, cartridgeloader.HeaderSize)
	test.ExpectSuccess(t, cl.LoadData(cartridgeloader.HeaderSize, b, diagnostics))
	test.ExpectSuccess(t, bytes.Equal(b, img[:cartridgeloader.HeaderSize]))
	test.ExpectEquality(t, diagnostics.Writes(), 0)
}

func TestSetHeaderMagic(t *testing.T) {
	for _, m := range []byteorder.Magic{byteorder.Native, byteorder.WordSwapped, byteorder.ByteSwapped} {
		cl := cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{})

		_, ok := cl.Magic()
		test.ExpectFailure(t, ok)

		test.ExpectSuccess(t, cl.SetHeaderMagic(m), m)
		v, ok := cl.Magic()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, v, m)

		test.ExpectEquality(t, cl.RequiresByteSwap(), m != byteorder.Native, m)
	}
}

func TestUnrecognisedMagic(t *testing.T) {
	cl := cartridgeloader.NewLoaderWithSource("odd.bin", &memorySource{})

	// the magic is recorded even though it is unrecognised
	test.ExpectFailure(t, cl.SetHeaderMagic(0xdeadbeef))
	v, ok := cl.Magic()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, byteorder.Magic(0xdeadbeef))
	test.ExpectSuccess(t, cl.RequiresByteSwap())

	// the unrecognised magic is always logged
	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "cartridgeloader: unknown rom format for odd.bin: 0xdeadbeef"))

	// correction leaves the buffer untouched and returns an error
	b := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04}
	o := bytes.Clone(b)
	err := cl.CorrectSwap(b)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, byteorder.UnrecognisedLayout))
	test.ExpectSuccess(t, bytes.Equal(b, o))
}

func TestMagicContract(t *testing.T) {
	cl := cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{})

	// reading the byte order before the magic has been set
	test.ExpectPanic(t, func() { cl.RequiresByteSwap() })
	test.ExpectPanic(t, func() { cl.CorrectSwap(make([]byte, 4)) })

	// setting the magic twice
	test.ExpectSuccess(t, cl.SetHeaderMagic(byteorder.Native))
	test.ExpectPanic(t, func() { cl.SetHeaderMagic(byteorder.WordSwapped) })

	v, _ := cl.Magic()
	test.ExpectEquality(t, v, byteorder.Native)
}

func TestCorrectSwapNative(t *testing.T) {
	b := []byte{
		0x80, 0x37, 0x12, 0x40, 0xaa, 0xbb, 0xcc, 0xdd,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
	}
	o := bytes.Clone(b)

	cl := cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{data: b})
	test.ExpectSuccess(t, cl.SetHeaderMagic(byteorder.Native))
	test.ExpectFailure(t, cl.RequiresByteSwap())
	test.ExpectSuccess(t, cl.CorrectSwap(b))
	test.ExpectSuccess(t, bytes.Equal(b, o))
}

func TestCorrectSwap(t *testing.T) {
	native := nativeImage(0x1000)

	for _, m := range []byteorder.Magic{byteorder.Native, byteorder.WordSwapped, byteorder.ByteSwapped} {
		stored := storedImage(native, m)
		cl := cartridgeloader.NewLoaderWithSource("test.rom", &memorySource{data: stored})

		hdr := make([]byte, cartridgeloader.HeaderSize)
		test.DemandSuccess(t, cl.LoadData(cartridgeloader.HeaderSize, hdr, nil))

		magic, err := byteorder.ReadMagic(hdr)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, magic, m)
		test.ExpectSuccess(t, cl.SetHeaderMagic(magic))

		b := make([]byte, len(stored))
		test.DemandSuccess(t, cl.LoadData(uint32(len(b)), b, nil))
		test.ExpectSuccess(t, cl.CorrectSwap(b))
		test.ExpectSuccess(t, bytes.Equal(b, native), m)
	}
}

func TestLoad(t *testing.T) {
	native := nativeImage(0x400)
	hash := fmt.Sprintf("%x", sha1.Sum(native))

	for _, m := range []byteorder.Magic{byteorder.Native, byteorder.WordSwapped, byteorder.ByteSwapped} {
		src := &memorySource{data: storedImage(native, m)}
		cl := cartridgeloader.NewLoaderWithSource("test.n64", src)

		test.DemandSuccess(t, cl.Load(), m)
		test.ExpectSuccess(t, cl.HasLoaded())
		test.ExpectSuccess(t, bytes.Equal(cl.Data, native), m)
		test.ExpectEquality(t, cl.Hash, hash)

		v, ok := cl.Magic()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, v, m)

		// loading a second time does nothing
		test.ExpectSuccess(t, cl.Load())

		hdr, err := cl.Header()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, hdr.Title, "ROMLOAD TEST")
		test.ExpectEquality(t, hdr.GameCode, "NRTE")

		test.ExpectSuccess(t, cl.Close())
		test.ExpectSuccess(t, src.closed)
	}
}

func TestLoadHash(t *testing.T) {
	native := nativeImage(0x400)

	cl := cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{data: native})
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(native))
	test.ExpectSuccess(t, cl.Load())

	cl = cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{data: native})
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestLoadErrors(t *testing.T) {
	// source failure
	cl := cartridgeloader.NewLoaderWithSource("broken.z64", failingSource{})
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "unable to get rom info from 'broken.z64'"))

	// image smaller than the header
	cl = cartridgeloader.NewLoaderWithSource("tiny.z64", &memorySource{data: nativeImage(0x40)[:0x20]})
	test.ExpectFailure(t, cl.Load())

	// image size not a multiple of four
	cl = cartridgeloader.NewLoaderWithSource("odd.z64", &memorySource{data: nativeImage(0x43)})
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.InvalidSize))
	test.ExpectFailure(t, cl.HasLoaded())

	// unrecognised layout
	img := nativeImage(0x100)
	img[0] = 0x00
	cl = cartridgeloader.NewLoaderWithSource("unknown.z64", &memorySource{data: img})
	err = cl.Load()
	test.ExpectSuccess(t, curated.Has(err, byteorder.UnrecognisedLayout))
	test.ExpectFailure(t, cl.HasLoaded())

	// header magic that doesn't match the previously set magic
	cl = cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{data: nativeImage(0x100)})
	cl.SetHeaderMagic(byteorder.ByteSwapped)
	test.ExpectFailure(t, cl.Load())
}

func TestHeaderNotLoaded(t *testing.T) {
	cl := cartridgeloader.NewLoaderWithSource("test.z64", &memorySource{})
	_, err := cl.Header()
	test.ExpectFailure(t, err)
}
