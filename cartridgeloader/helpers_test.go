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
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/romload/byteorder"
	"github.com/jetsetilly/romload/test"
)

// nativeImage returns a native order image of the specified size. size should
// be at least 0x40 bytes.
func nativeImage(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0x80, 0x37, 0x12, 0x40, 0x00, 0x00, 0x00, 0x0f, 0x80, 0x00, 0x04, 0x00})
	copy(b[0x10:], []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef})
	copy(b[0x20:], []byte("ROMLOAD TEST        "))
	copy(b[0x3b:], []byte("NRTE"))
	b[0x3f] = 0x01
	for i := 0x40; i < size; i++ {
		b[i] = byte(i * 7)
	}
	return b
}

// storedImage returns a copy of the native image in the layout indicated by
// magic.
func storedImage(native []byte, magic byteorder.Magic) []byte {
	b := bytes.Clone(native)
	switch magic {
	case byteorder.WordSwapped:
		byteorder.ReverseWords(b)
	case byteorder.ByteSwapped:
		byteorder.SwapHalfWords(b)
	}
	return b
}

// memorySource is a Source implementation backed by a byte slice.
type memorySource struct {
	data   []byte
	closed bool
}

func (src *memorySource) LoadRaw(count uint32, out []byte) error {
	if int(count) > len(src.data) {
		return errors.New("not enough data")
	}
	copy(out, src.data[:count])
	return nil
}

func (src *memorySource) Size() (int, error) {
	return len(src.data), nil
}

func (src *memorySource) Close() error {
	src.closed = true
	return nil
}

// failingSource is a Source implementation that always fails.
type failingSource struct{}

func (failingSource) LoadRaw(count uint32, out []byte) error {
	return errors.New("device not ready")
}

func (failingSource) Size() (int, error) {
	return 0, errors.New("device not ready")
}

func (failingSource) Close() error {
	return nil
}

// writeFile writes data to a file in a temporary directory and returns the
// full path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

// writeArchive writes a zip file to a temporary directory containing the
// named entries and returns the full path.
func writeArchive(t *testing.T, name string, entries map[string][]byte, order []string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range order {
		w, err := zw.Create(e)
		test.DemandSuccess(t, err)
		_, err = w.Write(entries[e])
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return fn
}
