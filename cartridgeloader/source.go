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

package cartridgeloader

import (
	"io"
	"path/filepath"

	"github.com/jetsetilly/romload/archivefs"
	"github.com/jetsetilly/romload/curated"
)

// Sentinal error patterns.
const (
	ShortRead      = "cartridgeloader: short read (%d of %d bytes)"
	BufferTooSmall = "cartridgeloader: buffer too small (%d bytes for %d)"
)

// Source implementations supply the raw bytes of a cartridge image from a
// backing store.
type Source interface {
	// LoadRaw fills the first count bytes of out with the first count bytes of
	// the image. The contents of out are unspecified if an error is returned.
	LoadRaw(count uint32, out []byte) error

	// Size returns the size of the entire image in bytes.
	Size() (int, error)

	// Close releases any resources held by the Source. The Source can be
	// used again after Close(), in which case resources will be acquired
	// again.
	Close() error
}

// NewSource returns the Source implementation suitable for the filename.
func NewSource(filename string) Source {
	switch Classify(filename) {
	case ContainerArchived:
		return &archiveSource{filename: filename}
	}
	return &rawSource{filename: filename}
}

// seeker is the common part of the rawSource and archiveSource types.
type seeker struct {
	r    io.ReadSeeker
	size int
}

func (s *seeker) loadRaw(count uint32, out []byte) error {
	if len(out) < int(count) {
		return curated.Errorf(BufferTooSmall, len(out), count)
	}
	_, err := s.r.Seek(0, io.SeekStart)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	n, err := io.ReadFull(s.r, out[:count])
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return curated.Errorf(ShortRead, n, count)
		}
		return curated.Errorf("cartridgeloader: %v", err)
	}
	return nil
}

func (s *seeker) close() error {
	var err error
	if c, ok := s.r.(io.Closer); ok {
		err = c.Close()
	}
	s.r = nil
	s.size = 0
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	return nil
}

// rawSource reads directly from the named file. The file can itself be inside
// an archive if the path says so, eg. "roms.zip/mario.z64"
type rawSource struct {
	filename string
	seeker
}

func (src *rawSource) open() error {
	if src.r != nil {
		return nil
	}
	r, sz, err := archivefs.Open(src.filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	src.r = r
	src.size = sz
	return nil
}

func (src *rawSource) LoadRaw(count uint32, out []byte) error {
	if err := src.open(); err != nil {
		return err
	}
	return src.loadRaw(count, out)
}

func (src *rawSource) Size() (int, error) {
	if err := src.open(); err != nil {
		return 0, err
	}
	return src.size, nil
}

func (src *rawSource) Close() error {
	return src.close()
}

// archiveSource reads from the first ROM file inside an archive. The entry is
// decompressed in its entirety when the source is first used.
type archiveSource struct {
	filename string
	entry    string
	seeker
}

// isArchiveEntry is used to select the entry in an archive that contains the
// cartridge data. nested archives are not supported.
func isArchiveEntry(name string) bool {
	return IsROMFilename(name) && !IsArchive(name)
}

func (src *archiveSource) open() error {
	if src.r != nil {
		return nil
	}

	entry, err := archivefs.FindEntry(src.filename, isArchiveEntry)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	r, sz, err := archivefs.Open(filepath.Join(src.filename, filepath.FromSlash(entry)))
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	src.entry = entry
	src.r = r
	src.size = sz

	return nil
}

func (src *archiveSource) LoadRaw(count uint32, out []byte) error {
	if err := src.open(); err != nil {
		return err
	}
	return src.loadRaw(count, out)
}

func (src *archiveSource) Size() (int, error) {
	if err := src.open(); err != nil {
		return 0, err
	}
	return src.size, nil
}

func (src *archiveSource) Close() error {
	src.entry = ""
	return src.close()
}
