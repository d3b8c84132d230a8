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

// Package archivefs treats supported archive files as directories, allowing
// files inside an archive to be addressed with an ordinary looking path. For
// example:
//
//	roms/collection.zip/mario.z64
//
// The only supported archive type is zip.
package archivefs

import (
	"archive/zip"
	"io"

	"github.com/jetsetilly/romload/curated"
)

// Sentinal error patterns.
const (
	NoMatchingEntry = "archivefs: no matching entry in %s"
)

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive supported by archivefs
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors. The io.ReadSeeker should be closed with io.Closer if it implements
// that interface.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// FindEntry returns the name of the first file in the archive for which the
// match function returns true. Directories are never matched. Entries are
// considered in the order in which they appear in the archive.
func FindEntry(archive string, match func(name string) bool) (string, error) {
	zf, err := zip.OpenReader(archive)
	if err != nil {
		return "", curated.Errorf("archivefs: %v", err)
	}
	defer zf.Close()

	for _, f := range zf.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if match(f.Name) {
			return f.Name, nil
		}
	}

	return "", curated.Errorf(NoMatchingEntry, archive)
}
