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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romload/curated"
)

// Entry represents a single child of a directory or archive
type Entry struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has IsArchive set to true. note that an
	// archive file is also considered to be directory
	IsArchive bool
}

func (e Entry) String() string {
	return e.Name
}

// Path represents a single destination in the file system
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, we split the in-zip path into the path
	// to a directory and the file itself. in-zip paths always use forward
	// slashes
	inZipPath string
	inZipFile string
}

// String returns the current path
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the Set()
// function. Files inside an archive are decompressed in their entirety.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing directory
// of that file
func (afs *Path) List() ([]Entry, error) {
	var ent []Entry

	if afs.zf != nil {
		for _, f := range afs.zf.File {
			name := strings.TrimSuffix(f.Name, "/")
			dir := path.Dir(name)
			if dir == "." {
				dir = ""
			}

			if dir != afs.inZipPath {
				continue
			}

			ent = append(ent, Entry{
				Name:  path.Base(name),
				IsDir: f.FileInfo().IsDir(),
			})
		}
	} else {
		p := afs.current
		if !afs.isDir {
			p = filepath.Dir(p)
		}

		dir, err := os.ReadDir(p)
		if err != nil {
			return nil, curated.Errorf("archivefs: entries: %v", err)
		}

		for _, d := range dir {
			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			fi, err := os.Stat(filepath.Join(p, d.Name()))
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Entry{
					Name:  d.Name(),
					IsDir: true,
				})
			} else if IsArchiveExt(d.Name()) {
				ent = append(ent, Entry{
					Name:      d.Name(),
					IsDir:     true,
					IsArchive: true,
				})
			} else {
				ent = append(ent, Entry{
					Name: d.Name(),
				})
			}
		}
	}

	Sort(ent)

	return ent, nil
}

// Set the path. Path elements that refer to a zip file are treated as
// directories and subsequent elements are looked for inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			p := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}

			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return curated.Errorf("archivefs: set: %v", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(current)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return curated.Errorf("archivefs: set: %v", err)
		}
	}

	afs.current = filepath.Clean(current)

	return nil
}
