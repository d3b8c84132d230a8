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
	"strings"

	"github.com/jetsetilly/romload/archivefs"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{
	".v64", ".n64", ".bin", ".pal", ".zip", ".z64", ".rom", ".jap", ".usa",
}

// IsROMFilename returns true if the filename has one of the extensions in the
// FileExtensions list. Alphabetic characters in the extension can be in upper
// or lower case or a mixture of both.
func IsROMFilename(filename string) bool {
	f := strings.ToLower(filename)
	for _, ext := range FileExtensions {
		if strings.HasSuffix(f, ext) {
			return true
		}
	}
	return false
}

// IsArchive returns true if the filename should be treated as an archive.
func IsArchive(filename string) bool {
	return archivefs.IsArchiveExt(filename)
}

// Container indicates how the cartridge data is stored.
type Container int

// List of valid Container values.
const (
	ContainerRaw Container = iota
	ContainerArchived
)

func (c Container) String() string {
	switch c {
	case ContainerArchived:
		return "archived"
	}
	return "raw"
}

// Classify returns the Container type for the filename. Only archive
// extensions are considered, any other filename is classified as
// ContainerRaw whether or not it has a recognised extension.
func Classify(filename string) Container {
	if IsArchive(filename) {
		return ContainerArchived
	}
	return ContainerRaw
}
