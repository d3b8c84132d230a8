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
	"crypto/sha1"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romload/byteorder"
	"github.com/jetsetilly/romload/curated"
	"github.com/jetsetilly/romload/logger"
)

// Sentinal error patterns.
const (
	UnexpectedHash = "cartridgeloader: unexpected hash value"
	InvalidSize    = "cartridgeloader: image size is not a multiple of four (%d)"
	LoadFailed     = "cartridgeloader: %v"
)

// Loader is used to specify and load a cartridge image. It should be created
// with the NewLoader() function.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// how the cartridge data is stored. decided by the filename extension
	Container Container

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data in native byte order
	Hash string

	// the entire image in native byte order after a successful call to Load()
	Data []byte

	source Source

	// header magic is nil until SetHeaderMagic() is called
	magic *byteorder.Magic
}

// NewLoader is the preferred method of initialisation for the Loader type. The
// Source is chosen according to the filename extension. NewLoader never fails,
// problems with the file are reported when data is loaded.
func NewLoader(filename string) Loader {
	return NewLoaderWithSource(filename, NewSource(filename))
}

// NewLoaderWithSource is like NewLoader() but the Source is supplied by the
// caller.
func NewLoaderWithSource(filename string, src Source) Loader {
	return Loader{
		Filename:  filename,
		Container: Classify(filename),
		source:    src,
	}
}

// ShortName returns a shortened version of the cartridge filename.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Close releases the resources held by the Source. The Data field is not
// affected.
func (cl *Loader) Close() error {
	if cl.source == nil {
		return nil
	}
	return cl.source.Close()
}

// LoadData reads the first count bytes of the cartridge image into out. If the
// data cannot be read a message is written to diagnostics and false is
// returned. The diagnostics argument can be nil.
func (cl *Loader) LoadData(count uint32, out []byte, diagnostics io.Writer) bool {
	err := cl.source.LoadRaw(count, out)
	if err != nil {
		msg := fmt.Sprintf("unable to get rom info from '%s': %v", cl.Filename, err)
		logger.Log(logger.Allow, "cartridgeloader", msg)
		if diagnostics != nil {
			io.WriteString(diagnostics, msg+"\n")
		}
		return false
	}
	return true
}

// SetHeaderMagic records the header magic of the cartridge. Returns false if
// the magic is not one of the recognised values, in which case the magic is
// still recorded and a log entry is made.
//
// The header magic can only be set once.
func (cl *Loader) SetHeaderMagic(magic byteorder.Magic) bool {
	if cl.magic != nil {
		panic(fmt.Sprintf("cartridgeloader: header magic for %s has already been set", cl.Filename))
	}
	cl.magic = &magic

	if !magic.Recognised() {
		logger.Logf(logger.Allow, "cartridgeloader", "unknown rom format for %s: 0x%s", cl.Filename, magic)
		return false
	}

	logger.Logf(logger.Allow, "cartridgeloader", "%s: %s", cl.ShortName(), magic.Layout())
	return true
}

// Magic returns the header magic and true if the magic has been set.
func (cl *Loader) Magic() (byteorder.Magic, bool) {
	if cl.magic == nil {
		return 0, false
	}
	return *cl.magic, true
}

// mustMagic returns the header magic or panics if it has not been set.
func (cl *Loader) mustMagic() byteorder.Magic {
	if cl.magic == nil {
		panic(fmt.Sprintf("cartridgeloader: header magic for %s has not been set", cl.Filename))
	}
	return *cl.magic
}

// RequiresByteSwap returns true if the image is not in native order. Panics if
// the header magic has not been set.
func (cl *Loader) RequiresByteSwap() bool {
	return cl.mustMagic() != byteorder.Native
}

// CorrectSwap rewrites the buffer in place from the layout indicated by the
// header magic to the native order. The length of the buffer should be a
// multiple of four. Panics if the header magic has not been set.
//
// Returns an error if the header magic is unrecognised. The buffer is not
// touched in that case.
func (cl *Loader) CorrectSwap(b []byte) error {
	err := cl.mustMagic().Correct(b)
	if err != nil {
		logger.Logf(logger.Allow, "cartridgeloader", "%s: %v", cl.Filename, err)
		return curated.Errorf(LoadFailed, err)
	}
	return nil
}

// Load the entire cartridge image into the Data field, normalised into native
// byte order. Subsequent calls to Load() do nothing.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	var diagnostics strings.Builder

	hdr := make([]byte, HeaderSize)
	if !cl.LoadData(HeaderSize, hdr, &diagnostics) {
		return curated.Errorf(LoadFailed, strings.TrimSpace(diagnostics.String()))
	}

	magic, err := byteorder.ReadMagic(hdr)
	if err != nil {
		return curated.Errorf(LoadFailed, err)
	}

	if m, ok := cl.Magic(); ok {
		if m != magic {
			return curated.Errorf("cartridgeloader: header magic has changed (%s to %s)", m, magic)
		}
	} else {
		cl.SetHeaderMagic(magic)
	}

	size, err := cl.source.Size()
	if err != nil {
		return curated.Errorf(LoadFailed, err)
	}
	if size%4 != 0 {
		return curated.Errorf(InvalidSize, size)
	}

	data := make([]byte, size)
	if !cl.LoadData(uint32(size), data, &diagnostics) {
		return curated.Errorf(LoadFailed, strings.TrimSpace(diagnostics.String()))
	}

	err = cl.CorrectSwap(data)
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}
	cl.Hash = hash
	cl.Data = data

	return nil
}

// Header returns the parsed header of the loaded cartridge.
func (cl *Loader) Header() (Header, error) {
	if !cl.HasLoaded() {
		return Header{}, curated.Errorf("cartridgeloader: %s has not been loaded", cl.Filename)
	}
	return ParseHeader(cl.Data)
}
