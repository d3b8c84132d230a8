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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/romload/byteorder"
	"github.com/jetsetilly/romload/curated"
)

// HeaderSize is the number of bytes at the start of a cartridge image that
// make up the header.
const HeaderSize = 0x40

// Header is the information found in the header of a cartridge image.
type Header struct {
	Magic       byteorder.Magic
	ClockRate   uint32
	BootAddress uint32
	CRC1        uint32
	CRC2        uint32

	// Title is trimmed of trailing spaces and zero bytes
	Title string

	// GameCode is the four character code made up of the category code,
	// unique code and destination code
	GameCode string

	Version uint8
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s v1.%d]", h.Title, h.GameCode, h.Version)
}

// ParseHeader interprets the first HeaderSize bytes of a native order
// cartridge image.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, curated.Errorf("cartridgeloader: header too short (%d bytes)", len(b))
	}

	magic, err := byteorder.ReadMagic(b)
	if err != nil {
		return Header{}, curated.Errorf("cartridgeloader: %v", err)
	}
	if magic != byteorder.Native {
		return Header{}, curated.Errorf("cartridgeloader: header is not in native order (%s)", magic)
	}

	return Header{
		Magic:       magic,
		ClockRate:   binary.BigEndian.Uint32(b[0x04:]),
		BootAddress: binary.BigEndian.Uint32(b[0x08:]),
		CRC1:        binary.BigEndian.Uint32(b[0x10:]),
		CRC2:        binary.BigEndian.Uint32(b[0x14:]),
		Title:       strings.TrimRight(string(b[0x20:0x34]), " \x00"),
		GameCode:    strings.TrimRight(string(b[0x3b:0x3f]), "\x00"),
		Version:     b[0x3f],
	}, nil
}
