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

// Package cartridgeloader is used to load N64 cartridge images and to
// normalise them into the native byte order.
//
// The Loader type is created with NewLoader(). The filename extension decides
// how the data is read: files with the ".zip" extension are treated as an
// archive and the first ROM file inside the archive is used, every other file
// is read directly.
//
//	cl := cartridgeloader.NewLoader("roms/mario.v64")
//	defer cl.Close()
//
//	err := cl.Load()
//	if err != nil {
//		return err
//	}
//
// After a successful Load() the Data field contains the entire image in native
// byte order. The lower level functions LoadData(), SetHeaderMagic() and
// CorrectSwap() are available for callers that need to control how much of
// the image is read.
//
// The header magic of a Loader can be set only once. Reading the byte order
// before the magic has been set, or setting it twice, is a programming error
// and will cause a panic.
package cartridgeloader
