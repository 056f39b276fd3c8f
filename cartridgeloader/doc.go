// This file is part of gbheader.
//
// gbheader is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbheader is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbheader.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader is used to read cartridge data into memory.
//
// The Load() function handles loading of data from different sources.
// Currently local files, files inside zip archives and data over HTTP are
// supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/Tetris.gb",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// The loader does not interpret the data in any way. The header package
// should be used for that:
//
//	cl := cartridgeloader.NewLoader("roms.zip/Tetris.gb")
//	err := cl.Load()
//	if err != nil {
//		return err
//	}
//	hdr, err := header.Parse(cl.Data)
package cartridgeloader
