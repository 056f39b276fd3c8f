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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gbheader/archivefs"
	"github.com/jetsetilly/gbheader/curated"
)

// Sentinel error patterns returned by Load().
const (
	// the hash of the loaded data does not match the expected hash
	UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"

	// the scheme of the filename URL is not supported
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
)

// Loader is used to specify the cartridge data to load.
type Loader struct {
	// filename of cartridge to load. can be a URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename. The path and
// file extension are removed.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(shortCartName))
	return archivefs.TrimArchiveExt(shortCartName)
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	filename := cl.Filename

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
		if scheme == "file" {
			filename = u.Path
		}
	}

	// a single letter scheme is probably a windows drive letter
	if len(scheme) == 1 {
		scheme = "file"
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("HTTP status %s", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		data, err = archivefs.ReadFile(filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
