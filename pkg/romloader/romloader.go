// Package romloader loads a cartridge image from disk, transparently
// decompressing it when the file extension calls for it. Plain
// .gb/.gbc/.bin images pass through unchanged.
package romloader

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
)

// Load reads path and returns its cartridge image, decompressing
// .gz/.zip/.7z/.br containers. A .zip or .7z archive's first entry is
// taken to be the ROM.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gb", ".gbc", ".bin":
		return io.ReadAll(f)
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".br":
		r := cbrotli.NewReader(f)
		defer r.Close()
		return io.ReadAll(r)
	case ".zip":
		fi, err := f.Stat()
		if err != nil {
			return nil, err
		}
		zr, err := zip.NewReader(f, fi.Size())
		if err != nil {
			return nil, err
		}
		return readFirstEntry(zr.File[0].Open)
	case ".7z":
		fi, err := f.Stat()
		if err != nil {
			return nil, err
		}
		sr, err := sevenzip.NewReader(f, fi.Size())
		if err != nil {
			return nil, err
		}
		return readFirstEntry(sr.File[0].Open)
	default:
		return io.ReadAll(f)
	}
}

func readFirstEntry(open func() (io.ReadCloser, error)) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
