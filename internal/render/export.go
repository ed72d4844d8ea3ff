package render

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteImage encodes the surface's current raster as PNG and writes it to
// path. A missing parent directory fails with *ExportError carrying the
// target path; other encode or IO failures propagate unchanged.
func WriteImage(s *Surface, path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ExportError{Path: path, Err: fmt.Errorf("parent directory %s does not exist", dir)}
		}
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
