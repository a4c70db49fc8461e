package atlas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"explora/internal/logging"
	"explora/internal/profiling"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Error reports an I/O failure on the texture directory itself
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("atlas: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pack reads every image in dir, in lexical file name order, and packs
// them into an atlas keyed by file stem. Unreadable or mismatched files are
// logged and skipped; failing to list dir is returned as *Error.
func Pack(dir string) (*Atlas, error) {
	defer profiling.Track("atlas.Pack")()

	files, err := ListImages(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTextures, dir)
	}

	sources := make([]Source, 0, len(files))
	for _, path := range files {
		img, err := imaging.Open(path)
		if err != nil {
			logging.Warn("Failed to read texture at %s: %v", path, err)
			continue
		}
		sources = append(sources, Source{Name: stem(path), Image: img, Origin: path})
	}

	a, err := Build(sources)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, dir)
	}
	logging.Info("Packed %d textures from %s", a.Len()-1, dir)
	return a, nil
}

// ListImages returns the image files directly inside dir, sorted by name
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Op: "list", Path: dir, Err: err}
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Save writes the packed sheet to path; the format follows the extension
func (a *Atlas) Save(path string) error {
	if err := imaging.Save(a.image, path); err != nil {
		return fmt.Errorf("save atlas: %w", err)
	}
	logging.Debug("Atlas written to %s", path)
	return nil
}
