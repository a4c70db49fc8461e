// Package atlas packs equally sized block textures into a single square
// sheet of straight (non-premultiplied) RGBA and addresses them by integer
// tile id.
//
// Tile id 0 is reserved for a synthesized checkerboard placeholder. Name
// lookups that miss resolve to it, so every id handed out by the atlas is
// always valid for sampling.
package atlas

import (
	"errors"
	"image"
	"image/color"
	"sort"

	"explora/internal/logging"
	"explora/internal/profiling"

	"github.com/disintegration/imaging"
)

// PlaceholderID is the tile id of the "missing texture" checkerboard
const PlaceholderID uint32 = 0

// checkerCell is the side length, in pixels, of one placeholder checker square
const checkerCell = 8

var (
	// ErrNoTextures means the source held no usable image. Pack requires a
	// non-empty texture directory.
	ErrNoTextures = errors.New("atlas: no usable textures")

	placeholderDark  = color.NRGBA{0, 0, 0, 255}
	placeholderLight = color.NRGBA{255, 255, 255, 255}
)

// Source is one candidate tile
type Source struct {
	// Name is the lookup key, normally the file stem
	Name  string
	Image image.Image
	// Origin is only used in log messages
	Origin string
}

// Atlas is an immutable packed texture sheet
type Atlas struct {
	image       *image.NRGBA
	tileSize    int
	tilesPerRow int
	count       int
	names       map[string]uint32
}

// Build packs the sources in order. The first source fixes the tile size.
// Sources without an image, non-square or differently sized sources and
// duplicate names are logged and dropped.
func Build(sources []Source) (*Atlas, error) {
	defer profiling.Track("atlas.Build")()

	accepted := make([]Source, 0, len(sources))
	seen := make(map[string]bool, len(sources))
	var ref image.Point
	for _, src := range sources {
		if src.Image == nil {
			logging.Warn("Texture %q at %s has no image data", src.Name, src.Origin)
			continue
		}
		size := src.Image.Bounds().Size()
		if size.X != size.Y || size.X == 0 {
			logging.Warn("Found non-square texture %s: %dx%d", src.Origin, size.X, size.Y)
			continue
		}
		if len(accepted) == 0 {
			ref = size
		} else if size != ref {
			logging.Warn("Found texture with invalid size: %dx%d (expected %dx%d) at %s",
				size.X, size.Y, ref.X, ref.Y, src.Origin)
			continue
		}
		if seen[src.Name] {
			logging.Warn("Duplicate texture name %q at %s, keeping the first", src.Name, src.Origin)
			continue
		}
		seen[src.Name] = true
		accepted = append(accepted, src)
	}
	if len(accepted) == 0 {
		return nil, ErrNoTextures
	}

	count := len(accepted) + 1
	perRow := tilesPerRowFor(count)
	side := perRow * ref.X

	a := &Atlas{
		image:       image.NewNRGBA(image.Rect(0, 0, side, side)),
		tileSize:    ref.X,
		tilesPerRow: perRow,
		count:       count,
		names:       make(map[string]uint32, len(accepted)),
	}
	logging.Info("Packing atlas: tiles_per_row=%d size=%dx%d tile=%dx%d",
		perRow, side, side, ref.X, ref.Y)

	a.drawPlaceholder()
	for i, src := range accepted {
		id := uint32(i + 1)
		logging.Debug("Packing texture... id=%d name=%s", id, src.Name)
		a.copyTile(id, imaging.Clone(src.Image))
		a.names[src.Name] = id
	}
	return a, nil
}

// tilesPerRowFor returns ceil(sqrt(count))
func tilesPerRowFor(count int) int {
	n := 1
	for n*n < count {
		n++
	}
	return n
}

// copyTile copies the rows of tile into slot id byte for byte
func (a *Atlas) copyTile(id uint32, tile *image.NRGBA) {
	r := a.TileRect(id)
	rowLen := a.tileSize * 4
	for y := 0; y < a.tileSize; y++ {
		dst := a.image.PixOffset(r.Min.X, r.Min.Y+y)
		src := tile.PixOffset(0, y)
		copy(a.image.Pix[dst:dst+rowLen], tile.Pix[src:src+rowLen])
	}
}

func (a *Atlas) drawPlaceholder() {
	r := a.TileRect(PlaceholderID)
	for y := 0; y < a.tileSize; y++ {
		for x := 0; x < a.tileSize; x++ {
			c := placeholderLight
			if (x/checkerCell+y/checkerCell)%2 == 0 {
				c = placeholderDark
			}
			a.image.SetNRGBA(r.Min.X+x, r.Min.Y+y, c)
		}
	}
}

// Get returns the tile id registered for name, falling back to the
// placeholder (with a warning) when the name is unknown.
func (a *Atlas) Get(name string) uint32 {
	if id, ok := a.names[name]; ok {
		return id
	}
	logging.Warn("Texture %q not found in atlas, using placeholder", name)
	return PlaceholderID
}

// Lookup is Get without the fallback or the log line
func (a *Atlas) Lookup(name string) (uint32, bool) {
	id, ok := a.names[name]
	return id, ok
}

// Len is the number of tile ids, placeholder included
func (a *Atlas) Len() int {
	return a.count
}

// Names returns the registered texture names sorted by tile id
func (a *Atlas) Names() []string {
	out := make([]string, 0, len(a.names))
	for n := range a.names {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return a.names[out[i]] < a.names[out[j]] })
	return out
}

// TileSize is the side length in pixels of one tile
func (a *Atlas) TileSize() int {
	return a.tileSize
}

// TilesPerRow is the atlas side length in tiles
func (a *Atlas) TilesPerRow() int {
	return a.tilesPerRow
}

// Size is the atlas side length in pixels
func (a *Atlas) Size() int {
	return a.tilesPerRow * a.tileSize
}

// Image returns the packed sheet. Callers must not modify it.
func (a *Atlas) Image() *image.NRGBA {
	return a.image
}

// Pix returns the packed RGBA bytes, width*height*4 long. Colour channels
// are not premultiplied by alpha.
func (a *Atlas) Pix() []byte {
	return a.image.Pix
}

// TileRect returns the pixel rectangle occupied by tile id
func (a *Atlas) TileRect(id uint32) image.Rectangle {
	col := int(id) % a.tilesPerRow
	row := int(id) / a.tilesPerRow
	min := image.Pt(col*a.tileSize, row*a.tileSize)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(a.tileSize, a.tileSize))}
}

// TileUV returns the normalized texture coordinates of tile id
func (a *Atlas) TileUV(id uint32) (u0, v0, u1, v1 float32) {
	r := a.TileRect(id)
	s := float32(a.Size())
	return float32(r.Min.X) / s, float32(r.Min.Y) / s, float32(r.Max.X) / s, float32(r.Max.Y) / s
}
