// Package skin decodes player skin images into the 64x64 layout the player
// model is textured from.
package skin

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"
)

const (
	Width        = 64
	Height       = 64
	LegacyHeight = 32
)

// ErrInvalidSize is returned for images that are not 64x64, 64x32 or an
// integer multiple of either.
var ErrInvalidSize = errors.New("invalid skin size")

// Type is the arm model a skin is drawn for
type Type int

const (
	Classic Type = iota
	Slim
)

func (t Type) String() string {
	if t == Slim {
		return "slim"
	}
	return "classic"
}

// IsSlim reports whether the skin uses 3px arms
func (t Type) IsSlim() bool { return t == Slim }

// ParseType parses "classic"/"default"/"steve" or "slim"/"alex".
// ok is false for anything else, including "auto".
func ParseType(s string) (t Type, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "default", "steve", "wide":
		return Classic, true
	case "slim", "alex":
		return Slim, true
	}
	return Classic, false
}

// Skin is a decoded skin normalized to 64x64
type Skin struct {
	Image *image.NRGBA
	Type  Type
	// Legacy is set when the source image used the pre-1.8 64x32 layout
	Legacy bool
}

// Load reads and decodes a skin file
func Load(path string) (*Skin, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open skin file: %w", err)
	}
	defer file.Close()

	s, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a PNG skin and normalizes it to 64x64
func Decode(r io.Reader) (*Skin, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img)
}

// FromImage normalizes an already decoded image. HD skins are downscaled with
// nearest-neighbour sampling, legacy skins are upgraded and the arm model is
// detected from the result.
func FromImage(img image.Image) (*Skin, error) {
	size := img.Bounds().Size()
	if size.X < Width || size.X%Width != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}

	factor := size.X / Width
	var legacy bool
	switch size.Y {
	case Height * factor:
	case LegacyHeight * factor:
		legacy = true
	default:
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}

	srcHeight := Height
	if legacy {
		srcHeight = LegacyHeight
	}
	src := image.NewNRGBA(image.Rect(0, 0, Width, srcHeight))
	if factor == 1 {
		draw.Draw(src, src.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(src, src.Bounds(), img, img.Bounds(), draw.Src, nil)
	}

	out := src
	if legacy {
		out = upgradeLegacy(src)
	}

	return &Skin{
		Image:  out,
		Type:   DetectType(out),
		Legacy: legacy,
	}, nil
}

// DetectType reports Slim when the column that only classic arms use is
// transparent. img must be in the 64x64 layout.
func DetectType(img image.Image) Type {
	b := img.Bounds()
	_, _, _, a := img.At(b.Min.X+54, b.Min.Y+20).RGBA()
	if a == 0 {
		return Slim
	}
	return Classic
}

// HasOverlay reports whether any pixel of the given rectangle is not fully
// transparent
func HasOverlay(img image.Image, r image.Rectangle) bool {
	r = r.Add(img.Bounds().Min).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return true
			}
		}
	}
	return false
}

var transparent = color.NRGBA{}
