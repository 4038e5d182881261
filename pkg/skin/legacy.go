package skin

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// mirrorCopy copies a w x h face from src to dst, flipped horizontally
type mirrorCopy struct {
	dstX, dstY int
	srcX, srcY int
	w, h       int
}

// Left limbs did not exist in the 64x32 layout; the game fills them with the
// right limbs, each face mirrored.
var legacyLimbs = []mirrorCopy{
	// left leg from right leg
	{20, 48, 4, 16, 4, 4},   // top
	{24, 48, 8, 16, 4, 4},   // bottom
	{16, 52, 8, 20, 4, 12},  // outside
	{20, 52, 4, 20, 4, 12},  // front
	{24, 52, 0, 20, 4, 12},  // inside
	{28, 52, 12, 20, 4, 12}, // back
	// left arm from right arm
	{36, 48, 44, 16, 4, 4},
	{40, 48, 48, 16, 4, 4},
	{32, 52, 48, 20, 4, 12},
	{36, 52, 44, 20, 4, 12},
	{40, 52, 40, 20, 4, 12},
	{44, 52, 52, 20, 4, 12},
}

var (
	// legacyHat is the only overlay region of a 64x32 skin
	legacyHat = image.Rect(32, 0, 64, 16)

	opaqueRegions = []image.Rectangle{
		image.Rect(0, 0, 32, 16),
		image.Rect(0, 16, 64, 32),
		image.Rect(16, 48, 48, 64),
	}
)

// upgradeLegacy converts a 64x32 skin to the 64x64 layout
func upgradeLegacy(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(dst, src.Bounds(), src, image.Point{}, draw.Src)

	for _, c := range legacyLimbs {
		sr := image.Rect(c.srcX, c.srcY, c.srcX+c.w, c.srcY+c.h)
		s2d := f64.Aff3{
			-1, 0, float64(c.dstX + c.srcX + c.w),
			0, 1, float64(c.dstY - c.srcY),
		}
		draw.NearestNeighbor.Transform(dst, s2d, src, sr, draw.Src, nil)
	}

	// Old skins often filled the hat with an opaque colour
	clearIfOpaque(dst, legacyHat)
	for _, r := range opaqueRegions {
		setOpaque(dst, r)
	}
	return dst
}

// clearIfOpaque makes r transparent unless it already contains transparency
func clearIfOpaque(img *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y).A < 128 {
				return
			}
		}
	}
	draw.Draw(img, r, image.NewUniform(transparent), image.Point{}, draw.Src)
}

func setOpaque(img *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			c.A = 255
			img.SetNRGBA(x, y, c)
		}
	}
}
