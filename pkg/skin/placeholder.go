package skin

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var placeholderParts = []struct {
	r image.Rectangle
	c color.NRGBA
}{
	{image.Rect(0, 0, 32, 16), color.NRGBA{0xc6, 0x8e, 0x6b, 0xff}},  // head
	{image.Rect(16, 16, 40, 32), color.NRGBA{0x2f, 0x8f, 0x9d, 0xff}}, // body
	{image.Rect(40, 16, 56, 32), color.NRGBA{0xb5, 0x7f, 0x5e, 0xff}}, // right arm
	{image.Rect(32, 48, 48, 64), color.NRGBA{0xb5, 0x7f, 0x5e, 0xff}}, // left arm
	{image.Rect(0, 16, 16, 32), color.NRGBA{0x3b, 0x3b, 0x8c, 0xff}},  // right leg
	{image.Rect(16, 48, 32, 64), color.NRGBA{0x34, 0x34, 0x7d, 0xff}}, // left leg
}

// Placeholder returns a flat-coloured skin of the given type, used when no skin
// file is configured. It has no overlay.
func Placeholder(t Type) *Skin {
	img := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	for _, p := range placeholderParts {
		draw.Draw(img, p.r, image.NewUniform(p.c), image.Point{}, draw.Src)
	}
	if t.IsSlim() {
		// slim arms are one pixel narrower, their last two columns stay empty
		draw.Draw(img, image.Rect(54, 16, 56, 32), image.Transparent, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(46, 48, 48, 64), image.Transparent, image.Point{}, draw.Src)
	}
	return &Skin{Image: img, Type: t}
}
