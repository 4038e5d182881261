package skin

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mc-skinview/pkg/skinmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	green = color.NRGBA{0, 255, 0, 255}
	grey  = color.NRGBA{128, 128, 128, 255}
)

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encode(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestDecodeClassic(t *testing.T) {
	img := filled(64, 64, grey)
	img.SetNRGBA(1, 2, red)

	s, err := Decode(encode(t, img))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 64, 64), s.Image.Bounds())
	assert.Equal(t, Classic, s.Type)
	assert.False(t, s.Legacy)
	assert.Equal(t, red, s.Image.NRGBAAt(1, 2))
}

func TestDecodeSlim(t *testing.T) {
	img := filled(64, 64, grey)
	for y := 20; y < 32; y++ {
		img.SetNRGBA(54, y, color.NRGBA{})
		img.SetNRGBA(55, y, color.NRGBA{})
	}

	s, err := Decode(encode(t, img))
	require.NoError(t, err)
	assert.Equal(t, Slim, s.Type)
	assert.True(t, s.Type.IsSlim())
}

func TestDecodeLegacyMirrorsLimbs(t *testing.T) {
	img := filled(64, 32, grey)
	// right leg front spans x 4..8, y 20..32
	img.SetNRGBA(4, 20, red)
	img.SetNRGBA(7, 20, blue)
	// right arm top spans x 44..48, y 16..20
	img.SetNRGBA(44, 16, green)

	s, err := Decode(encode(t, img))
	require.NoError(t, err)

	assert.True(t, s.Legacy)
	assert.Equal(t, Classic, s.Type)
	require.Equal(t, image.Rect(0, 0, 64, 64), s.Image.Bounds())

	// left leg front spans x 20..24, y 52..64, mirrored
	assert.Equal(t, red, s.Image.NRGBAAt(23, 52))
	assert.Equal(t, blue, s.Image.NRGBAAt(20, 52))
	// left arm top spans x 36..40, y 48..52, mirrored
	assert.Equal(t, green, s.Image.NRGBAAt(39, 48))

	// original content is kept
	assert.Equal(t, red, s.Image.NRGBAAt(4, 20))
}

func TestDecodeLegacyClearsOpaqueHat(t *testing.T) {
	s, err := Decode(encode(t, filled(64, 32, grey)))
	require.NoError(t, err)
	assert.False(t, HasOverlay(s.Image, legacyHat))
	assert.True(t, HasOverlay(s.Image, image.Rect(0, 0, 32, 16)))

	img := filled(64, 32, grey)
	img.SetNRGBA(40, 4, color.NRGBA{})
	s, err = Decode(encode(t, img))
	require.NoError(t, err)
	assert.True(t, HasOverlay(s.Image, legacyHat))
	assert.Equal(t, uint8(0), s.Image.NRGBAAt(40, 4).A)
}

func TestDecodeHD(t *testing.T) {
	img := filled(128, 128, grey)
	// one skin pixel is a 2x2 block
	for y := 20; y < 22; y++ {
		for x := 10; x < 12; x++ {
			img.SetNRGBA(x, y, red)
		}
	}

	s, err := Decode(encode(t, img))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), s.Image.Bounds())
	assert.Equal(t, red, s.Image.NRGBAAt(5, 10))
	assert.Equal(t, grey, s.Image.NRGBAAt(6, 10))
}

func TestDecodeHDLegacy(t *testing.T) {
	s, err := Decode(encode(t, filled(128, 64, grey)))
	require.NoError(t, err)
	assert.True(t, s.Legacy)
	assert.Equal(t, image.Rect(0, 0, 64, 64), s.Image.Bounds())
}

func TestDecodeInvalidSize(t *testing.T) {
	for _, size := range []image.Point{{50, 50}, {64, 48}, {32, 32}, {96, 96}, {128, 96}} {
		_, err := Decode(encode(t, filled(size.X, size.Y, grey)))
		assert.ErrorIs(t, err, ErrInvalidSize, "%v", size)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not a png"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSize)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steve.png")
	require.NoError(t, os.WriteFile(path, encode(t, filled(64, 64, grey)).Bytes(), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Classic, s.Type)

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		ok   bool
	}{
		{"classic", Classic, true},
		{"Steve", Classic, true},
		{" slim ", Slim, true},
		{"alex", Slim, true},
		{"auto", Classic, false},
		{"", Classic, false},
	}
	for _, tt := range tests {
		got, ok := ParseType(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "slim", Slim.String())
	assert.Equal(t, "classic", Classic.String())
}

func TestPlaceholder(t *testing.T) {
	for _, typ := range []Type{Classic, Slim} {
		s := Placeholder(typ)
		require.NotNil(t, s.Image)
		assert.Equal(t, image.Rect(0, 0, Width, Height), s.Image.Bounds())
		assert.Equal(t, typ, s.Type)
		assert.Equal(t, typ, DetectType(s.Image), "detection agrees with %s", typ)
		assert.False(t, HasOverlay(s.Image, legacyHat), "no hat")
		assert.Equal(t, uint8(0xff), s.Image.NRGBAAt(8, 8).A, "face is opaque")
	}
}

func TestHasOverlayPerPart(t *testing.T) {
	s := Placeholder(Slim)
	player := skinmodel.NewPlayer(true)
	for _, part := range player.Overlays() {
		assert.False(t, HasOverlay(s.Image, part.Region()), part.Name)
	}
	for _, part := range player.Base() {
		assert.True(t, HasOverlay(s.Image, part.Region()), part.Name)
	}

	// one sleeve pixel only shows the left sleeve
	s.Image.SetNRGBA(50, 52, red)
	for _, part := range player.Overlays() {
		assert.Equal(t, part.Name == skinmodel.PartLeftSleeve, HasOverlay(s.Image, part.Region()), part.Name)
	}
}
