package skinmodel

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SkinWidth and SkinHeight are the dimensions of a modern skin sheet in pixels
	SkinWidth  = 64
	SkinHeight = 64
)

// Layer distinguishes the base body from the outer (second) skin layer
type Layer int

const (
	LayerBase Layer = iota
	LayerOverlay
)

func (l Layer) String() string {
	if l == LayerOverlay {
		return "overlay"
	}
	return "base"
}

// Part names
const (
	PartHead        = "head"
	PartBody        = "body"
	PartRightArm    = "right_arm"
	PartLeftArm     = "left_arm"
	PartRightLeg    = "right_leg"
	PartLeftLeg     = "left_leg"
	PartHat         = "hat"
	PartJacket      = "jacket"
	PartRightSleeve = "right_sleeve"
	PartLeftSleeve  = "left_sleeve"
	PartRightPants  = "right_pants"
	PartLeftPants   = "left_pants"
)

// Part is one textured box of the player model
type Part struct {
	Name  string
	Layer Layer
	// Bone is the base part whose pose this part follows
	Bone string

	Size mgl32.Vec3
	// UV is the top-left corner of the box unfold on the skin, in pixels
	UV      [2]float32
	Center  mgl32.Vec3
	Pivot   mgl32.Vec3
	Inflate float32

	Mesh *Mesh
}

// ModelMatrix places the y-down box mesh into y-up model space, feet at the origin
func (p *Part) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.Center[0], p.Center[1], p.Center[2]).
		Mul4(mgl32.HomogRotate3DZ(math.Pi))
}

// Player is the full set of parts for one skin
type Player struct {
	Slim  bool
	Parts []*Part
}

type partSpec struct {
	name, bone string
	layer      Layer
	size       mgl32.Vec3
	uv         [2]float32
	center     mgl32.Vec3
	pivot      mgl32.Vec3
	inflate    float32
}

func playerLayout(slim bool) []partSpec {
	armWidth, armX := float32(4), float32(6)
	if slim {
		armWidth, armX = 3, 5.5
	}

	arm := mgl32.Vec3{armWidth, 12, 4}
	limb := mgl32.Vec3{4, 12, 4}

	base := []partSpec{
		{name: PartHead, size: mgl32.Vec3{8, 8, 8}, uv: [2]float32{0, 0}, center: mgl32.Vec3{0, 28, 0}, pivot: mgl32.Vec3{0, 24, 0}},
		{name: PartBody, size: mgl32.Vec3{8, 12, 4}, uv: [2]float32{16, 16}, center: mgl32.Vec3{0, 18, 0}, pivot: mgl32.Vec3{0, 12, 0}},
		{name: PartRightArm, size: arm, uv: [2]float32{40, 16}, center: mgl32.Vec3{-armX, 18, 0}, pivot: mgl32.Vec3{-5, 22, 0}},
		{name: PartLeftArm, size: arm, uv: [2]float32{32, 48}, center: mgl32.Vec3{armX, 18, 0}, pivot: mgl32.Vec3{5, 22, 0}},
		{name: PartRightLeg, size: limb, uv: [2]float32{0, 16}, center: mgl32.Vec3{-2, 6, 0}, pivot: mgl32.Vec3{-2, 12, 0}},
		{name: PartLeftLeg, size: limb, uv: [2]float32{16, 48}, center: mgl32.Vec3{2, 6, 0}, pivot: mgl32.Vec3{2, 12, 0}},
	}

	overlays := map[string]struct {
		name    string
		uv      [2]float32
		inflate float32
	}{
		PartHead:     {PartHat, [2]float32{32, 0}, 1.125},
		PartBody:     {PartJacket, [2]float32{16, 32}, 1.0625},
		PartRightArm: {PartRightSleeve, [2]float32{40, 32}, 1.0625},
		PartLeftArm:  {PartLeftSleeve, [2]float32{48, 48}, 1.0625},
		PartRightLeg: {PartRightPants, [2]float32{0, 32}, 1.0625},
		PartLeftLeg:  {PartLeftPants, [2]float32{0, 48}, 1.0625},
	}

	specs := make([]partSpec, 0, len(base)*2)
	for _, s := range base {
		s.bone, s.layer, s.inflate = s.name, LayerBase, 1
		specs = append(specs, s)
	}
	for _, s := range base {
		o := overlays[s.name]
		s.bone, s.name, s.layer = s.name, o.name, LayerOverlay
		s.uv, s.inflate = o.uv, o.inflate
		specs = append(specs, s)
	}
	return specs
}

// NewPlayer builds every part of the player model for a classic (4px arms) or
// slim (3px arms) skin. Texture coordinates are normalized to the 64x64 sheet.
func NewPlayer(slim bool) *Player {
	specs := playerLayout(slim)
	p := &Player{Slim: slim, Parts: make([]*Part, 0, len(specs))}
	for _, s := range specs {
		p.Parts = append(p.Parts, buildPart(s))
	}
	return p
}

func buildPart(s partSpec) *Part {
	w, h, d := s.size[0], s.size[1], s.size[2]
	mesh := NewBox(w, h, d,
		2*(w+d)/SkinWidth, (h+d)/SkinHeight,
		s.uv[0]/SkinWidth, s.uv[1]/SkinHeight,
		// slim arms are already 3 wide, the plain unfold gives the 4,3,4,3 strip
		false,
	)
	if s.inflate != 1 {
		mesh = mesh.Transform(mgl32.Scale3D(s.inflate, s.inflate, s.inflate))
	}

	return &Part{
		Name:    s.name,
		Layer:   s.layer,
		Bone:    s.bone,
		Size:    s.size,
		UV:      s.uv,
		Center:  s.center,
		Pivot:   s.pivot,
		Inflate: s.inflate,
		Mesh:    mesh,
	}
}

// Region is the pixel rectangle of the part's box unfold on the skin sheet
func (p *Part) Region() image.Rectangle {
	w, h, d := int(p.Size[0]), int(p.Size[1]), int(p.Size[2])
	x, y := int(p.UV[0]), int(p.UV[1])
	return image.Rect(x, y, x+2*(w+d), y+h+d)
}

// Part returns the part with the given name, or nil
func (p *Player) Part(name string) *Part {
	for _, part := range p.Parts {
		if part.Name == name {
			return part
		}
	}
	return nil
}

// Base returns the base layer parts in draw order
func (p *Player) Base() []*Part { return p.layer(LayerBase) }

// Overlays returns the outer layer parts in draw order
func (p *Player) Overlays() []*Part { return p.layer(LayerOverlay) }

func (p *Player) layer(l Layer) []*Part {
	var parts []*Part
	for _, part := range p.Parts {
		if part.Layer == l {
			parts = append(parts, part)
		}
	}
	return parts
}
