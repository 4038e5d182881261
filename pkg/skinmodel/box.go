package skinmodel

const (
	// PointCount is the number of corners produced for one box
	PointCount = 8
	// TexCoordCount is the number of UV positions in the box unfold
	TexCoordCount = 13
	// FaceStride is the number of integers describing one triangle
	FaceStride = 6
	// TriangleCount is the number of triangles per winding of a box
	TriangleCount = 12
)

// boxFaces lists the box triangles as (point, texcoord) pairs, wound so their
// normals point into the box.
// Order: TOP, RIGHT, FRONT, LEFT, BACK, BOTTOM, two triangles each.
var boxFaces = [TriangleCount * FaceStride]int32{
	// TOP
	5, 0, 4, 1, 0, 5,
	5, 0, 0, 5, 1, 4,
	// RIGHT
	0, 5, 4, 6, 6, 11,
	0, 5, 6, 11, 2, 10,
	// FRONT
	1, 4, 0, 5, 2, 10,
	1, 4, 2, 10, 3, 9,
	// LEFT
	5, 3, 1, 4, 3, 9,
	5, 3, 3, 9, 7, 8,
	// BACK
	4, 6, 5, 7, 7, 12,
	4, 6, 7, 12, 6, 11,
	// BOTTOM
	3, 5, 2, 6, 6, 2,
	3, 5, 6, 2, 7, 1,
}

// CreatePoints returns the 8 corners of a width x height x depth box centred
// at the origin as a flat x,y,z sequence.
//
// Corners are ordered front (+depth) first, then back, each group as
// left-bottom, right-bottom, left-top, right-top. Positions are y-down:
// the top face of the box sits at -height/2.
func CreatePoints(width, height, depth float32) []float32 {
	w, h, d := width/2, height/2, depth/2

	return []float32{
		-w, -h, d,  // P0
		w, -h, d,   // P1
		-w, h, d,   // P2
		w, h, d,    // P3
		-w, -h, -d, // P4
		w, -h, -d,  // P5
		-w, h, -d,  // P6
		w, h, -d,   // P7
	}
}

// CreateTexCoords returns the 13 UV positions of the box unfold as a flat
// u,v sequence. The unfold occupies scaleX x scaleY starting at (startX, startY).
//
// Layout, three rows:
//
//	     T0 . T1 . T2
//	T3 . T4 . T5 . T6 . T7
//	T8 . T9 .T10 .T11 .T12
//
// slim selects the depth fraction instead of the width fraction for the
// last strip (T6/T11).
func CreateTexCoords(width, height, depth, scaleX, scaleY, startX, startY float32, slim bool) []float32 {
	x := (width + depth) * 2
	y := height + depth

	halfWidth := width / x * scaleX
	halfDepth := depth / x * scaleX

	topX := depth/x*scaleX + startX
	topY := startY

	arm4 := halfWidth
	if slim {
		arm4 = halfDepth
	}

	bottomX := startX
	middleY := depth/y*scaleY + topY
	bottomY := scaleY + topY

	return []float32{
		topX, topY,                               // T0
		topX + halfWidth, topY,                   // T1
		topX + halfWidth*2, topY,                 // T2
		bottomX, middleY,                         // T3
		bottomX + halfDepth, middleY,             // T4
		bottomX + halfDepth + halfWidth, middleY, // T5
		bottomX + scaleX - arm4, middleY,         // T6
		bottomX + scaleX, middleY,                // T7
		bottomX, bottomY,                         // T8
		bottomX + halfDepth, bottomY,             // T9
		bottomX + halfDepth + halfWidth, bottomY, // T10
		bottomX + scaleX - arm4, bottomY,         // T11
		bottomX + scaleX, bottomY,                // T12
	}
}

// CreateFaces returns the box topology: the 12 inward-facing triangles followed
// by the same triangles with reversed winding, 24 triangles in total.
// The result does not depend on the box dimensions.
func CreateFaces() []int32 {
	faces := make([]int32, 0, len(boxFaces)*2)
	faces = append(faces, boxFaces[:]...)
	return append(faces, MirrorFaces(boxFaces[:])...)
}

// MirrorFaces reverses a face sequence element by element and then swaps every
// consecutive pair, which keeps each (point, texcoord) pair intact while
// reversing both the triangle order and each triangle's winding.
func MirrorFaces(faces []int32) []int32 {
	if len(faces)%2 != 0 {
		panic("skinmodel: face sequence must hold (point, texcoord) pairs")
	}

	mirrored := make([]int32, len(faces))
	for i, v := range faces {
		mirrored[len(faces)-1-i] = v
	}
	for i := 0; i < len(mirrored); i += 2 {
		mirrored[i], mirrored[i+1] = mirrored[i+1], mirrored[i]
	}
	return mirrored
}

// NewBox builds the mesh of one box-mapped cuboid.
// Inputs are not validated; non-finite values propagate into the mesh.
func NewBox(width, height, depth, scaleX, scaleY, startX, startY float32, slim bool) *Mesh {
	m := &Mesh{}
	m.Points = append(m.Points, CreatePoints(width, height, depth)...)
	m.TexCoords = append(m.TexCoords, CreateTexCoords(width, height, depth, scaleX, scaleY, startX, startY, slim)...)
	m.Faces = append(m.Faces, CreateFaces()...)
	return m
}
