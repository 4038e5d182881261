package skinmodel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// InterleavedStride is the float count of one vertex produced by Interleave:
// position(3) + normal(3) + uv(2)
const InterleavedStride = 8

// Mesh is an indexed triangle mesh in the layout of a JavaFX-style
// TriangleMesh: flat points, flat texture coordinates and faces made of
// (point index, texcoord index) pairs.
type Mesh struct {
	Points    []float32
	TexCoords []float32
	Faces     []int32
}

// Vertex is one resolved corner of a triangle
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

func (m *Mesh) NumPoints() int    { return len(m.Points) / 3 }
func (m *Mesh) NumTexCoords() int { return len(m.TexCoords) / 2 }
func (m *Mesh) NumFaces() int     { return len(m.Faces) / FaceStride }

// Point returns point i
func (m *Mesh) Point(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Points[i*3], m.Points[i*3+1], m.Points[i*3+2]}
}

// TexCoord returns texture coordinate i
func (m *Mesh) TexCoord(i int) mgl32.Vec2 {
	return mgl32.Vec2{m.TexCoords[i*2], m.TexCoords[i*2+1]}
}

// Triangle resolves face i into its three vertices
func (m *Mesh) Triangle(i int) [3]Vertex {
	f := m.Faces[i*FaceStride : (i+1)*FaceStride]
	var tri [3]Vertex
	for k := 0; k < 3; k++ {
		tri[k] = Vertex{
			Position: m.Point(int(f[k*2])),
			UV:       m.TexCoord(int(f[k*2+1])),
		}
	}
	return tri
}

// Triangles resolves every face in order
func (m *Mesh) Triangles() [][3]Vertex {
	tris := make([][3]Vertex, m.NumFaces())
	for i := range tris {
		tris[i] = m.Triangle(i)
	}
	return tris
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Points:    append([]float32(nil), m.Points...),
		TexCoords: append([]float32(nil), m.TexCoords...),
		Faces:     append([]int32(nil), m.Faces...),
	}
}

// Transform returns a copy of the mesh with every point multiplied by mat.
// Texture coordinates and faces are shared by value, never by reference.
func (m *Mesh) Transform(mat mgl32.Mat4) *Mesh {
	out := m.Clone()
	for i := 0; i < out.NumPoints(); i++ {
		p := mgl32.TransformCoordinate(m.Point(i), mat)
		out.Points[i*3], out.Points[i*3+1], out.Points[i*3+2] = p[0], p[1], p[2]
	}
	return out
}

// Bounds returns the axis-aligned bounds of the points
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if m.NumPoints() == 0 {
		return
	}
	lo, hi = m.Point(0), m.Point(0)
	for i := 1; i < m.NumPoints(); i++ {
		p := m.Point(i)
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}

// Interleave de-indexes the mesh into a flat vertex stream suitable for
// glDrawArrays: position(3), normal(3), uv(2) per vertex, three vertices per
// face. The normal follows the counter-clockwise winding of each triangle.
func (m *Mesh) Interleave() []float32 {
	vertices := make([]float32, 0, m.NumFaces()*3*InterleavedStride)
	for i := 0; i < m.NumFaces(); i++ {
		tri := m.Triangle(i)
		n := faceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
		for _, v := range tri {
			vertices = append(vertices,
				v.Position[0], v.Position[1], v.Position[2],
				n[0], n[1], n[2],
				v.UV[0], v.UV[1],
			)
		}
	}
	return vertices
}

// faceNormal returns the unit normal of a triangle, or the zero vector when the
// triangle is degenerate.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
