package skinmodel

import (
	"bufio"
	"fmt"
	"io"
)

// WriteMeshOBJ writes a single mesh as a Wavefront OBJ object.
// Each box triangle is written once, wound counter-clockwise seen from outside.
func WriteMeshOBJ(w io.Writer, name string, m *Mesh) error {
	bw := bufio.NewWriter(w)
	obj := &objWriter{w: bw}
	obj.object(name, m)
	if obj.err != nil {
		return fmt.Errorf("write obj: %w", obj.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}

// WriteOBJ writes every part of the player as its own OBJ object, with points
// already placed in model space. V coordinates are flipped for OBJ's
// bottom-left texture origin.
func WriteOBJ(w io.Writer, p *Player) error {
	bw := bufio.NewWriter(w)
	obj := &objWriter{w: bw}
	obj.printf("# skin model (%s arms)\n", armName(p.Slim))
	for _, part := range p.Parts {
		obj.object(part.Name, part.Mesh.Transform(part.ModelMatrix()))
	}
	if obj.err != nil {
		return fmt.Errorf("write obj: %w", obj.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}

func armName(slim bool) string {
	if slim {
		return "slim"
	}
	return "classic"
}

type objWriter struct {
	w   io.Writer
	err error

	// OBJ indices are 1-based and global to the file
	pointBase, texBase int
}

func (o *objWriter) printf(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}

func (o *objWriter) object(name string, m *Mesh) {
	o.printf("o %s\n", name)
	for i := 0; i < m.NumPoints(); i++ {
		p := m.Point(i)
		o.printf("v %g %g %g\n", p[0], p[1], p[2])
	}
	for i := 0; i < m.NumTexCoords(); i++ {
		t := m.TexCoord(i)
		o.printf("vt %g %g\n", t[0], 1-t[1])
	}

	n := TriangleCount
	if m.NumFaces() < n {
		n = m.NumFaces()
	}
	// the first half faces inward, emit it with the winding reversed
	for i := 0; i < n; i++ {
		f := m.Faces[i*FaceStride : (i+1)*FaceStride]
		o.printf("f %d/%d %d/%d %d/%d\n",
			int(f[4])+o.pointBase+1, int(f[5])+o.texBase+1,
			int(f[2])+o.pointBase+1, int(f[3])+o.texBase+1,
			int(f[0])+o.pointBase+1, int(f[1])+o.texBase+1,
		)
	}

	o.pointBase += m.NumPoints()
	o.texBase += m.NumTexCoords()
}
