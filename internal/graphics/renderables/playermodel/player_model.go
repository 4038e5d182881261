package playermodel

import (
	"errors"
	"fmt"

	"mc-skinview/internal/graphics"
	"mc-skinview/internal/graphics/shaders"
	"mc-skinview/pkg/skin"
	"mc-skinview/pkg/skinmodel"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// partMesh is the GPU copy of one skinmodel part
type partMesh struct {
	part        *skinmodel.Part
	vao         uint32
	vbo         uint32
	vertexCount int32
	// visible is false for overlay parts whose skin region is empty
	visible bool
}

// PlayerModel renders a skinned player
type PlayerModel struct {
	shader *graphics.Shader

	player *skinmodel.Player
	base   []partMesh
	outer  []partMesh

	texture uint32

	// LightDir points from the light into the scene
	LightDir mgl32.Vec3
	Ambient  float32
}

// NewPlayerModel creates a new player model renderable
func NewPlayerModel() *PlayerModel {
	return &PlayerModel{
		LightDir: mgl32.Vec3{-0.3, -1, -0.6},
		Ambient:  0.55,
	}
}

// Init compiles the shader and uploads meshes and texture for s.
// Requires a current GL context.
func (m *PlayerModel) Init(s *skin.Skin) error {
	var err error
	m.shader, err = graphics.NewShaderFromSource(shaders.SkinVert, shaders.SkinFrag)
	if err != nil {
		return fmt.Errorf("player shader: %w", err)
	}
	return m.SetSkin(s)
}

// SetSkin replaces the texture and, when the arm model changes, the meshes
func (m *PlayerModel) SetSkin(s *skin.Skin) error {
	if s == nil || s.Image == nil {
		return errors.New("player model: no skin image")
	}

	graphics.DeleteTexture(m.texture)
	m.texture, _, _ = graphics.UploadTexture(s.Image)

	slim := s.Type.IsSlim()
	if m.player == nil || m.player.Slim != slim {
		m.disposeMeshes()
		m.player = skinmodel.NewPlayer(slim)
		for _, part := range m.player.Base() {
			m.base = append(m.base, uploadPart(part))
		}
		for _, part := range m.player.Overlays() {
			m.outer = append(m.outer, uploadPart(part))
		}
	}

	for i := range m.outer {
		pm := &m.outer[i]
		pm.visible = skin.HasOverlay(s.Image, pm.part.Region())
	}
	return nil
}

// Render draws the player at the origin of model space under pose.
// overlay selects whether the outer skin layer is drawn.
func (m *PlayerModel) Render(view, proj, world mgl32.Mat4, pose skinmodel.Pose, overlay bool) {
	if m.shader == nil || m.player == nil {
		return
	}

	m.shader.Use()
	m.shader.SetMat4("view", view)
	m.shader.SetMat4("proj", proj)
	m.shader.SetVec3("lightDir", m.LightDir)
	m.shader.SetFloat("ambient", m.Ambient)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, m.texture)
	m.shader.SetInt("skinTexture", 0)

	// Every box carries both windings, culling keeps the side facing the camera
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)

	for i := range m.base {
		m.drawPart(&m.base[i], world, pose)
	}

	if overlay {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		for i := range m.outer {
			if m.outer[i].visible {
				m.drawPart(&m.outer[i], world, pose)
			}
		}
		gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
}

func (m *PlayerModel) drawPart(pm *partMesh, world mgl32.Mat4, pose skinmodel.Pose) {
	model := world.Mul4(pose.PartMatrix(pm.part))
	m.shader.SetMat4("model", model)
	gl.BindVertexArray(pm.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, pm.vertexCount)
}

func (m *PlayerModel) disposeMeshes() {
	for _, pm := range append(m.base, m.outer...) {
		gl.DeleteVertexArrays(1, &pm.vao)
		gl.DeleteBuffers(1, &pm.vbo)
	}
	m.base, m.outer = nil, nil
}

func (m *PlayerModel) Dispose() {
	m.disposeMeshes()
	graphics.DeleteTexture(m.texture)
	m.texture = 0
	if m.shader != nil {
		m.shader.Delete()
		m.shader = nil
	}
	m.player = nil
}

func uploadPart(part *skinmodel.Part) partMesh {
	pm := partMesh{part: part, visible: true}
	pm.vertexCount = createVAO(&pm.vao, &pm.vbo, part.Mesh.Interleave())
	return pm
}

func createVAO(vao, vbo *uint32, vertices []float32) int32 {
	const stride = skinmodel.InterleavedStride * 4

	gl.GenVertexArrays(1, vao)
	gl.GenBuffers(1, vbo)

	gl.BindVertexArray(*vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, *vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return int32(len(vertices) / skinmodel.InterleavedStride)
}
