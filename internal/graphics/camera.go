package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera looks at a target from a point on a sphere around it
type OrbitCamera struct {
	Target   mgl32.Vec3
	Yaw      float32 // degrees, 0 looks at the model's front
	Pitch    float32 // degrees, positive looks down on the model
	Distance float32

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewOrbitCamera(width, height int) *OrbitCamera {
	return &OrbitCamera{
		// chest height of the player model
		Target:      mgl32.Vec3{0, 16, 0},
		Distance:    60,
		AspectRatio: float32(width) / float32(height),
		FOV:         45.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// SetViewport updates the aspect ratio after a resize
func (c *OrbitCamera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// Orbit rotates the camera by yaw/pitch degrees, keeping it off the poles
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -89, 89)
}

// Eye returns the camera position
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	cp := float32(math.Cos(float64(pitch)))
	offset := mgl32.Vec3{
		cp * float32(math.Sin(float64(yaw))),
		float32(math.Sin(float64(pitch))),
		cp * float32(math.Cos(float64(yaw))),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}
