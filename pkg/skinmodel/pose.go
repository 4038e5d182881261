package skinmodel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose maps a bone (base part name) to its local rotation around the part pivot.
// Bones missing from the pose stay at rest.
type Pose map[string]mgl32.Mat4

// RestPose leaves every part in place
func RestPose() Pose { return Pose{} }

// IdlePose is the standing idle animation at time t (seconds): both arms sway
// slowly outwards and back.
func IdlePose(t float64) Pose {
	// the game animates in ticks, 20 per second
	age := t * 20.0

	swayZ := float32(math.Cos(age*0.09))*0.05 + 0.05
	swayX := float32(math.Sin(age*0.067)) * 0.05

	return Pose{
		PartRightArm: mgl32.HomogRotate3DX(swayX).Mul4(mgl32.HomogRotate3DZ(-swayZ)),
		PartLeftArm:  mgl32.HomogRotate3DX(-swayX).Mul4(mgl32.HomogRotate3DZ(swayZ)),
	}
}

// LookPose turns the head by yaw and pitch (degrees), keeping other bones of base
func LookPose(base Pose, yaw, pitch float32) Pose {
	out := make(Pose, len(base)+1)
	for k, v := range base {
		out[k] = v
	}
	out[PartHead] = mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)))
	return out
}

// PartMatrix returns the model matrix of part under pose: the part is placed
// in model space, then rotated around its pivot by its bone's rotation.
func (p Pose) PartMatrix(part *Part) mgl32.Mat4 {
	rot, ok := p[part.Bone]
	if !ok {
		return part.ModelMatrix()
	}
	pv := part.Pivot
	return mgl32.Translate3D(pv[0], pv[1], pv[2]).
		Mul4(rot).
		Mul4(mgl32.Translate3D(-pv[0], -pv[1], -pv[2])).
		Mul4(part.ModelMatrix())
}
