package position

import "github.com/go-gl/mathgl/mgl32"

// Transform is a similarity transform: a uniform scale, then a rotation, then
// a displacement. It is the local transform of a node relative to its parent.
type Transform struct {
	Scale float32
	Rot   mgl32.Quat
	Disp  mgl32.Vec3
}

// Identity returns the transform that leaves every point in place.
func Identity() Transform {
	return Transform{Scale: 1, Rot: mgl32.QuatIdent()}
}

// NewTransform creates a transform from its parts.
func NewTransform(scale float32, rot mgl32.Quat, disp mgl32.Vec3) Transform {
	return Transform{Scale: scale, Rot: rot, Disp: disp}
}

// Translation returns a unit-scale, unrotated transform displacing by (x, y, z).
func Translation(x, y, z float32) Transform {
	return Transform{Scale: 1, Rot: mgl32.QuatIdent(), Disp: mgl32.Vec3{x, y, z}}
}

// Mat4 returns the transform as a matrix, T * R * S.
func (t Transform) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(t.Disp[0], t.Disp[1], t.Disp[2]).
		Mul4(t.Rot.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale, t.Scale, t.Scale))
}

// Point applies the transform to a point.
func (t Transform) Point(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rot.Rotate(p.Mul(t.Scale)).Add(t.Disp)
}
