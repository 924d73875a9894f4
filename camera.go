package glpoints

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Camera supplies the projection and view matrices for a render pass. pass
// distinguishes multiple per-frame passes, e.g. the two eyes of a stereo
// camera; single-pass cameras ignore it.
type Camera interface {
	// Upload writes the pass's projection and view matrices into the given
	// uniform slots through ctx.
	Upload(ctx Context, pass int, proj, view Uniform) error
}

// MatrixCamera uploads fixed column-major matrices verbatim. Useful for
// callers that carry their own matrix math, and for tests.
type MatrixCamera struct {
	Proj, View [16]float32
}

func (c *MatrixCamera) Upload(ctx Context, _ int, proj, view Uniform) error {
	if err := ctx.SetUniformMat4(proj, &c.Proj); err != nil {
		return err
	}
	return ctx.SetUniformMat4(view, &c.View)
}

// PerspectiveCamera derives its matrices from an eye/target/up configuration
// in world coordinates. World math is done in float64 and truncated to
// float32 on upload, the same split the rest of the module keeps between CPU
// and device math.
type PerspectiveCamera struct {
	// Eye is the camera position, LookAt the observed point and Up the
	// direction considered vertical.
	Eye, LookAt, Up r3.Vec
	// FOV is the vertical field of view in radians.
	FOV    float32
	Aspect float32
	// Near and Far bound the view frustum depth.
	Near, Far float32
}

func (c *PerspectiveCamera) Upload(ctx Context, _ int, proj, view Uniform) error {
	p := Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	v := LookAt(c.Eye, c.LookAt, c.Up)
	if err := ctx.SetUniformMat4(proj, &p); err != nil {
		return err
	}
	return ctx.SetUniformMat4(view, &v)
}

// Perspective returns a column-major perspective projection matrix. fovy is
// the vertical field of view in radians.
func Perspective(fovy, aspect, near, far float32) (m [16]float32) {
	f := 1 / math32.Tan(fovy/2)
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// LookAt returns the column-major view matrix that places eye at the origin
// looking down negative z towards center.
func LookAt(eye, center, up r3.Vec) (m [16]float32) {
	f := r3.Unit(r3.Sub(center, eye))
	s := r3.Unit(r3.Cross(f, up))
	u := r3.Cross(s, f)
	m[0], m[1], m[2] = float32(s.X), float32(u.X), float32(-f.X)
	m[4], m[5], m[6] = float32(s.Y), float32(u.Y), float32(-f.Y)
	m[8], m[9], m[10] = float32(s.Z), float32(u.Z), float32(-f.Z)
	m[12] = float32(-r3.Dot(s, eye))
	m[13] = float32(-r3.Dot(u, eye))
	m[14] = float32(r3.Dot(f, eye))
	m[15] = 1
	return m
}
