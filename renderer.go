package glpoints

import (
	"fmt"
	"log/slog"

	"github.com/soypat/glgl/math/ms3"
)

// PointRenderer manages the display of short-living points: points queued
// during one update cycle are drawn as a single device call and discarded.
//
// All methods must run on the thread owning the device context, and appends
// must happen strictly before Render for that frame. The renderer enforces
// no cross-thread safety.
type PointRenderer struct {
	ctx    Context
	shader pointShader
	batch  FrameBatch
}

// NewPointRenderer compiles the point shader, resolves its attribute and
// uniform slots and acquires the device buffers reused by every frame.
// Construction fails if the device rejects the shader or any named slot is
// missing from the compiled program.
func NewPointRenderer(ctx Context) (*PointRenderer, error) {
	shader, err := newPointShader(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.UseProgram(shader.prog); err != nil {
		return nil, err
	}
	r := &PointRenderer{ctx: ctx, shader: shader, batch: NewFrameBatch()}
	if err := r.batch.init(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// AddPoint queues a point to be drawn during the next frame with the current
// default size. Points are not persistent between frames; call this on every
// update loop iteration.
func (r *PointRenderer) AddPoint(pos, color ms3.Vec) {
	r.batch.AddPoint(pos, color)
}

// AddPointWithSize queues a point with an explicit size. The default size is
// left untouched.
func (r *PointRenderer) AddPointWithSize(pos, color ms3.Vec, size float32) {
	r.batch.AddPointWithSize(pos, color, size)
}

// SetPointSize sets the size applied to points queued by AddPoint from now
// on. Already queued points are unaffected.
func (r *PointRenderer) SetPointSize(size float32) {
	r.batch.SetDefaultSize(size)
}

// Batch exposes the renderer's frame batch for bulk appends and inspection.
func (r *PointRenderer) Batch() *FrameBatch { return &r.batch }

// NeedsRendering reports whether some points have to be drawn.
func (r *PointRenderer) NeedsRendering() bool { return !r.batch.IsEmpty() }

// Render draws the queued points for the given render pass and drains the
// batch. With no points queued it is a no-op: neither the device nor the
// camera is touched. A device error aborts the draw and is returned; the
// batch is left intact so a caller that recovers the device can draw the
// same points next frame.
func (r *PointRenderer) Render(pass int, cam Camera) error {
	if r.batch.IsEmpty() {
		return nil
	}
	n := r.batch.Len()
	if err := r.bindAndDraw(pass, cam); err != nil {
		return fmt.Errorf("glpoints: render: %w", err)
	}
	logger().Debug("points drawn", slog.Int("count", n))
	r.batch.Clear()
	return nil
}

func (r *PointRenderer) bindAndDraw(pass int, cam Camera) error {
	sh := &r.shader
	if err := r.ctx.UseProgram(sh.prog); err != nil {
		return err
	}
	for _, a := range [...]Attrib{sh.position, sh.color, sh.size} {
		if err := r.ctx.EnableAttrib(a); err != nil {
			return err
		}
	}
	if err := cam.Upload(r.ctx, pass, sh.proj, sh.view); err != nil {
		return err
	}
	if err := r.batch.vertices.Stage(r.ctx); err != nil {
		return err
	}
	if err := r.batch.sizes.Stage(r.ctx); err != nil {
		return err
	}
	// Interleaved channel: position entries at even indices, color at odd.
	if err := r.batch.vertices.Bind(r.ctx, sh.position, 2, 0); err != nil {
		return err
	}
	if err := r.batch.vertices.Bind(r.ctx, sh.color, 2, 1); err != nil {
		return err
	}
	if err := r.batch.sizes.Bind(r.ctx, sh.size, 0, 0); err != nil {
		return err
	}
	// The device-wide size is a uniform fallback; shaders consuming the size
	// attribute override it per point.
	if err := r.ctx.SetPointSize(r.batch.DefaultSize()); err != nil {
		return err
	}
	if err := r.ctx.DrawPoints(0, r.batch.Len()); err != nil {
		return err
	}
	for _, a := range [...]Attrib{sh.position, sh.color, sh.size} {
		if err := r.ctx.DisableAttrib(a); err != nil {
			return err
		}
	}
	return nil
}

// Release frees the device buffers and the shader program. The renderer must
// not be used afterwards.
func (r *PointRenderer) Release() {
	if err := r.batch.release(r.ctx); err != nil {
		logger().Warn("release point buffers", slog.String("err", err.Error()))
	}
	if err := r.ctx.DeleteProgram(r.shader.prog); err != nil {
		logger().Warn("release point shader", slog.String("err", err.Error()))
	}
}
