package glpoints

import "github.com/soypat/glgl/math/ms3"

// FrameBatch accumulates the points requested during one update cycle.
//
// The interleaved vertex channel alternates position and color entries:
// entry 2k is the position of point k and entry 2k+1 its color, so the
// channel length is always twice the point count and the size channel holds
// exactly one scalar per point.
//
// A batch is exclusively owned: single writer, drained once per frame after
// the draw. It is not safe for concurrent use.
type FrameBatch struct {
	vertices VecBuffer // interleaved position+color, two entries per point
	sizes    FloatBuffer
	// pointSize is the default size applied by AddPoint.
	pointSize float32
}

// NewFrameBatch returns an empty batch with default point size 1.
func NewFrameBatch() FrameBatch {
	return FrameBatch{pointSize: 1}
}

// AddPoint queues a point with the batch's default size. Color components
// are normalized to [0,1]. Points are not persistent between frames: the
// batch is drained by the draw, so AddPoint must be called again on every
// update loop iteration the point should appear.
func (b *FrameBatch) AddPoint(pos, color ms3.Vec) {
	b.AddPointWithSize(pos, color, b.pointSize)
}

// AddPointWithSize queues a point with an explicit size in device point-size
// units, leaving the default size untouched.
func (b *FrameBatch) AddPointWithSize(pos, color ms3.Vec, size float32) {
	b.vertices.Append(pos)
	b.vertices.Append(color)
	b.sizes.Append(size)
}

// SetDefaultSize changes the size AddPoint applies from now on. Already
// queued points keep the size they were added with.
func (b *FrameBatch) SetDefaultSize(size float32) { b.pointSize = size }

// DefaultSize returns the size AddPoint currently applies.
func (b *FrameBatch) DefaultSize() float32 { return b.pointSize }

// Len returns the number of points currently queued.
func (b *FrameBatch) Len() int { return b.vertices.Len() / 2 }

// IsEmpty reports whether no points were queued since the last clear.
func (b *FrameBatch) IsEmpty() bool { return b.vertices.Len() == 0 }

// Clear drains both channels, keeping their capacity for the next frame.
// Clearing an empty batch is a no-op.
func (b *FrameBatch) Clear() {
	b.vertices.Clear()
	b.sizes.Clear()
}

// Bounds returns the axis-aligned box enclosing the queued point positions,
// or a zero box for an empty batch.
func (b *FrameBatch) Bounds() ms3.Box {
	if b.IsEmpty() {
		return ms3.Box{}
	}
	bb := ms3.Box{Min: b.vertices.data[0], Max: b.vertices.data[0]}
	for i := 2; i < len(b.vertices.data); i += 2 {
		p := b.vertices.data[i]
		bb.Min = ms3.MinElem(bb.Min, p)
		bb.Max = ms3.MaxElem(bb.Max, p)
	}
	return bb
}

// init acquires the device handles for both channels.
func (b *FrameBatch) init(ctx Context) error {
	if err := b.vertices.init(ctx); err != nil {
		return err
	}
	return b.sizes.init(ctx)
}

// release frees the device handles for both channels.
func (b *FrameBatch) release(ctx Context) error {
	err := b.vertices.Release(ctx)
	if err2 := b.sizes.Release(ctx); err == nil {
		err = err2
	}
	return err
}
