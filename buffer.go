package glpoints

import (
	"unsafe"

	"github.com/soypat/glgl/math/ms3"
)

// VecBuffer is a growable sequence of 3-vectors mirrored by a device buffer.
// Clear preserves backing storage: per-frame streaming reuses capacity
// instead of reallocating.
//
// The zero value is an empty buffer with the UsageStream hint.
type VecBuffer struct {
	data  []ms3.Vec
	id    Buffer
	usage Usage
}

// NewVecBuffer returns an empty buffer staged under the given usage hint.
func NewVecBuffer(usage Usage) VecBuffer {
	return VecBuffer{usage: usage}
}

// Append adds v at the end of the sequence.
func (b *VecBuffer) Append(v ms3.Vec) { b.data = append(b.data, v) }

// Len returns the current number of vector entries.
func (b *VecBuffer) Len() int { return len(b.data) }

// Clear logically empties the sequence. Backing storage is kept.
func (b *VecBuffer) Clear() { b.data = b.data[:0] }

// init acquires the device handle. Stage also acquires it lazily so a buffer
// remains usable without a prior init.
func (b *VecBuffer) init(ctx Context) error {
	if b.id != 0 {
		return nil
	}
	id, err := ctx.CreateBuffer()
	if err != nil {
		return err
	}
	b.id = id
	return nil
}

// Stage uploads the sequence to the device under the buffer's usage hint.
// The device handle is reused across uploads.
func (b *VecBuffer) Stage(ctx Context) error {
	if err := b.init(ctx); err != nil {
		return err
	}
	return ctx.BufferData(b.id, vecFloats(b.data), b.usage)
}

// Bind attaches the staged contents to attribute a. stride and offset are in
// vector entries; stride 0 binds densely packed entries.
func (b *VecBuffer) Bind(ctx Context, a Attrib, stride, offset int) error {
	return ctx.AttribPointer(a, b.id, 3, 3*stride, 3*offset)
}

// Release frees the device handle. CPU-side contents are kept.
func (b *VecBuffer) Release(ctx Context) error {
	if b.id == 0 {
		return nil
	}
	err := ctx.DeleteBuffer(b.id)
	b.id = 0
	return err
}

// vecFloats reinterprets vecs as the flat float32 sequence the device
// consumes. ms3.Vec is three contiguous float32s.
func vecFloats(vecs []ms3.Vec) []float32 {
	if len(vecs) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&vecs[0])), 3*len(vecs))
}

// FloatBuffer is a growable sequence of scalars mirrored by a device buffer.
// It has the same staging and capacity-reuse contract as VecBuffer.
//
// The zero value is an empty buffer with the UsageStream hint.
type FloatBuffer struct {
	data  []float32
	id    Buffer
	usage Usage
}

// NewFloatBuffer returns an empty buffer staged under the given usage hint.
func NewFloatBuffer(usage Usage) FloatBuffer {
	return FloatBuffer{usage: usage}
}

// Append adds v at the end of the sequence.
func (b *FloatBuffer) Append(v float32) { b.data = append(b.data, v) }

// Len returns the current number of scalar entries.
func (b *FloatBuffer) Len() int { return len(b.data) }

// Clear logically empties the sequence. Backing storage is kept.
func (b *FloatBuffer) Clear() { b.data = b.data[:0] }

func (b *FloatBuffer) init(ctx Context) error {
	if b.id != 0 {
		return nil
	}
	id, err := ctx.CreateBuffer()
	if err != nil {
		return err
	}
	b.id = id
	return nil
}

// Stage uploads the sequence to the device under the buffer's usage hint.
func (b *FloatBuffer) Stage(ctx Context) error {
	if err := b.init(ctx); err != nil {
		return err
	}
	return ctx.BufferData(b.id, b.data, b.usage)
}

// Bind attaches the staged contents to attribute a. stride and offset are in
// scalar entries; stride 0 binds densely packed entries.
func (b *FloatBuffer) Bind(ctx Context, a Attrib, stride, offset int) error {
	return ctx.AttribPointer(a, b.id, 1, stride, offset)
}

// Release frees the device handle. CPU-side contents are kept.
func (b *FloatBuffer) Release(ctx Context) error {
	if b.id == 0 {
		return nil
	}
	err := ctx.DeleteBuffer(b.id)
	b.id = 0
	return err
}
