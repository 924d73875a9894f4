package glpoints

import (
	"errors"
	"fmt"
)

// mockContext records every device call in order and can inject a failure at
// a named operation, letting tests verify the draw session protocol without
// a GPU.
type mockContext struct {
	ops    []string
	failOn string // operation name that reports a device error

	nextBuffer Buffer
	missing    map[string]bool // names AttribLocation/UniformLocation report absent
	staged     map[Buffer][]float32
	mats       [][16]float32 // uniform matrix uploads in order
}

func newMockContext() *mockContext {
	return &mockContext{
		missing: make(map[string]bool),
		staged:  make(map[Buffer][]float32),
	}
}

func (m *mockContext) record(op string, args ...any) error {
	entry := op
	if len(args) > 0 {
		entry = op + fmt.Sprintf("%v", args)
	}
	m.ops = append(m.ops, entry)
	if m.failOn == op {
		return errors.New("device error: " + op)
	}
	return nil
}

func (m *mockContext) reset() { m.ops = nil; m.mats = nil }

var mockAttribs = map[string]Attrib{"position": 0, "color": 1, "size": 2}
var mockUniforms = map[string]Uniform{"proj": 0, "view": 1}

func (m *mockContext) CompileProgram(vertexSrc, fragmentSrc string) (Program, error) {
	return 1, m.record("CompileProgram")
}

func (m *mockContext) UseProgram(p Program) error {
	return m.record("UseProgram", p)
}

func (m *mockContext) DeleteProgram(p Program) error {
	return m.record("DeleteProgram", p)
}

func (m *mockContext) AttribLocation(p Program, name string) (Attrib, error) {
	if err := m.record("AttribLocation", name); err != nil {
		return -1, err
	}
	a, ok := mockAttribs[name]
	if !ok || m.missing[name] {
		return -1, fmt.Errorf("attribute %q not found", name)
	}
	return a, nil
}

func (m *mockContext) UniformLocation(p Program, name string) (Uniform, error) {
	if err := m.record("UniformLocation", name); err != nil {
		return -1, err
	}
	u, ok := mockUniforms[name]
	if !ok || m.missing[name] {
		return -1, fmt.Errorf("uniform %q not found", name)
	}
	return u, nil
}

func (m *mockContext) CreateBuffer() (Buffer, error) {
	m.nextBuffer++
	return m.nextBuffer, m.record("CreateBuffer")
}

func (m *mockContext) DeleteBuffer(b Buffer) error {
	delete(m.staged, b)
	return m.record("DeleteBuffer", b)
}

func (m *mockContext) BufferData(b Buffer, data []float32, usage Usage) error {
	m.staged[b] = append([]float32(nil), data...)
	return m.record("BufferData", b, len(data), usage)
}

func (m *mockContext) EnableAttrib(a Attrib) error {
	return m.record("EnableAttrib", a)
}

func (m *mockContext) DisableAttrib(a Attrib) error {
	return m.record("DisableAttrib", a)
}

func (m *mockContext) AttribPointer(a Attrib, b Buffer, size, stride, offset int) error {
	return m.record("AttribPointer", a, b, size, stride, offset)
}

func (m *mockContext) SetUniformMat4(u Uniform, mat *[16]float32) error {
	m.mats = append(m.mats, *mat)
	return m.record("SetUniformMat4", u)
}

func (m *mockContext) SetPointSize(size float32) error {
	return m.record("SetPointSize", size)
}

func (m *mockContext) DrawPoints(first, count int) error {
	return m.record("DrawPoints", first, count)
}

// mockCamera records requested passes and uploads zero matrices through the
// context so the protocol transcript shows the uniform writes.
type mockCamera struct {
	uploads []int
	fail    bool
}

func (c *mockCamera) Upload(ctx Context, pass int, proj, view Uniform) error {
	c.uploads = append(c.uploads, pass)
	if c.fail {
		return errors.New("camera failure")
	}
	var ident [16]float32
	ident[0], ident[5], ident[10], ident[15] = 1, 1, 1, 1
	if err := ctx.SetUniformMat4(proj, &ident); err != nil {
		return err
	}
	return ctx.SetUniformMat4(view, &ident)
}
