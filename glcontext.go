//go:build cgo

package glpoints

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/all-core/gl"
)

// GLContext implements Context on the OpenGL core profile bindings.
//
// NewGLContext must be called on the thread owning a current GL context
// whose function pointers have been loaded, i.e. after
// glgl.InitWithCurrentWindow33 or an equivalent bootstrap.
type GLContext struct {
	vao uint32
}

// NewGLContext prepares device state shared by all draws: a vertex array
// object, required bound by the core profile for attribute pointers, and
// program controlled point size so the vertex shader's size output is
// honored alongside the device-wide point size state.
func NewGLContext() (*GLContext, error) {
	c := &GLContext{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	if err := c.verify("init"); err != nil {
		return nil, err
	}
	return c, nil
}

// Release deletes the context's vertex array object.
func (c *GLContext) Release() {
	gl.DeleteVertexArrays(1, &c.vao)
}

// verify surfaces the device error flag as a Go error. It runs after every
// device call since GL errors are sticky and would otherwise be
// misattributed to a later call.
func (c *GLContext) verify(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glpoints: %s: gl error 0x%04x", op, code)
	}
	return nil
}

func (c *GLContext) CompileProgram(vertexSrc, fragmentSrc string) (Program, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(frag)
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(prog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", infoLog)
	}
	return Program(prog), c.verify("CompileProgram")
}

func compileShader(src string, xtype uint32) (uint32, error) {
	shader := gl.CreateShader(xtype)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

func programInfoLog(prog uint32) string {
	var logLength int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func (c *GLContext) UseProgram(p Program) error {
	gl.UseProgram(uint32(p))
	return c.verify("UseProgram")
}

func (c *GLContext) DeleteProgram(p Program) error {
	gl.DeleteProgram(uint32(p))
	return c.verify("DeleteProgram")
}

func (c *GLContext) AttribLocation(p Program, name string) (Attrib, error) {
	loc := gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("glpoints: attribute %q not found in program", name)
	}
	return Attrib(loc), c.verify("AttribLocation")
}

func (c *GLContext) UniformLocation(p Program, name string) (Uniform, error) {
	loc := gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("glpoints: uniform %q not found in program", name)
	}
	return Uniform(loc), c.verify("UniformLocation")
}

func (c *GLContext) CreateBuffer() (Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	return Buffer(id), c.verify("CreateBuffer")
}

func (c *GLContext) DeleteBuffer(b Buffer) error {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
	return c.verify("DeleteBuffer")
}

func (c *GLContext) BufferData(b Buffer, data []float32, usage Usage) error {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), glUsage(usage))
	}
	return c.verify("BufferData")
}

func glUsage(u Usage) uint32 {
	switch u {
	case UsageStatic:
		return gl.STATIC_DRAW
	case UsageDynamic:
		return gl.DYNAMIC_DRAW
	default:
		return gl.STREAM_DRAW
	}
}

func (c *GLContext) EnableAttrib(a Attrib) error {
	gl.EnableVertexAttribArray(uint32(a))
	return c.verify("EnableAttrib")
}

func (c *GLContext) DisableAttrib(a Attrib) error {
	gl.DisableVertexAttribArray(uint32(a))
	return c.verify("DisableAttrib")
}

func (c *GLContext) AttribPointer(a Attrib, b Buffer, size, stride, offset int) error {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	gl.VertexAttribPointerWithOffset(uint32(a), int32(size), gl.FLOAT, false, int32(4*stride), uintptr(4*offset))
	return c.verify("AttribPointer")
}

func (c *GLContext) SetUniformMat4(u Uniform, m *[16]float32) error {
	gl.UniformMatrix4fv(int32(u), 1, false, &m[0])
	return c.verify("SetUniformMat4")
}

func (c *GLContext) SetPointSize(size float32) error {
	gl.PointSize(size)
	return c.verify("SetPointSize")
}

func (c *GLContext) DrawPoints(first, count int) error {
	gl.DrawArrays(gl.POINTS, int32(first), int32(count))
	return c.verify("DrawPoints")
}
