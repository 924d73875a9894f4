package glpoints

// Opaque device handles. Resolved once and immutable thereafter.
type (
	// Program identifies a compiled and linked vertex+fragment shader pair.
	Program uint32
	// Attrib identifies a vertex attribute slot of a compiled program.
	Attrib int32
	// Uniform identifies a uniform slot of a compiled program.
	Uniform int32
	// Buffer identifies a device-side buffer object.
	Buffer uint32
)

// Usage hints how staged buffer storage will be accessed so the device
// driver can choose an appropriate memory strategy.
type Usage uint8

const (
	// UsageStream marks storage as volatile, rewritten every frame.
	// This is the zero value.
	UsageStream Usage = iota
	// UsageStatic marks storage as written once and drawn many times.
	UsageStatic
	// UsageDynamic marks storage as rewritten occasionally.
	UsageDynamic
)

// Context is the graphics device abstraction consumed by the renderer.
// It is passed explicitly into every device-facing operation so that no
// component reaches for ambient global state and the whole module can be
// exercised against a mock.
//
// Methods return an error when the device reports one. Callers treat any
// such error as fatal for the frame's draw: no retry, no fallback.
//
// Implementations are not safe for concurrent use. All calls must happen on
// the thread that owns the device context.
type Context interface {
	// CompileProgram compiles and links a vertex+fragment source pair.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
	// UseProgram makes p the active program.
	UseProgram(p Program) error
	// DeleteProgram releases p.
	DeleteProgram(p Program) error
	// AttribLocation resolves a named vertex attribute of p. It fails if
	// name is not an active attribute of the compiled program.
	AttribLocation(p Program, name string) (Attrib, error)
	// UniformLocation resolves a named uniform of p. It fails if name is
	// not an active uniform of the compiled program.
	UniformLocation(p Program, name string) (Uniform, error)

	// CreateBuffer acquires a device buffer handle.
	CreateBuffer() (Buffer, error)
	// DeleteBuffer releases b.
	DeleteBuffer(b Buffer) error
	// BufferData replaces the contents of b with data under the given
	// usage hint.
	BufferData(b Buffer, data []float32, usage Usage) error

	// EnableAttrib enables the vertex attribute array at slot a.
	EnableAttrib(a Attrib) error
	// DisableAttrib disables the vertex attribute array at slot a.
	DisableAttrib(a Attrib) error
	// AttribPointer binds a sub-range of b to attribute a. size is the
	// number of floats per vertex. stride and offset are in floats;
	// stride 0 means densely packed.
	AttribPointer(a Attrib, b Buffer, size, stride, offset int) error

	// SetUniformMat4 uploads a column-major 4x4 matrix into u.
	SetUniformMat4(u Uniform, m *[16]float32) error

	// SetPointSize sets the device-wide point size state.
	SetPointSize(size float32) error
	// DrawPoints issues one draw call of count point primitives starting
	// at vertex first.
	DrawPoints(first, count int) error
}
