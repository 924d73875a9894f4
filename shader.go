package glpoints

import "fmt"

// Vertex shader for the point material: clip-space position from the
// projection and view uniforms, color forwarded to the fragment stage and
// the device point size output driven by the size attribute.
const pointsVertexSrc = `#version 330 core
in vec3 position;
in vec3 color;
in float size;
out vec3 vColor;
uniform mat4 proj;
uniform mat4 view;
void main() {
	gl_Position = proj * view * vec4(position, 1.0);
	gl_PointSize = size;
	vColor = color;
}
`

// Fragment shader for the point material: forwarded color at full opacity.
const pointsFragmentSrc = `#version 330 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}
`

// pointShader holds the compiled point program and its resolved attribute
// and uniform slots. Resolution happens once at construction; a missing name
// is a build error, not a runtime condition, and fails construction.
type pointShader struct {
	prog                  Program
	position, color, size Attrib
	proj, view            Uniform
}

func newPointShader(ctx Context) (s pointShader, err error) {
	s.prog, err = ctx.CompileProgram(pointsVertexSrc, pointsFragmentSrc)
	if err != nil {
		return s, fmt.Errorf("glpoints: compile point shader: %w", err)
	}
	attribs := []struct {
		name string
		dst  *Attrib
	}{
		{"position", &s.position},
		{"color", &s.color},
		{"size", &s.size},
	}
	for _, a := range attribs {
		*a.dst, err = ctx.AttribLocation(s.prog, a.name)
		if err != nil {
			return s, err
		}
	}
	uniforms := []struct {
		name string
		dst  *Uniform
	}{
		{"proj", &s.proj},
		{"view", &s.view},
	}
	for _, u := range uniforms {
		*u.dst, err = ctx.UniformLocation(s.prog, u.name)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}
