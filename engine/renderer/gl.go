package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/bloxown/bo3-camera/engine/camera"
	"github.com/bloxown/bo3-camera/engine/logger"
)

const lineVertexShader = `
#version 410 core
layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inColor;
uniform mat4 viewProjection;
out vec3 fragColor;
void main() {
	fragColor = inColor;
	gl_Position = viewProjection * vec4(inPosition, 1.0);
}
` + "\x00"

const lineFragmentShader = `
#version 410 core
in vec3 fragColor;
out vec4 outColor;
void main() {
	outColor = vec4(fragColor, 1.0);
}
` + "\x00"

// GLView draws a line scene (ground grid, axes, target marker) with an
// OpenGL 4.1 core context, uploading the camera's view-projection each frame.
// It needs a current context and gl.Init already done.
type GLView struct {
	program     uint32
	vao, vbo    uint32
	vertexCount int32
	viewProjLoc int32
}

// NewGLView builds the shader program and uploads the line geometry.
func NewGLView(gridHalfSize int, target mgl32.Vec3) (*GLView, error) {
	vs, err := compileShader(lineVertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(lineFragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}
	program, err := linkProgram(vs, fs)
	if err != nil {
		return nil, err
	}

	v := &GLView{program: program}
	v.viewProjLoc = gl.GetUniformLocation(program, gl.Str("viewProjection\x00"))

	vertices := lineScene(gridHalfSize, target)
	v.vertexCount = int32(len(vertices) / 6)

	gl.GenVertexArrays(1, &v.vao)
	gl.GenBuffers(1, &v.vbo)
	gl.BindVertexArray(v.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	logger.Log.Info("GL view ready",
		zap.Uint32("program", program),
		zap.Int32("vertices", v.vertexCount))
	return v, nil
}

// Draw renders the scene as seen by cam.
func (v *GLView) Draw(cam *camera.Camera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(v.program)

	viewProjection := cam.ViewProjection()
	if v.viewProjLoc != -1 {
		gl.UniformMatrix4fv(v.viewProjLoc, 1, false, &viewProjection[0])
	}

	gl.BindVertexArray(v.vao)
	gl.DrawArrays(gl.LINES, 0, v.vertexCount)
	gl.BindVertexArray(0)
}

func (v *GLView) Destroy() {
	gl.DeleteBuffers(1, &v.vbo)
	gl.DeleteVertexArrays(1, &v.vao)
	gl.DeleteProgram(v.program)
}

// lineScene returns interleaved position/color vertices, two per line.
func lineScene(half int, target mgl32.Vec3) []float32 {
	var out []float32
	line := func(a, b, color mgl32.Vec3) {
		out = append(out, a[:]...)
		out = append(out, color[:]...)
		out = append(out, b[:]...)
		out = append(out, color[:]...)
	}

	grey := mgl32.Vec3{0.4, 0.4, 0.4}
	h := float32(half)
	for i := -half; i <= half; i++ {
		f := float32(i)
		line(mgl32.Vec3{f, 0, -h}, mgl32.Vec3{f, 0, h}, grey)
		line(mgl32.Vec3{-h, 0, f}, mgl32.Vec3{h, 0, f}, grey)
	}

	line(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0})
	line(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0})
	line(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1})

	yellow := mgl32.Vec3{1, 1, 0}
	const s = 0.25
	line(target.Sub(mgl32.Vec3{s, 0, 0}), target.Add(mgl32.Vec3{s, 0, 0}), yellow)
	line(target.Sub(mgl32.Vec3{0, s, 0}), target.Add(mgl32.Vec3{0, s, 0}), yellow)
	line(target.Sub(mgl32.Vec3{0, 0, s}), target.Add(mgl32.Vec3{0, 0, s}), yellow)
	return out
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("compile shader type %d: %s", shaderType, log)
	}
	return shader, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("link program: %s", log)
	}
	return program, nil
}
