package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/lumen/engine/math"
)

// ShaderProgram is a linked GLSL program with a small uniform cache.
type ShaderProgram struct {
	Name   string
	Handle uint32

	uniformLocations map[string]int32
}

// NewShaderProgram compiles and links a program from GLSL sources. Both
// compile and link failures are returned as errors carrying the driver's
// info log; nothing is leaked on the failure paths.
func NewShaderProgram(name, vertexSource, fragmentSource string) (*ShaderProgram, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("program %q vertex stage: %w", name, err)
	}
	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, fmt.Errorf("program %q fragment stage: %w", name, err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	// The shader objects are no longer needed once the program is linked.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		logText := programInfoLog(handle)
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("program %q link failed: %s", name, logText)
	}

	return &ShaderProgram{
		Name:             name,
		Handle:           handle,
		uniformLocations: make(map[string]int32),
	}, nil
}

// Use binds the program for subsequent draw calls.
func (sp *ShaderProgram) Use() {
	gl.UseProgram(sp.Handle)
}

// Destroy releases the GL program object.
func (sp *ShaderProgram) Destroy() {
	gl.DeleteProgram(sp.Handle)
	sp.Handle = 0
}

func (sp *ShaderProgram) location(name string) int32 {
	if loc, ok := sp.uniformLocations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(sp.Handle, gl.Str(name+"\x00"))
	sp.uniformLocations[name] = loc
	return loc
}

// SetMat4 uploads a column-major matrix uniform.
func (sp *ShaderProgram) SetMat4(name string, value math.Mat4) {
	gl.UniformMatrix4fv(sp.location(name), 1, false, &value.Data[0])
}

// SetVec3 uploads a vec3 uniform.
func (sp *ShaderProgram) SetVec3(name string, value math.Vec3) {
	gl.Uniform3f(sp.location(name), value.X, value.Y, value.Z)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(logText, "\x00"))
	}

	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}
