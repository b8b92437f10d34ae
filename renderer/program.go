package renderer

import (
	"fmt"
	"strings"

	"github.com/achilleasa/shaderlab/shader"
	"github.com/achilleasa/shaderlab/uniform"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Compile a shader object from a NUL-terminated source.
func compileShader(src string, shaderType uint32) (uint32, error) {
	handle := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)

		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(infoLog, "\x00\n"))
	}

	return handle, nil
}

// Compile and link a program from a vertex and a fragment source.
func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader %s", err.Error())
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader %s", err.Error())
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.BindAttribLocation(program, positionAttrib, gl.Str("POSITION\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("link error: %s", strings.TrimRight(infoLog, "\x00\n"))
	}

	return program, nil
}

// Load the vertex/pixel shader pair from disk and link it into a program.
// The program's uniform blocks are attached to their fixed binding points.
func loadProgram(vertexFile, pixelFile string) (uint32, error) {
	vertexSrc, err := shader.Load(vertexFile, shader.Vertex)
	if err != nil {
		return 0, err
	}
	pixelSrc, err := shader.Load(pixelFile, shader.Pixel)
	if err != nil {
		return 0, err
	}

	program, err := linkProgram(vertexSrc.Code, pixelSrc.Code)
	if err != nil {
		return 0, err
	}

	for _, block := range []uniform.Block{uniform.TimeBuffer{}, uniform.ResolutionBuffer{}} {
		index := gl.GetUniformBlockIndex(program, gl.Str(block.Name()+"\x00"))
		if index == gl.INVALID_INDEX {
			logger.Warningf("shader pair does not declare uniform block %q", block.Name())
			continue
		}
		gl.UniformBlockBinding(program, index, block.Binding())
	}

	return program, nil
}
