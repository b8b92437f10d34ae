package renderer

import (
	"github.com/achilleasa/shaderlab/types"
	"github.com/achilleasa/shaderlab/uniform"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Vertex attribute location for quad positions.
const positionAttrib uint32 = 0

// Full-screen quad drawn as a 4 vertex triangle strip.
var quadVertices = [4]types.Vec3{
	types.XYZ(-1, -1, 0), // bottom left
	types.XYZ(-1, 1, 0),  // top left
	types.XYZ(1, -1, 0),  // bottom right
	types.XYZ(1, 1, 0),   // top right
}

// Size in bytes of a single quad vertex.
const quadVertexStride = 3 * 4

type quad struct {
	vao uint32
	vbo uint32
}

func newQuad() *quad {
	q := &quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*quadVertexStride, gl.Ptr(&quadVertices[0][0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(positionAttrib, 3, gl.FLOAT, false, quadVertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(positionAttrib)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return q
}

func (q *quad) draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quadVertices)))
	gl.BindVertexArray(0)
}

func (q *quad) release() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
}

// A uniform buffer object attached to a fixed binding point.
type uniformBuffer struct {
	handle  uint32
	binding uint32
}

func newUniformBuffer(binding uint32) *uniformBuffer {
	ub := &uniformBuffer{binding: binding}
	gl.GenBuffers(1, &ub.handle)
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.handle)
	gl.BufferData(gl.UNIFORM_BUFFER, uniform.Size, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ub.handle)
	return ub
}

// Upload the block contents and (re)attach the buffer to its binding point.
func (ub *uniformBuffer) update(block uniform.Block) {
	data := block.Encode()
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.handle)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, ub.binding, ub.handle)
}

func (ub *uniformBuffer) release() {
	gl.DeleteBuffers(1, &ub.handle)
}
