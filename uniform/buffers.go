// Package uniform defines the host-side layout of the uniform buffers read by
// the pixel shader. Every block follows std140 rules and is padded to a 16 byte
// boundary; Encode returns the exact byte image uploaded to the GPU.
package uniform

import (
	"encoding/binary"
	"math"

	"github.com/achilleasa/shaderlab/types"
)

// Size of a single std140 block slot in bytes.
const Size = 16

// Uniform block binding points.
const (
	TimeBinding       uint32 = 0
	ResolutionBinding uint32 = 1
)

// Block names as declared by the shaders.
const (
	TimeBlockName       = "TimeBuffer"
	ResolutionBlockName = "ResolutionBuffer"
)

// A Block is a fixed-size uniform block with a binding point.
type Block interface {
	// The block name used by the shaders.
	Name() string

	// The binding point the block is attached to.
	Binding() uint32

	// Encode the block contents into a Size byte buffer.
	Encode() []byte
}

// TimeBuffer holds the elapsed time in seconds.
//
//	layout(std140) uniform TimeBuffer {
//	    float elapsedTime;
//	};
type TimeBuffer struct {
	ElapsedTime float32
}

func (b TimeBuffer) Name() string    { return TimeBlockName }
func (b TimeBuffer) Binding() uint32 { return TimeBinding }

// Encode the elapsed time followed by 12 bytes of zero padding.
func (b TimeBuffer) Encode() []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(b.ElapsedTime))
	return buf
}

// ResolutionBuffer holds the viewport dimensions in pixels.
//
//	layout(std140) uniform ResolutionBuffer {
//	    vec2 resolution;
//	};
type ResolutionBuffer struct {
	Resolution types.Vec2
}

func (b ResolutionBuffer) Name() string    { return ResolutionBlockName }
func (b ResolutionBuffer) Binding() uint32 { return ResolutionBinding }

// Encode the resolution followed by 8 bytes of zero padding.
func (b ResolutionBuffer) Encode() []byte {
	buf := make([]byte, Size)
	bits := b.Resolution.Bits()
	binary.LittleEndian.PutUint32(buf[0:], bits[0])
	binary.LittleEndian.PutUint32(buf[4:], bits[1])
	return buf
}
