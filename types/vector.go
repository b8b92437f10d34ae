package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

type Vec2 f32.Vec2
type Vec3 f32.Vec3
type Vec4 f32.Vec4

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Define a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Multiply a 2 component vector with a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Get the ratio between the x and y components. Returns 0 if y is 0.
func (v Vec2) Aspect() float32 {
	if v[1] == 0 {
		return 0
	}
	return v[0] / v[1]
}

// Pack the vector components as float32 bit patterns.
func (v Vec2) Bits() [2]uint32 {
	return [2]uint32{math.Float32bits(v[0]), math.Float32bits(v[1])}
}
