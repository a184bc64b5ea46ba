// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bufobj

import "fmt"

// ScalarKind tells whether a buffer element decomposes to integer or
// floating-point scalars.
type ScalarKind int

const (
	// ScalarInteger means the element's components are integers.
	ScalarInteger ScalarKind = iota

	// ScalarFloat means the element's components are floating-point values.
	ScalarFloat
)

// String returns the string representation of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarInteger:
		return "Integer"
	case ScalarFloat:
		return "Float"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Vec2 is a two-component float32 vector, packed tightly for vertex data.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a three-component float32 vector, packed tightly for vertex data.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a four-component float32 vector, packed tightly for vertex data.
type Vec4 struct {
	X, Y, Z, W float32
}

// Traits describes the vertex attribute layout of a buffer element type.
type Traits struct {
	// Components is the number of scalar components per element (1 to 4).
	// Zero means the layout could not be derived from the element type;
	// the buffer is still usable as raw bytes.
	Components int

	// Kind is the scalar kind of the components.
	Kind ScalarKind
}

// TraitsOf derives the attribute layout for element type T.
//
// Fixed-width integer types map to a single integer component; Vec2, Vec3
// and Vec4 map to 2, 3 and 4 float components. Any other element type
// yields Traits{Components: 0, Kind: ScalarFloat}, meaning "attribute
// layout unavailable". That degraded result is not an error: buffers of
// unrecognized types still upload and update normally, callers just cannot
// derive an attribute pointer layout from them.
func TraitsOf[T any]() Traits {
	var zero T
	switch any(zero).(type) {
	case int8, uint8, int16, uint16, int32, uint32:
		return Traits{Components: 1, Kind: ScalarInteger}
	case Vec2:
		return Traits{Components: 2, Kind: ScalarFloat}
	case Vec3:
		return Traits{Components: 3, Kind: ScalarFloat}
	case Vec4:
		return Traits{Components: 4, Kind: ScalarFloat}
	default:
		return Traits{Components: 0, Kind: ScalarFloat}
	}
}
