// Package d3 bridges the module's two vector domains: float64 gonum r3
// vectors for world-space math on the CPU and float32 ms3 vectors for data
// headed to the device.
package d3

import (
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Elem returns a vector with all components set to sides.
func Elem(sides float64) r3.Vec {
	return r3.Vec{
		X: sides,
		Y: sides,
		Z: sides,
	}
}

// Ms3 truncates a world-space vector to device precision.
func Ms3(v r3.Vec) ms3.Vec {
	return ms3.Vec{
		X: float32(v.X),
		Y: float32(v.Y),
		Z: float32(v.Z),
	}
}

// R3 widens a device vector to world precision.
func R3(v ms3.Vec) r3.Vec {
	return r3.Vec{
		X: float64(v.X),
		Y: float64(v.Y),
		Z: float64(v.Z),
	}
}
