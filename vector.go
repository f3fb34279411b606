package attmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a 3-component vector (value type).
type Vector3 struct {
	X, Y, Z float64
}

// Unit vectors along the coordinate axes.
var (
	AxisX = Vector3{1, 0, 0}
	AxisY = Vector3{0, 1, 0}
	AxisZ = Vector3{0, 0, 1}
)

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// VectorFromArray returns the vector whose components are a[0], a[1] and a[2].
func VectorFromArray(a [3]float64) Vector3 {
	return Vector3{a[0], a[1], a[2]}
}

func (v Vector3) vec() r3.Vec { return r3.Vec(v) }

// At returns the i-th component. It panics with ErrIndexOutOfRange unless 0 <= i <= 2.
func (v Vector3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(ErrIndexOutOfRange)
}

// Array returns the components as an array.
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Add returns v + u.
func (v Vector3) Add(u Vector3) Vector3 { return Vector3(r3.Add(v.vec(), u.vec())) }

// Sub returns v - u.
func (v Vector3) Sub(u Vector3) Vector3 { return Vector3(r3.Sub(v.vec(), u.vec())) }

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Scale returns s * v.
func (v Vector3) Scale(s float64) Vector3 { return Vector3(r3.Scale(s, v.vec())) }

// Div returns v / s.
func (v Vector3) Div(s float64) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

// MulElem returns the element-wise product of v and u.
func (v Vector3) MulElem(u Vector3) Vector3 { return Vector3{v.X * u.X, v.Y * u.Y, v.Z * u.Z} }

// DivElem returns the element-wise quotient of v and u.
func (v Vector3) DivElem(u Vector3) Vector3 { return Vector3{v.X / u.X, v.Y / u.Y, v.Z / u.Z} }

// Dot returns the dot product of v and u.
func (v Vector3) Dot(u Vector3) float64 { return r3.Dot(v.vec(), u.vec()) }

// Cross returns the cross product v × u.
func (v Vector3) Cross(u Vector3) Vector3 { return Vector3(r3.Cross(v.vec(), u.vec())) }

// Norm returns the Euclidean norm of v.
func (v Vector3) Norm() float64 { return r3.Norm(v.vec()) }

// SumSq returns the squared Euclidean norm of v.
func (v Vector3) SumSq() float64 { return r3.Norm2(v.vec()) }

// Unit returns v scaled to unit length. The zero vector yields NaN components,
// the caller is responsible for not normalising it.
func (v Vector3) Unit() Vector3 {
	return v.Div(v.Norm())
}

// InnerAngle returns the angle between v and u in radians.
func (v Vector3) InnerAngle(u Vector3) float64 {
	return math.Acos(v.Unit().Dot(u.Unit()))
}

// Abs returns the element-wise absolute value of v.
func (v Vector3) Abs() Vector3 {
	return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Sign returns the element-wise sign of v (-1, 0 or 1).
func (v Vector3) Sign() Vector3 {
	return Vector3{sign(v.X), sign(v.Y), sign(v.Z)}
}

// Equal reports whether v and u are exactly equal.
func (v Vector3) Equal(u Vector3) bool {
	return v == u
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
