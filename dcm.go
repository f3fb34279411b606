package attmath

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"
)

// RotationMode selects whether a rotation acts on the coordinate frame or on the vector itself.
type RotationMode int

const (
	// CoordinateRotation rotates the coordinate frame; a vector keeps its direction
	// and its components are re-expressed in the rotated frame.
	CoordinateRotation RotationMode = iota

	// VectorRotation rotates the vector within a fixed frame. The matrix is the
	// transpose of the corresponding coordinate rotation.
	VectorRotation
)

func (r RotationMode) String() string {
	switch r {
	case CoordinateRotation:
		return "coordinate"
	case VectorRotation:
		return "vector"
	}
	return "unknown"
}

// Dcm is a direction cosine matrix. The wrapped matrix must be orthonormal
// with determinant +1; NewDcm does not check this, NewDcmChecked does.
type Dcm struct {
	m Matrix3x3
}

// IdentityDcm returns the identity rotation.
func IdentityDcm() Dcm {
	return Dcm{m: Identity()}
}

// NewDcm wraps m as a DCM without validating it.
func NewDcm(m Matrix3x3) Dcm {
	return Dcm{m: m}
}

// DcmFromArray wraps the row-major array a as a DCM without validating it.
func DcmFromArray(a [3][3]float64) Dcm {
	return Dcm{m: MatrixFromArray(a)}
}

// NewDcmChecked wraps m as a DCM after checking that m·mᵗ = I and det(m) = +1
// within tol. The error wraps ErrNotOrthonormal.
func NewDcmChecked(m Matrix3x3, tol float64) (Dcm, error) {
	d := Dcm{m: m}
	if !m.Mul(m.Transpose()).EqualApprox(Identity(), tol) {
		return Dcm{}, errors.Wrap(ErrNotOrthonormal, "m·mᵗ is not the identity")
	}
	if det := m.Det(); !scalar.EqualWithinAbs(det, 1, tol) {
		return Dcm{}, errors.Wrapf(ErrNotOrthonormal, "determinant is %g", det)
	}
	return d, nil
}

// RotationX returns the DCM of a rotation by angle (radians) about the X axis.
//
//	|   1    0    0  |
//	|   0   cos  sin |
//	|   0  -sin  cos |
//
// The matrix shown is the coordinate rotation; VectorRotation returns its transpose.
func RotationX(angle float64, mode RotationMode) Dcm {
	s, c := math.Sincos(angle)
	d := Dcm{m: Matrix3x3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}}
	return d.mode(mode)
}

// RotationY returns the DCM of a rotation by angle (radians) about the Y axis.
//
//	|  cos   0  -sin |
//	|   0    1    0  |
//	|  sin   0   cos |
//
// The matrix shown is the coordinate rotation; VectorRotation returns its transpose.
func RotationY(angle float64, mode RotationMode) Dcm {
	s, c := math.Sincos(angle)
	d := Dcm{m: Matrix3x3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}}
	return d.mode(mode)
}

// RotationZ returns the DCM of a rotation by angle (radians) about the Z axis.
//
//	|  cos  sin  0  |
//	| -sin  cos  0  |
//	|   0    0   1  |
//
// The matrix shown is the coordinate rotation; VectorRotation returns its transpose.
func RotationZ(angle float64, mode RotationMode) Dcm {
	s, c := math.Sincos(angle)
	d := Dcm{m: Matrix3x3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}}
	return d.mode(mode)
}

func (d Dcm) mode(mode RotationMode) Dcm {
	if mode == VectorRotation {
		return d.Transpose()
	}
	return d
}

// At returns the entry at the given row and column.
func (d Dcm) At(row, col int) float64 {
	return d.m.At(row, col)
}

// Matrix returns the underlying matrix.
func (d Dcm) Matrix() Matrix3x3 {
	return d.m
}

// Array returns the entries as a row-major 2D array.
func (d Dcm) Array() [3][3]float64 {
	return d.m.Array()
}

// Mul returns the composed rotation d × e (e applied first).
func (d Dcm) Mul(e Dcm) Dcm {
	return Dcm{m: d.m.Mul(e.m)}
}

// MulVec returns d × v.
func (d Dcm) MulVec(v Vector3) Vector3 {
	return d.m.MulVec(v)
}

// Transpose returns dᵗ, the inverse rotation.
func (d Dcm) Transpose() Dcm {
	return Dcm{m: d.m.Transpose()}
}

// Det returns the determinant of d, which is +1 for a valid DCM.
func (d Dcm) Det() float64 {
	return d.m.Det()
}

// IsOrthonormal reports whether d·dᵗ = I and det(d) = +1 within tol.
func (d Dcm) IsOrthonormal(tol float64) bool {
	_, err := NewDcmChecked(d.m, tol)
	return err == nil
}

// Equal reports whether d and e are exactly equal element-wise.
func (d Dcm) Equal(e Dcm) bool {
	return d.m.Equal(e.m)
}

func (d Dcm) String() string {
	return "DCM" + d.m.String()
}

// RotateX applies a further coordinate rotation by angle (radians) about the X axis in place,
// i.e. d becomes RotationX(angle) × d.
func (d *Dcm) RotateX(angle float64) {
	s, c := math.Sincos(angle)
	m := &d.m

	var (
		a21 = c*m.M21 + s*m.M31
		a22 = c*m.M22 + s*m.M32
		a23 = c*m.M23 + s*m.M33
		a31 = -s*m.M21 + c*m.M31
		a32 = -s*m.M22 + c*m.M32
		a33 = -s*m.M23 + c*m.M33
	)

	m.M21, m.M22, m.M23 = a21, a22, a23
	m.M31, m.M32, m.M33 = a31, a32, a33
}

// RotateY applies a further coordinate rotation by angle (radians) about the Y axis in place,
// i.e. d becomes RotationY(angle) × d.
func (d *Dcm) RotateY(angle float64) {
	s, c := math.Sincos(angle)
	m := &d.m

	var (
		a11 = c*m.M11 - s*m.M31
		a12 = c*m.M12 - s*m.M32
		a13 = c*m.M13 - s*m.M33
		a31 = s*m.M11 + c*m.M31
		a32 = s*m.M12 + c*m.M32
		a33 = s*m.M13 + c*m.M33
	)

	m.M11, m.M12, m.M13 = a11, a12, a13
	m.M31, m.M32, m.M33 = a31, a32, a33
}

// RotateZ applies a further coordinate rotation by angle (radians) about the Z axis in place,
// i.e. d becomes RotationZ(angle) × d.
func (d *Dcm) RotateZ(angle float64) {
	s, c := math.Sincos(angle)
	m := &d.m

	var (
		a11 = c*m.M11 + s*m.M21
		a12 = c*m.M12 + s*m.M22
		a13 = c*m.M13 + s*m.M23
		a21 = -s*m.M11 + c*m.M21
		a22 = -s*m.M12 + c*m.M22
		a23 = -s*m.M13 + c*m.M23
	)

	m.M11, m.M12, m.M13 = a11, a12, a13
	m.M21, m.M22, m.M23 = a21, a22, a23
}

// rotate applies a coordinate rotation about axis 0, 1 or 2 in place.
func (d *Dcm) rotate(axis int, angle float64) {
	switch axis {
	case 0:
		d.RotateX(angle)
	case 1:
		d.RotateY(angle)
	case 2:
		d.RotateZ(angle)
	default:
		panic(ErrIndexOutOfRange)
	}
}

// ToQuaternion converts d to a quaternion; see DcmToQuaternion.
func (d Dcm) ToQuaternion() Quaternion {
	return DcmToQuaternion(d)
}

// ToEuler extracts the Euler angles of the given sequence; see ToEuler.
func (d Dcm) ToEuler(seq EulerSequence) ([3]float64, error) {
	return ToEuler(seq, d)
}
