package attmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a rotation quaternion. (Q1,Q2,Q3) is the vector part and Q4
// the scalar part, so a rotation by θ about the unit axis n is
// (n·sin(θ/2), cos(θ/2)).
//
// Quaternions built with NewQuaternion are unit norm with Q4 >= 0, which
// selects one representative of the double cover {q, -q}.
type Quaternion struct {
	Q1, Q2, Q3, Q4 float64
}

// IdentityQuaternion returns the identity rotation (0, 0, 0, 1).
func IdentityQuaternion() Quaternion {
	return Quaternion{Q4: 1}
}

// NewQuaternion returns the normalised quaternion (q1, q2, q3, q4) with a non-negative scalar part.
func NewQuaternion(q1, q2, q3, q4 float64) Quaternion {
	q := Quaternion{q1, q2, q3, q4}
	q.Normalize(true)
	return q
}

// RawQuaternion returns (q1, q2, q3, q4) as given, without normalisation or sign canonicalisation.
func RawQuaternion(q1, q2, q3, q4 float64) Quaternion {
	return Quaternion{q1, q2, q3, q4}
}

// QuaternionFromArray returns the raw quaternion (a[0], a[1], a[2], a[3]).
func QuaternionFromArray(a [4]float64) Quaternion {
	return Quaternion{a[0], a[1], a[2], a[3]}
}

// QuaternionFromAxisAngle returns the rotation by angle (radians) about axis.
// The axis need not be unit length. The scalar part is cos(angle/2) and is not canonicalised.
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	n := axis.Unit()
	s, c := math.Sincos(angle / 2)
	return Quaternion{n.X * s, n.Y * s, n.Z * s, c}
}

func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.Q4, Imag: q.Q1, Jmag: q.Q2, Kmag: q.Q3}
}

func fromNumber(n quat.Number) Quaternion {
	return Quaternion{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// At returns the i-th component (Q1..Q4 for i = 0..3). It panics with ErrIndexOutOfRange otherwise.
func (q Quaternion) At(i int) float64 {
	switch i {
	case 0:
		return q.Q1
	case 1:
		return q.Q2
	case 2:
		return q.Q3
	case 3:
		return q.Q4
	}
	panic(ErrIndexOutOfRange)
}

// Array returns the components in (Q1, Q2, Q3, Q4) order.
func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.Q1, q.Q2, q.Q3, q.Q4}
}

// Norm returns the modulus of q.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.number())
}

// Normalize scales q to unit norm in place and, if q4Positive is set, canonicalises its sign.
// A quaternion whose norm-squared is below QuaternionNormToleranceSquared is replaced by the identity.
func (q *Quaternion) Normalize(q4Positive bool) *Quaternion {
	qscale := q.Q1*q.Q1 + q.Q2*q.Q2 + q.Q3*q.Q3 + q.Q4*q.Q4
	if qscale < QuaternionNormToleranceSquared {
		*q = IdentityQuaternion()
		return q
	}

	n := q.Norm()
	q.Q1 /= n
	q.Q2 /= n
	q.Q3 /= n
	q.Q4 /= n
	if q4Positive {
		q.Q4Positive()
	}
	return q
}

// Q4Positive negates q in place if its scalar part is negative.
func (q *Quaternion) Q4Positive() *Quaternion {
	if q.Q4 < 0 {
		q.Q1, q.Q2, q.Q3, q.Q4 = -q.Q1, -q.Q2, -q.Q3, -q.Q4
	}
	return q
}

// Canonical returns a copy of q with a non-negative scalar part.
func (q Quaternion) Canonical() Quaternion {
	q.Q4Positive()
	return q
}

// Conj returns the conjugate quaternion (-Q1, -Q2, -Q3, Q4).
func (q Quaternion) Conj() Quaternion {
	return fromNumber(quat.Conj(q.number()))
}

// Mul returns the Hamilton product q ⊗ p, normalised and with a non-negative scalar part.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	r := fromNumber(quat.Mul(q.number(), p.number()))
	r.Normalize(true)
	return r
}

// Sub returns the rotation Δq = p* ⊗ q that takes p to q, i.e. q = p ⊗ Δq.
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return p.Conj().Mul(q)
}

// VectorPart returns (Q1, Q2, Q3).
func (q Quaternion) VectorPart() Vector3 {
	return Vector3{q.Q1, q.Q2, q.Q3}
}

// Angle returns the rotation angle of a unit quaternion in radians.
func (q Quaternion) Angle() float64 {
	// Use the vector part unless the scalar part is close to zero, where asin loses accuracy
	if q.Q4 < -0.1 || q.Q4 > 0.1 {
		return 2 * math.Asin(q.VectorPart().Norm())
	}
	if q.Q4 < 0 {
		return 2 * math.Acos(-q.Q4)
	}
	return 2 * math.Acos(q.Q4)
}

// Equal reports whether q and p are exactly equal component-wise.
func (q Quaternion) Equal(p Quaternion) bool {
	return q == p
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g; %g)", q.Q1, q.Q2, q.Q3, q.Q4)
}
