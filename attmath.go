// Package attmath provides spatial attitude mathematics: 3D vectors, 3x3
// matrices, rotation quaternions and direction cosine matrices (DCMs),
// together with conversions between the rotation representations (DCM,
// quaternion, the 12 classical Euler angle sequences and fused angles) and
// the quaternion kinematic equation.
//
// Quaternions store the vector part in (Q1,Q2,Q3) and the scalar part in Q4.
// A DCM produced by this package is a coordinate frame rotation unless a
// function is explicitly asked for a vector rotation through RotationMode.
//
// All types are values. Nothing in the package performs I/O or holds shared
// state, so every function is safe for concurrent use.
package attmath

const (
	// If the absolute value of the DCM entry that selects the middle Euler angle is less than this, the
	// extraction is considered degenerate and a zero angle triple is returned. This is the float64 machine epsilon.
	GimbalLockTolerance = 2.220446049250313e-16

	// If a supposedly near-unit quaternion has norm-squared less than this during normalisation,
	// it is considered to be zero and the identity rotation is used instead.
	QuaternionNormToleranceSquared = 1e-12 * 1e-12

	// Default tolerance used when checking that a matrix is a proper orthonormal rotation matrix.
	OrthonormalTolerance = 1e-12
)
