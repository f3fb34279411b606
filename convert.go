package attmath

import "math"

// DcmToQuaternion converts a rotation DCM into the equivalent unit quaternion with Q4 >= 0.
//
// The component with the largest magnitude is recovered first from the
// diagonal and the other three are derived from sums and differences of the
// off-diagonal entries divided by it (Shepperd's method). Since the four
// squared-magnitude candidates sum to 1, the largest one is at least 1/4 and
// the division is always well conditioned. Ties select the lowest index.
//
// d must be orthonormal; the result is meaningless but finite otherwise.
func DcmToQuaternion(d Dcm) Quaternion {
	m := d.m

	// Squared magnitude candidates of q1, q2, q3 and q4
	qq := [4]float64{
		(1 + m.M11 - m.M22 - m.M33) / 4.0,
		(1 - m.M11 + m.M22 - m.M33) / 4.0,
		(1 - m.M11 - m.M22 + m.M33) / 4.0,
		(1 + m.M11 + m.M22 + m.M33) / 4.0,
	}

	// Select the largest candidate, first index wins ties
	imax := 0
	for i := 1; i < len(qq); i++ {
		if qq[i] > qq[imax] {
			imax = i
		}
	}

	// 4*qq[imax]*fr == sqrt(qq[imax]) is the selected component
	fr := 1 / (4 * math.Sqrt(qq[imax]))

	var q Quaternion
	switch imax {
	case 0:
		q = Quaternion{4 * qq[0] * fr, (m.M12 + m.M21) * fr, (m.M31 + m.M13) * fr, (m.M23 - m.M32) * fr}
	case 1:
		q = Quaternion{(m.M12 + m.M21) * fr, 4 * qq[1] * fr, (m.M23 + m.M32) * fr, (m.M31 - m.M13) * fr}
	case 2:
		q = Quaternion{(m.M31 + m.M13) * fr, (m.M23 + m.M32) * fr, 4 * qq[2] * fr, (m.M12 - m.M21) * fr}
	default:
		q = Quaternion{(m.M23 - m.M32) * fr, (m.M31 - m.M13) * fr, (m.M12 - m.M21) * fr, 4 * qq[3] * fr}
	}

	// Normalise and canonicalise the sign of the scalar part
	q.Normalize(true)
	return q
}

// QuaternionToDcm converts q into the coordinate rotation DCM it represents.
//
// q is not renormalised. A non-unit q yields a matrix that is not a rotation.
// q and -q map to the same DCM.
func QuaternionToDcm(q Quaternion) Dcm {
	// Precalculate the required products
	var (
		q11 = q.Q1 * q.Q1
		q22 = q.Q2 * q.Q2
		q33 = q.Q3 * q.Q3
		q44 = q.Q4 * q.Q4
		q12 = q.Q1 * q.Q2
		q23 = q.Q2 * q.Q3
		q13 = q.Q1 * q.Q3
		q14 = q.Q1 * q.Q4
		q24 = q.Q2 * q.Q4
		q34 = q.Q3 * q.Q4
	)

	return Dcm{m: Matrix3x3{
		q11 - q22 - q33 + q44, 2 * (q12 + q34), 2 * (q13 - q24),
		2 * (q12 - q34), -q11 + q22 - q33 + q44, 2 * (q23 + q14),
		2 * (q13 + q24), 2 * (q23 - q14), -q11 - q22 + q33 + q44,
	}}
}

// ToDcm converts q into a DCM; see QuaternionToDcm.
func (q Quaternion) ToDcm() Dcm {
	return QuaternionToDcm(q)
}
