package attmath

// Qdot returns the time derivative of the attitude quaternion q for the body
// angular velocity w (rad/s), dq/dt = 0.5·Ω(w)·q.
//
// The result is not a rotation and is returned unnormalised, as integration
// schemes need the raw derivative.
func Qdot(q Quaternion, w Vector3) Quaternion {
	return Quaternion{
		0.5 * (w.Z*q.Q2 - w.Y*q.Q3 + w.X*q.Q4),
		0.5 * (-w.Z*q.Q1 + w.X*q.Q3 + w.Y*q.Q4),
		0.5 * (w.Y*q.Q1 - w.X*q.Q2 + w.Z*q.Q4),
		0.5 * (-w.X*q.Q1 - w.Y*q.Q2 - w.Z*q.Q3),
	}
}

// Qdot returns the time derivative of q for the angular velocity w; see Qdot.
func (q Quaternion) Qdot(w Vector3) Quaternion {
	return Qdot(q, w)
}

// RotateVector rotates v by the quaternion q. With CoordinateRotation the
// result is v expressed in the rotated frame (q.ToDcm() × v); with
// VectorRotation v itself is rotated (q.Conj().ToDcm() × v).
func RotateVector(q Quaternion, v Vector3, mode RotationMode) Vector3 {
	if mode == VectorRotation {
		return q.Conj().ToDcm().MulVec(v)
	}
	return q.ToDcm().MulVec(v)
}

// RotateVector rotates v by q; see RotateVector.
func (q Quaternion) RotateVector(v Vector3, mode RotationMode) Vector3 {
	return RotateVector(q, v, mode)
}
