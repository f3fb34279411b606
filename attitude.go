package attmath

// Attitude returns the current attitude with a non-negative scalar part.
func (p *Propagator) Attitude() Quaternion {
	return p.q.Canonical()
}

// SetAttitude sets the current attitude. q is normalised; if its norm is too
// close to zero the identity is used instead. The stored sign is chosen in the
// hemisphere of the previous attitude, so the integration history stays valid.
func (p *Propagator) SetAttitude(q Quaternion) {
	q.Normalize(false)

	// Keep the sign continuous with dQ and dQold
	if q.Q1*p.q.Q1+q.Q2*p.q.Q2+q.Q3*p.q.Q3+q.Q4*p.q.Q4 < 0 {
		q = RawQuaternion(-q.Q1, -q.Q2, -q.Q3, -q.Q4)
	}
	p.q = q

	// Reset the alternative representation validity flags
	p.eulerValid = false
	p.fusedValid = false
}

// SetAttitudeEuler sets the current attitude to Euler angles (radians, rotation order) of sequence seq.
func (p *Propagator) SetAttitudeEuler(seq EulerSequence, angles [3]float64) error {
	q, err := EulerToQuaternion(seq, angles)
	if err != nil {
		return err
	}
	p.SetAttitude(q)
	return nil
}

// SetAttitudeFused sets the current attitude to a particular set of fused angles.
func (p *Propagator) SetAttitudeFused(f FusedAngles) {
	p.SetAttitude(FusedToQuaternion(f))
}

// SetAttitudeDcm sets the current attitude to the rotation d.
func (p *Propagator) SetAttitudeDcm(d Dcm) {
	p.SetAttitude(DcmToQuaternion(d))
}
