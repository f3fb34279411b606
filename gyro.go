package attmath

// GyroBias returns the gyroscope bias subtracted from every reading.
func (p *Propagator) GyroBias() Vector3 {
	return p.bias
}

// SetGyroBias sets the gyroscope bias to a particular vector value.
func (p *Propagator) SetGyroBias(bias Vector3) {
	p.bias = bias
}

// AngularVelocity returns the bias corrected angular velocity used by the last update.
func (p *Propagator) AngularVelocity() Vector3 {
	return p.omega
}
