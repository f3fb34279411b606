package attmath

// Propagator integrates a body angular velocity into an attitude quaternion.
//
// It is pure dead reckoning from Qdot: there is no measurement correction.
// The zero value is not ready for use, create one with NewPropagator.
// A Propagator is not safe for concurrent use.
type Propagator struct {
	// Configuration variables
	method IntegrationMethod // The integration scheme used by Update
	seq    EulerSequence     // The sequence of the cached Euler angle representation

	// Gyroscope bias
	bias Vector3 // Subtracted from every gyro reading before integration

	// Internal variables
	q          Quaternion  // Attitude estimate, unit norm, sign not canonicalised between updates
	dQ, dQold  Quaternion  // Quaternion derivatives of the current and the previous update
	omega      Vector3     // Bias corrected angular velocity of the last update
	euler      [3]float64  // Euler angles of q in the configured sequence
	fused      FusedAngles // Fused angles of q
	eulerValid bool        // Whether euler is up to date with q
	fusedValid bool        // Whether fused is up to date with q
}

// NewPropagator returns a propagator at the identity attitude with zero gyro
// bias, trapezoidal integration and R321 Euler angles.
func NewPropagator() *Propagator {
	p := &Propagator{}
	p.ResetAll()
	return p
}

// Update advances the attitude by dt seconds using the gyroscope reading gyro (rad/s).
//
// The gyro bias is subtracted, the quaternion derivative is evaluated with
// Qdot and integrated with the configured IntegrationMethod, and the attitude
// is renormalised.
func (p *Propagator) Update(dt float64, gyro Vector3) {
	// Save the old derivative
	p.dQold = p.dQ

	// Calculate the bias corrected angular velocity and the resulting quaternion velocity
	p.omega = gyro.Sub(p.bias)
	p.dQ = Qdot(p.q, p.omega)

	// Update the attitude estimate using the calculated quaternion velocity
	switch p.method {
	case MethodForwardEuler:
		p.q.Q1 += dt * p.dQ.Q1
		p.q.Q2 += dt * p.dQ.Q2
		p.q.Q3 += dt * p.dQ.Q3
		p.q.Q4 += dt * p.dQ.Q4
	default:
		// Trapezoidal integration of dQ
		dscale := 0.5 * dt
		p.q.Q1 += dscale * (p.dQ.Q1 + p.dQold.Q1)
		p.q.Q2 += dscale * (p.dQ.Q2 + p.dQold.Q2)
		p.q.Q3 += dscale * (p.dQ.Q3 + p.dQold.Q3)
		p.q.Q4 += dscale * (p.dQ.Q4 + p.dQold.Q4)
	}

	// Renormalise the current attitude estimate
	qscale := p.q.Q1*p.q.Q1 + p.q.Q2*p.q.Q2 + p.q.Q3*p.q.Q3 + p.q.Q4*p.q.Q4
	if qscale < QuaternionNormToleranceSquared {
		// The quaternion is so far away from being normalised (almost zero norm when it should be 1)
		// that something must be dreadfully wrong... (avoid potential division by zero below)
		// Reset, not just the identity fallback of Normalize: dQ, dQold and the bias go too.
		p.Reset(true)
		return
	}
	p.q.Normalize(false)

	// Reset the alternative representation validity flags
	p.eulerValid = false
	p.fusedValid = false
}

// Reset returns the propagator to the identity attitude and clears the
// integration history. The configuration is kept, and the gyro bias too unless
// resetGyroBias is set.
func (p *Propagator) Reset(resetGyroBias bool) {
	// Initialise the attitude estimate
	p.q = IdentityQuaternion()
	p.eulerValid = false
	p.fusedValid = false

	// Initialise the gyro bias estimate
	if resetGyroBias {
		p.SetGyroBias(Vector3{})
	}

	// Initialise the remaining internal variables
	p.dQ = Quaternion{}
	p.dQold = Quaternion{}
	p.omega = Vector3{}
}

// ResetAll resets the propagator including its configuration.
func (p *Propagator) ResetAll() {
	// Initialise the configuration variables
	p.SetMethod(MethodDefault)
	p.seq = R321

	// Reset the attitude propagator
	p.Reset(true)
}
