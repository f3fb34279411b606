package attmath

import "math"

// FusedAngles is the fused angle representation of an attitude: fused yaw in
// (-pi,pi], fused pitch and roll in [-pi/2,pi/2], and the hemisphere of the
// rotated z axis (true for the positive hemisphere).
type FusedAngles struct {
	Yaw   float64
	Pitch float64
	Roll  float64
	Hemi  bool
}

// QuaternionToFused returns the fused angles of the unit quaternion q.
func QuaternionToFused(q Quaternion) FusedAngles {
	w, x, y, z := q.Q4, q.Q1, q.Q2, q.Q3

	var f FusedAngles

	// Calculate and wrap the fused yaw
	f.Yaw = 2 * math.Atan2(z, w) // In [-2*pi,2*pi]
	if f.Yaw > math.Pi {
		f.Yaw -= TwoPi
	}
	if f.Yaw <= -math.Pi {
		f.Yaw += TwoPi
	}

	// Calculate the fused pitch and roll
	f.Pitch = math.Asin(clampUnit(2 * (y*w - x*z)))
	f.Roll = math.Asin(clampUnit(2 * (y*z + x*w)))

	// Calculate the hemisphere of the rotation
	f.Hemi = 0.5-(x*x+y*y) >= 0

	return f
}

// FusedToQuaternion returns the unit quaternion of the fused angles f, with a
// non-negative scalar part. Pitch and roll whose sines exceed the unit circle
// are treated as a tilt of pi/2.
func FusedToQuaternion(f FusedAngles) Quaternion {
	sth, sphi := math.Sin(f.Pitch), math.Sin(f.Roll)

	// Calculate the sine sum criterion
	crit := sth*sth + sphi*sphi

	// Calculate the tilt angle alpha
	var alpha float64
	switch {
	case crit >= 1:
		alpha = math.Pi / 2
	case f.Hemi:
		alpha = math.Acos(math.Sqrt(1 - crit))
	default:
		alpha = math.Acos(-math.Sqrt(1 - crit))
	}

	// Calculate the tilt axis gamma
	gamma := math.Atan2(sth, sphi)

	// Evaluate the required intermediate angles
	var (
		halpha  = 0.5 * alpha
		hpsi    = 0.5 * f.Yaw
		hgampsi = gamma + hpsi
	)

	shalpha, chalpha := math.Sincos(halpha)
	shpsi, chpsi := math.Sincos(hpsi)
	shgampsi, chgampsi := math.Sincos(hgampsi)

	return NewQuaternion(shalpha*chgampsi, shalpha*shgampsi, chalpha*shpsi, chalpha*chpsi)
}

// Euler returns the Euler angles of the current attitude in the configured
// sequence (see SetSequence).
func (p *Propagator) Euler() [3]float64 {
	if !p.eulerValid {
		p.updateEuler()
	}
	return p.euler
}

// Fused returns the fused angles of the current attitude.
func (p *Propagator) Fused() FusedAngles {
	if !p.fusedValid {
		p.updateFused()
	}
	return p.fused
}

func (p *Propagator) updateEuler() {
	// The sequence is validated by SetSequence
	p.euler, _ = QuaternionToEuler(p.seq, p.q)
	p.eulerValid = true
}

func (p *Propagator) updateFused() {
	p.fused = QuaternionToFused(p.q)
	p.fusedValid = true
}
