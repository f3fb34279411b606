package attmath

// IntegrationMethod selects how Propagator integrates the quaternion derivative.
type IntegrationMethod int

// Integration method enumeration.
const (
	// Integrate with the trapezoidal rule over the current and the previous derivative (default).
	MethodTrapezoidal IntegrationMethod = iota

	// Integrate with a forward Euler step over the current derivative.
	MethodForwardEuler

	// Total number of integration methods.
	MethodCount

	// Default integration method (MethodTrapezoidal)
	MethodDefault = MethodTrapezoidal
)

func (m IntegrationMethod) String() string {
	switch m {
	case MethodTrapezoidal:
		return "trapezoidal"
	case MethodForwardEuler:
		return "euler"
	}
	return "unknown"
}

// Method returns the currently selected integration method.
func (p *Propagator) Method() IntegrationMethod {
	return p.method
}

// SetMethod sets the integration method to use.
// Values outside of the known methods are coerced to MethodDefault.
func (p *Propagator) SetMethod(method IntegrationMethod) {
	if method < MethodTrapezoidal || method >= MethodCount {
		p.method = MethodDefault
	} else {
		p.method = method
	}
}

// Sequence returns the Euler sequence reported by Euler.
func (p *Propagator) Sequence() EulerSequence {
	return p.seq
}

// SetSequence sets the Euler sequence reported by Euler.
// An unknown sequence is rejected and the current one is kept.
func (p *Propagator) SetSequence(seq EulerSequence) error {
	if _, err := seq.Axes(); err != nil {
		return err
	}
	if seq != p.seq {
		p.seq = seq
		p.eulerValid = false
	}
	return nil
}
