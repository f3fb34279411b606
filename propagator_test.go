package attmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropagator(t *testing.T) {
	p := NewPropagator()
	assert.Equal(t, IdentityQuaternion(), p.Attitude())
	assert.Equal(t, MethodTrapezoidal, p.Method())
	assert.Equal(t, R321, p.Sequence())
	assert.Equal(t, Vector3{}, p.GyroBias())
	assert.Equal(t, Vector3{}, p.AngularVelocity())
}

func TestPropagatorConstantRate(t *testing.T) {
	for _, method := range []IntegrationMethod{MethodTrapezoidal, MethodForwardEuler} {
		t.Run(method.String(), func(t *testing.T) {
			p := NewPropagator()
			p.SetMethod(method)

			// One second at 1 rad/s about Z
			const dt = 0.001
			for n := 0; n < 1000; n++ {
				p.Update(dt, AxisZ)
			}

			q := p.Attitude()
			assert.InDelta(t, 1, q.Norm(), 1e-15)
			assert.InDelta(t, 1, q.Angle(), 1e-3)
			assertQuaternionInDelta(t, QuaternionFromAxisAngle(AxisZ, 1), q, 1e-3)
			assert.Equal(t, AxisZ, p.AngularVelocity())
		})
	}
}

func TestPropagatorGyroBias(t *testing.T) {
	p := NewPropagator()
	bias := NewVector3(0.01, -0.02, 0.005)
	p.SetGyroBias(bias)
	assert.Equal(t, bias, p.GyroBias())

	for n := 0; n < 100; n++ {
		p.Update(0.01, bias)
	}
	assert.Equal(t, IdentityQuaternion(), p.Attitude())
	assert.Equal(t, Vector3{}, p.AngularVelocity())

	p.Reset(false)
	assert.Equal(t, bias, p.GyroBias())
	p.Reset(true)
	assert.Equal(t, Vector3{}, p.GyroBias())
}

func TestPropagatorReset(t *testing.T) {
	p := NewPropagator()
	p.SetMethod(MethodForwardEuler)
	require.NoError(t, p.SetSequence(R123))
	p.Update(0.1, NewVector3(1, 2, 3))
	require.NotEqual(t, IdentityQuaternion(), p.Attitude())

	p.Reset(true)
	assert.Equal(t, IdentityQuaternion(), p.Attitude())
	assert.Equal(t, MethodForwardEuler, p.Method())
	assert.Equal(t, R123, p.Sequence())

	p.ResetAll()
	assert.Equal(t, MethodDefault, p.Method())
	assert.Equal(t, R321, p.Sequence())
}

func TestPropagatorZeroNormReset(t *testing.T) {
	p := NewPropagator()
	p.SetGyroBias(NewVector3(0.1, 0.2, 0.3))
	p.Update(0.01, NewVector3(1, 1, 1))
	require.NotEqual(t, Quaternion{}, p.dQ)

	// Collapsed attitude with a stale history
	p.q = Quaternion{}
	p.Update(0, Vector3{})

	assert.Equal(t, IdentityQuaternion(), p.Attitude())
	assert.Equal(t, Vector3{}, p.GyroBias())
	assert.Equal(t, Quaternion{}, p.dQ)
	assert.Equal(t, Quaternion{}, p.dQold)
	assert.Equal(t, Vector3{}, p.AngularVelocity())
}

func TestPropagatorSetMethod(t *testing.T) {
	p := NewPropagator()
	p.SetMethod(MethodForwardEuler)
	assert.Equal(t, MethodForwardEuler, p.Method())
	p.SetMethod(MethodCount)
	assert.Equal(t, MethodDefault, p.Method())
	p.SetMethod(-1)
	assert.Equal(t, MethodDefault, p.Method())
	assert.Equal(t, "unknown", IntegrationMethod(7).String())
}

func TestPropagatorSetAttitude(t *testing.T) {
	p := NewPropagator()

	// Input is normalised and reported with a non-negative scalar part
	p.SetAttitude(RawQuaternion(0, 0, -3, -4))
	assertQuaternionInDelta(t, Quaternion{0, 0, 0.6, 0.8}, p.Attitude(), 1e-15)

	p.SetAttitude(Quaternion{})
	assert.Equal(t, IdentityQuaternion(), p.Attitude())

	d := RotationY(0.4, CoordinateRotation)
	p.SetAttitudeDcm(d)
	assertQuaternionInDelta(t, d.ToQuaternion(), p.Attitude(), 1e-15)

	f := FusedAngles{Yaw: 0.3, Pitch: 0.2, Roll: -0.4, Hemi: true}
	p.SetAttitudeFused(f)
	assertQuaternionInDelta(t, FusedToQuaternion(f), p.Attitude(), 1e-15)
}

func TestPropagatorSetAttitudeKeepsHistory(t *testing.T) {
	a := NewPropagator()
	b := NewPropagator()

	// Four seconds at 1 rad/s about Z take the scalar part negative
	const dt = 0.001
	for n := 0; n < 4000; n++ {
		a.Update(dt, AxisZ)
		b.Update(dt, AxisZ)
	}
	require.Less(t, b.q.Q4, 0.0)

	b.SetAttitude(b.Attitude())
	assertQuaternionInDelta(t, a.q, b.q, 1e-15)

	a.Update(dt, AxisZ)
	b.Update(dt, AxisZ)
	assertQuaternionInDelta(t, a.Attitude(), b.Attitude(), 1e-15)
}

func TestPropagatorEulerCache(t *testing.T) {
	p := NewPropagator()
	angles := [3]float64{0.3, 0.2, 0.1}
	require.NoError(t, p.SetAttitudeEuler(R321, angles))

	e := p.Euler()
	for i := range angles {
		assert.InDelta(t, angles[i], e[i], 1e-14)
	}

	// Switching the sequence recomputes the cached angles
	require.NoError(t, p.SetSequence(R123))
	want, err := QuaternionToEuler(R123, p.Attitude())
	require.NoError(t, err)
	assert.Equal(t, want, p.Euler())

	// An unknown sequence is rejected and the previous one kept
	assert.ErrorIs(t, p.SetSequence(0), ErrUnknownEulerSequence)
	assert.Equal(t, R123, p.Sequence())
	assert.ErrorIs(t, p.SetAttitudeEuler(99, angles), ErrUnknownEulerSequence)

	// Updating the attitude invalidates the cache
	p.Update(0.05, NewVector3(0.2, -0.1, 0.3))
	want, err = QuaternionToEuler(R123, p.Attitude())
	require.NoError(t, err)
	for i := range want {
		assert.InDelta(t, want[i], p.Euler()[i], 1e-15)
	}
}

func TestPropagatorFusedCache(t *testing.T) {
	p := NewPropagator()
	assert.Equal(t, FusedAngles{Hemi: true}, p.Fused())

	f := FusedAngles{Yaw: -2, Pitch: 0.5, Roll: 0.6, Hemi: false}
	p.SetAttitudeFused(f)
	got := p.Fused()
	assert.InDelta(t, f.Yaw, got.Yaw, 1e-14)
	assert.InDelta(t, f.Pitch, got.Pitch, 1e-14)
	assert.InDelta(t, f.Roll, got.Roll, 1e-14)
	assert.False(t, got.Hemi)

	p.Update(0.1, NewVector3(0, 0, math.Pi))
	assert.Equal(t, QuaternionToFused(p.Attitude()), p.Fused())
	assert.NotEqual(t, got, p.Fused())
}
