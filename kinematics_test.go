package attmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQdot(t *testing.T) {
	q := NewQuaternion(-0.681389628021683, -0.684583761701115, -0.177045398740411, 0.188966067918216)
	w := NewVector3(0.1, -0.1, 0.2)

	want := Quaternion{-0.06786234271122127, 0.04983838946923696, 0.08719527627796152, 0.017544833190069508}
	assertQuaternionInDelta(t, want, Qdot(q, w), 1e-15)
	assertQuaternionInDelta(t, want, q.Qdot(w), 1e-15)
}

func TestQdotProperties(t *testing.T) {
	g := NewGaussian(5, 0, 1)
	for n := 0; n < 100; n++ {
		q := RandomQuaternion(g)
		w := NewVector3(g.Next(), g.Next(), g.Next())
		dq := Qdot(q, w)

		// The derivative of a unit quaternion is tangent to the unit sphere
		assert.InDelta(t, 0, dq.Q1*q.Q1+dq.Q2*q.Q2+dq.Q3*q.Q3+dq.Q4*q.Q4, 1e-14)

		// Its magnitude is half the angular rate
		assert.InDelta(t, 0.5*w.Norm(), math.Sqrt(dq.Q1*dq.Q1+dq.Q2*dq.Q2+dq.Q3*dq.Q3+dq.Q4*dq.Q4), 1e-14)
	}

	assert.Equal(t, Quaternion{}, Qdot(IdentityQuaternion(), Vector3{}))
}

func TestRotateVector(t *testing.T) {
	rMat := RotationX(15*Deg2Rad, CoordinateRotation).
		Mul(RotationY(-20*Deg2Rad, CoordinateRotation)).
		Mul(RotationZ(30*Deg2Rad, CoordinateRotation))
	rQ := rMat.ToQuaternion()

	for _, v := range []Vector3{AxisX, AxisY, AxisZ, NewVector3(1, -2, 3)} {
		want := rMat.MulVec(v)
		got := rQ.RotateVector(v, CoordinateRotation)
		assert.InDelta(t, want.X, got.X, 1e-14)
		assert.InDelta(t, want.Y, got.Y, 1e-14)
		assert.InDelta(t, want.Z, got.Z, 1e-14)

		want = rMat.Transpose().MulVec(v)
		got = RotateVector(rQ, v, VectorRotation)
		assert.InDelta(t, want.X, got.X, 1e-14)
		assert.InDelta(t, want.Y, got.Y, 1e-14)
		assert.InDelta(t, want.Z, got.Z, 1e-14)
	}
}

func TestRotateVectorAxisAngle(t *testing.T) {
	q := QuaternionFromAxisAngle(AxisZ, math.Pi/2)

	got := q.RotateVector(AxisX, VectorRotation)
	assert.InDelta(t, 0, got.X, 1e-15)
	assert.InDelta(t, 1, got.Y, 1e-15)
	assert.InDelta(t, 0, got.Z, 1e-15)

	got = q.RotateVector(AxisX, CoordinateRotation)
	assert.InDelta(t, 0, got.X, 1e-15)
	assert.InDelta(t, -1, got.Y, 1e-15)

	// Rotation preserves length
	v := NewVector3(0.3, -4, 2)
	assert.InDelta(t, v.Norm(), q.RotateVector(v, VectorRotation).Norm(), 1e-14)
}
