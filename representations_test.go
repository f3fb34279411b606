package attmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFusedRoundTrip(t *testing.T) {
	tests := []struct {
		f    FusedAngles
		want Quaternion
	}{
		{FusedAngles{0.3, 0.2, -0.4, true}, Quaternion{-0.21278897926987544, 0.07092953110291995, 0.14563049651168045, 0.9635775061740316}},
		{FusedAngles{-2.0, 0.5, 0.6, false}, Quaternion{0.8745065001646373, -0.26672811074025043, -0.34086793744939814, 0.21886878564502385}},
		{FusedAngles{1.0, -0.3, 0.1, true}, Quaternion{0.11610336671806808, -0.10708450441370906, 0.4734076349568892, 0.8665668631535163}},
		{FusedAngles{0, 0, 0, true}, IdentityQuaternion()},
	}
	for _, tt := range tests {
		q := FusedToQuaternion(tt.f)
		assertQuaternionInDelta(t, tt.want, q, 1e-14)

		f := QuaternionToFused(q)
		assert.InDelta(t, tt.f.Yaw, f.Yaw, 1e-14)
		assert.InDelta(t, tt.f.Pitch, f.Pitch, 1e-14)
		assert.InDelta(t, tt.f.Roll, f.Roll, 1e-14)
		assert.Equal(t, tt.f.Hemi, f.Hemi)
	}
}

func TestQuaternionToFusedYaw(t *testing.T) {
	for _, yaw := range []float64{-3, -1, 0, 0.7, 2, math.Pi} {
		f := QuaternionToFused(QuaternionFromAxisAngle(AxisZ, yaw))
		assert.InDelta(t, yaw, f.Yaw, 1e-14)
		assert.InDelta(t, 0, f.Pitch, 1e-15)
		assert.InDelta(t, 0, f.Roll, 1e-15)
		assert.True(t, f.Hemi)
	}

	// Yaw wraps into (-pi, pi]
	f := QuaternionToFused(QuaternionFromAxisAngle(AxisZ, 3*math.Pi/2))
	assert.InDelta(t, -math.Pi/2, f.Yaw, 1e-14)
}

func TestFusedToQuaternionTiltLimit(t *testing.T) {
	// Sine sum beyond the unit circle is a pure quarter tilt
	q := FusedToQuaternion(FusedAngles{Pitch: math.Pi / 2, Roll: math.Pi / 2, Hemi: true})
	assert.InDelta(t, 1, q.Norm(), 1e-15)
	assert.InDelta(t, math.Pi/2, q.Angle(), 1e-14)
	assert.InDelta(t, 0, q.Q3, 1e-15)

	f := QuaternionToFused(QuaternionFromAxisAngle(AxisY, math.Pi/2))
	assert.InDelta(t, math.Pi/2, f.Pitch, 1e-7)
	assert.InDelta(t, 0, f.Roll, 1e-15)
}
