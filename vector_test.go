package attmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	v := NewVector3(1, 2, 3)
	u := NewVector3(-2, 0.5, 4)

	assert.Equal(t, Vector3{-1, 2.5, 7}, v.Add(u))
	assert.Equal(t, Vector3{3, 1.5, -1}, v.Sub(u))
	assert.Equal(t, Vector3{-1, -2, -3}, v.Neg())
	assert.Equal(t, Vector3{2, 4, 6}, v.Scale(2))
	assert.Equal(t, Vector3{0.5, 1, 1.5}, v.Div(2))
	assert.Equal(t, Vector3{-2, 1, 12}, v.MulElem(u))
	assert.Equal(t, Vector3{-0.5, 4, 0.75}, v.DivElem(u))
	assert.Equal(t, 11.0, v.Dot(u))
	assert.Equal(t, 14.0, v.SumSq())
	assert.InDelta(t, math.Sqrt(14), v.Norm(), 1e-15)
}

func TestVectorCross(t *testing.T) {
	assert.Equal(t, AxisZ, AxisX.Cross(AxisY))
	assert.Equal(t, AxisX, AxisY.Cross(AxisZ))
	assert.Equal(t, AxisY, AxisZ.Cross(AxisX))
	assert.Equal(t, AxisZ.Neg(), AxisY.Cross(AxisX))

	v := NewVector3(1, 2, 3)
	u := NewVector3(-2, 0.5, 4)
	c := v.Cross(u)
	assert.InDelta(t, 0, c.Dot(v), 1e-12)
	assert.InDelta(t, 0, c.Dot(u), 1e-12)
}

func TestVectorUnitAndAngle(t *testing.T) {
	u := NewVector3(3, 0, 4).Unit()
	assert.InDelta(t, 0.6, u.X, 1e-15)
	assert.InDelta(t, 0.8, u.Z, 1e-15)
	assert.InDelta(t, 1, u.Norm(), 1e-15)

	assert.InDelta(t, math.Pi/2, AxisX.InnerAngle(AxisY.Scale(5)), 1e-15)
	assert.InDelta(t, math.Pi/4, AxisX.InnerAngle(NewVector3(1, 1, 0)), 1e-15)
}

func TestVectorElementwise(t *testing.T) {
	v := NewVector3(-1.5, 0, 2)
	assert.Equal(t, Vector3{1.5, 0, 2}, v.Abs())
	assert.Equal(t, Vector3{-1, 0, 1}, v.Sign())
	assert.Equal(t, [3]float64{-1.5, 0, 2}, v.Array())
	assert.Equal(t, v, VectorFromArray(v.Array()))
	assert.True(t, v.Equal(Vector3{-1.5, 0, 2}))
	assert.False(t, v.Equal(Vector3{-1.5, 0, 2.0000001}))
	assert.Equal(t, "(-1.5, 0, 2)", v.String())
}

func TestVectorAt(t *testing.T) {
	v := NewVector3(7, 8, 9)
	for i, want := range []float64{7, 8, 9} {
		assert.Equal(t, want, v.At(i))
	}
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { v.At(3) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { v.At(-1) })
}
