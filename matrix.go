package attmath

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix3x3 is a 3×3 matrix with named row-major entries (value type).
// Equality is exact element-wise comparison.
type Matrix3x3 struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

// Identity returns the 3×3 identity matrix.
func Identity() Matrix3x3 {
	return Matrix3x3{M11: 1, M22: 1, M33: 1}
}

// Diag returns the diagonal matrix diag(a, b, c).
func Diag(a, b, c float64) Matrix3x3 {
	return Matrix3x3{M11: a, M22: b, M33: c}
}

// DiagVector returns the diagonal matrix with v on its diagonal.
func DiagVector(v Vector3) Matrix3x3 {
	return Diag(v.X, v.Y, v.Z)
}

// MatrixFromArray returns the matrix with entries a[row][col].
func MatrixFromArray(a [3][3]float64) Matrix3x3 {
	return Matrix3x3{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	}
}

// MatrixFromRows returns the matrix whose rows are r1, r2 and r3.
func MatrixFromRows(r1, r2, r3 Vector3) Matrix3x3 {
	return Matrix3x3{
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
		r3.X, r3.Y, r3.Z,
	}
}

// fromMatrix copies a 3×3 gonum matrix.
func fromMatrix(a mat.Matrix) Matrix3x3 {
	return Matrix3x3{
		a.At(0, 0), a.At(0, 1), a.At(0, 2),
		a.At(1, 0), a.At(1, 1), a.At(1, 2),
		a.At(2, 0), a.At(2, 1), a.At(2, 2),
	}
}

func (m Matrix3x3) dense() *mat.Dense {
	return mat.NewDense(3, 3, m.slice())
}

func (m Matrix3x3) slice() []float64 {
	return []float64{m.M11, m.M12, m.M13, m.M21, m.M22, m.M23, m.M31, m.M32, m.M33}
}

// At returns the entry at the given row and column. It panics with
// ErrIndexOutOfRange unless both indices are in 0..2.
func (m Matrix3x3) At(row, col int) float64 {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic(ErrIndexOutOfRange)
	}
	switch row*3 + col {
	case 0:
		return m.M11
	case 1:
		return m.M12
	case 2:
		return m.M13
	case 3:
		return m.M21
	case 4:
		return m.M22
	case 5:
		return m.M23
	case 6:
		return m.M31
	case 7:
		return m.M32
	}
	return m.M33
}

// Set sets the entry at the given row and column. It panics with
// ErrIndexOutOfRange unless both indices are in 0..2.
func (m *Matrix3x3) Set(row, col int, v float64) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic(ErrIndexOutOfRange)
	}
	switch row*3 + col {
	case 0:
		m.M11 = v
	case 1:
		m.M12 = v
	case 2:
		m.M13 = v
	case 3:
		m.M21 = v
	case 4:
		m.M22 = v
	case 5:
		m.M23 = v
	case 6:
		m.M31 = v
	case 7:
		m.M32 = v
	default:
		m.M33 = v
	}
}

// Row returns the i-th row as a vector.
func (m Matrix3x3) Row(i int) Vector3 {
	switch i {
	case 0:
		return Vector3{m.M11, m.M12, m.M13}
	case 1:
		return Vector3{m.M21, m.M22, m.M23}
	case 2:
		return Vector3{m.M31, m.M32, m.M33}
	}
	panic(ErrIndexOutOfRange)
}

// SetRow replaces the i-th row with v.
func (m *Matrix3x3) SetRow(i int, v Vector3) {
	switch i {
	case 0:
		m.M11, m.M12, m.M13 = v.X, v.Y, v.Z
	case 1:
		m.M21, m.M22, m.M23 = v.X, v.Y, v.Z
	case 2:
		m.M31, m.M32, m.M33 = v.X, v.Y, v.Z
	default:
		panic(ErrIndexOutOfRange)
	}
}

// Diagonal returns the diagonal entries.
func (m Matrix3x3) Diagonal() Vector3 {
	return Vector3{m.M11, m.M22, m.M33}
}

// Array returns the entries as a row-major 2D array.
func (m Matrix3x3) Array() [3][3]float64 {
	return [3][3]float64{
		{m.M11, m.M12, m.M13},
		{m.M21, m.M22, m.M23},
		{m.M31, m.M32, m.M33},
	}
}

// Add returns m + n.
func (m Matrix3x3) Add(n Matrix3x3) Matrix3x3 {
	return Matrix3x3{
		m.M11 + n.M11, m.M12 + n.M12, m.M13 + n.M13,
		m.M21 + n.M21, m.M22 + n.M22, m.M23 + n.M23,
		m.M31 + n.M31, m.M32 + n.M32, m.M33 + n.M33,
	}
}

// Sub returns m - n.
func (m Matrix3x3) Sub(n Matrix3x3) Matrix3x3 {
	return m.Add(n.Scale(-1))
}

// Scale returns s * m.
func (m Matrix3x3) Scale(s float64) Matrix3x3 {
	return Matrix3x3{
		s * m.M11, s * m.M12, s * m.M13,
		s * m.M21, s * m.M22, s * m.M23,
		s * m.M31, s * m.M32, s * m.M33,
	}
}

// Div returns m / s.
func (m Matrix3x3) Div(s float64) Matrix3x3 {
	return Matrix3x3{
		m.M11 / s, m.M12 / s, m.M13 / s,
		m.M21 / s, m.M22 / s, m.M23 / s,
		m.M31 / s, m.M32 / s, m.M33 / s,
	}
}

// Mul returns the matrix product m × n.
func (m Matrix3x3) Mul(n Matrix3x3) Matrix3x3 {
	var p mat.Dense
	p.Mul(m.dense(), n.dense())
	return fromMatrix(&p)
}

// MulVec returns m × v.
func (m Matrix3x3) MulVec(v Vector3) Vector3 {
	return Vector3{
		m.M11*v.X + m.M12*v.Y + m.M13*v.Z,
		m.M21*v.X + m.M22*v.Y + m.M23*v.Z,
		m.M31*v.X + m.M32*v.Y + m.M33*v.Z,
	}
}

// Transpose returns mᵗ.
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m.M11, m.M21, m.M31,
		m.M12, m.M22, m.M32,
		m.M13, m.M23, m.M33,
	}
}

// Det returns the determinant of m.
func (m Matrix3x3) Det() float64 {
	return mat.Det(m.dense())
}

// Inverse returns m⁻¹. The error wraps ErrSingularMatrix when m cannot be inverted.
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return Matrix3x3{}, errors.Wrapf(ErrSingularMatrix, "inverse: %v", err)
	}
	return fromMatrix(&inv), nil
}

// PseudoInverse returns the Moore-Penrose pseudo-inverse of m, computed from
// its singular value decomposition. Singular values below the numerical rank
// threshold are treated as zero.
func (m Matrix3x3) PseudoInverse() (Matrix3x3, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m.dense(), mat.SVDFull); !ok {
		return Matrix3x3{}, errors.Wrap(ErrSingularMatrix, "pseudo-inverse: svd factorization failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	// Invert the singular values above the cutoff used by numpy/matlab
	cutoff := 1e-15 * 3 * s[0]
	var sinv mat.Dense
	sinv.ReuseAs(3, 3)
	for i, sv := range s {
		if sv > cutoff {
			sinv.Set(i, i, 1/sv)
		}
	}

	// A⁺ = V Σ⁺ Uᵗ
	var vs, p mat.Dense
	vs.Mul(&v, &sinv)
	p.Mul(&vs, u.T())
	return fromMatrix(&p), nil
}

// Equal reports whether m and n are exactly equal element-wise.
func (m Matrix3x3) Equal(n Matrix3x3) bool {
	return m == n
}

// EqualApprox reports whether every pair of entries of m and n is within tol,
// absolutely or relatively.
func (m Matrix3x3) EqualApprox(n Matrix3x3, tol float64) bool {
	return floats.EqualApprox(m.slice(), n.slice(), tol)
}

func (m Matrix3x3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m.M11, m.M12, m.M13, m.M21, m.M22, m.M23, m.M31, m.M32, m.M33)
}
