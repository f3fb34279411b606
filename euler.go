package attmath

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// EulerSequence is one of the 12 classical Euler angle rotation sequences.
// The digits name the axes (1 = X, 2 = Y, 3 = Z) in rotation order, so R321
// is yaw about Z, then pitch about Y, then roll about X.
//
// The zero value is not a valid sequence.
type EulerSequence int

// Euler angle sequences.
const (
	R121 EulerSequence = iota + 1
	R123
	R131
	R132
	R212
	R213
	R231
	R232
	R312
	R313
	R321
	R323
)

// eulerParams holds the axis index permutation (i, j, k) and the parity
// signum of a sequence, and whether its first and third axes coincide.
type eulerParams struct {
	i, j, k   int
	signum    float64
	symmetric bool
	name      string
}

var eulerTable = map[EulerSequence]eulerParams{
	// Asymmetric sequences (ijk)
	R123: {0, 1, 2, -1, false, "R123"},
	R231: {1, 2, 0, -1, false, "R231"},
	R312: {2, 0, 1, -1, false, "R312"},
	R132: {0, 2, 1, 1, false, "R132"},
	R213: {1, 0, 2, 1, false, "R213"},
	R321: {2, 1, 0, 1, false, "R321"},

	// Symmetric sequences (iji)
	R121: {0, 1, 2, -1, true, "R121"},
	R232: {1, 2, 0, -1, true, "R232"},
	R313: {2, 0, 1, -1, true, "R313"},
	R131: {0, 2, 1, 1, true, "R131"},
	R212: {1, 0, 2, 1, true, "R212"},
	R323: {2, 1, 0, 1, true, "R323"},
}

// EulerSequences lists every valid sequence.
var EulerSequences = []EulerSequence{R121, R123, R131, R132, R212, R213, R231, R232, R312, R313, R321, R323}

func (s EulerSequence) String() string {
	if p, ok := eulerTable[s]; ok {
		return p.name
	}
	return "EulerSequence(invalid)"
}

// Valid reports whether s is one of the 12 sequences.
func (s EulerSequence) Valid() bool {
	_, ok := eulerTable[s]
	return ok
}

// Symmetric reports whether the first and third rotation axes of s coincide.
func (s EulerSequence) Symmetric() bool {
	return eulerTable[s].symmetric
}

// Axes returns the rotation axes of s in rotation order (0 = X, 1 = Y, 2 = Z).
func (s EulerSequence) Axes() ([3]int, error) {
	p, ok := eulerTable[s]
	if !ok {
		return [3]int{}, errors.Wrapf(ErrUnknownEulerSequence, "sequence %d", int(s))
	}
	return [3]int{int(p.name[1] - '1'), int(p.name[2] - '1'), int(p.name[3] - '1')}, nil
}

// ParseEulerSequence parses a sequence tag. It accepts the tag names ("R321"),
// bare axis digits ("321") and axis letters ("ZYX"), case-insensitively.
func ParseEulerSequence(tag string) (EulerSequence, error) {
	t := strings.ToUpper(strings.TrimSpace(tag))
	t = strings.TrimPrefix(t, "R")
	t = strings.NewReplacer("X", "1", "Y", "2", "Z", "3").Replace(t)

	for _, s := range EulerSequences {
		if eulerTable[s].name[1:] == t {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownEulerSequence, "tag %q", tag)
}

// ToEuler extracts the Euler angles (radians) of sequence seq from the DCM d.
//
// The angles are returned in rotation order: for R321 that is {yaw, pitch, roll},
// for R123 {roll, pitch, yaw}. Away from the singularities, applying them with
// EulerToDcm reproduces d.
//
// If the entry in the row of the third axis and the column of the first
// (asymmetric sequences), or the diagonal entry of the first axis (symmetric
// sequences), is below GimbalLockTolerance in magnitude, the zero triple is
// returned with a nil error. If the first and third axes line up
// exactly, those two angles are not unique and both come back as 0. An unknown
// seq returns an error wrapping ErrUnknownEulerSequence.
func ToEuler(seq EulerSequence, d Dcm) ([3]float64, error) {
	p, ok := eulerTable[seq]
	if !ok {
		return [3]float64{}, errors.Wrapf(ErrUnknownEulerSequence, "sequence %d", int(seq))
	}
	if p.symmetric {
		return eulerIJI(p, d), nil
	}
	return eulerIJK(p, d), nil
}

// eulerIJK extracts the angles of an asymmetric sequence.
func eulerIJK(p eulerParams, d Dcm) [3]float64 {
	var angles [3]float64
	i, j, k, signum := p.i, p.j, p.k, p.signum

	// Singularity check
	if math.Abs(d.At(k, i)) < GimbalLockTolerance {
		return angles
	}

	// Middle angle in [-pi/2, pi/2]
	angles[1] = math.Asin(clampUnit(-signum * d.At(k, i)))
	c2 := math.Cos(angles[1])

	angles[0] = scaledAtan2(signum*d.At(k, j), d.At(k, k), c2)
	angles[2] = scaledAtan2(signum*d.At(j, i), d.At(i, i), c2)
	return angles
}

// eulerIJI extracts the angles of a symmetric sequence.
func eulerIJI(p eulerParams, d Dcm) [3]float64 {
	var angles [3]float64
	i, j, k, signum := p.i, p.j, p.k, p.signum

	// Singularity check
	if math.Abs(d.At(i, i)) < GimbalLockTolerance {
		return angles
	}

	// Middle angle in [0, pi]
	angles[1] = math.Acos(clampUnit(d.At(i, i)))
	s2 := math.Sin(angles[1])

	angles[0] = scaledAtan2(d.At(i, j), signum*d.At(i, k), s2)
	angles[2] = scaledAtan2(d.At(j, i), -signum*d.At(k, i), s2)
	return angles
}

// scaledAtan2 returns atan2(y/div, x/div) for a non-negative div. When div
// vanishes the undivided pair is used, which has the same angle, and a pair of
// zeros (the first and third axes aligned) gives 0 whatever their signs.
func scaledAtan2(y, x, div float64) float64 {
	if div > GimbalLockTolerance {
		return math.Atan2(y/div, x/div)
	}
	if y == 0 && x == 0 {
		return 0
	}
	return math.Atan2(y, x)
}

// clampUnit coerces x to [-1,1].
func clampUnit(x float64) float64 {
	if x >= 1 {
		return 1
	} else if x <= -1 {
		return -1
	}
	return x
}

// EulerToDcm builds the DCM of the Euler angles (radians, rotation order) of sequence seq
// by applying the three axis rotations in order.
func EulerToDcm(seq EulerSequence, angles [3]float64) (Dcm, error) {
	axes, err := seq.Axes()
	if err != nil {
		return Dcm{}, err
	}

	d := IdentityDcm()
	for n, axis := range axes {
		d.rotate(axis, angles[n])
	}
	return d, nil
}

// EulerToQuaternion converts Euler angles (radians, rotation order) of sequence seq to a quaternion.
func EulerToQuaternion(seq EulerSequence, angles [3]float64) (Quaternion, error) {
	d, err := EulerToDcm(seq, angles)
	if err != nil {
		return Quaternion{}, err
	}
	return DcmToQuaternion(d), nil
}

// QuaternionToEuler converts q to Euler angles (radians, rotation order) of sequence seq.
func QuaternionToEuler(seq EulerSequence, q Quaternion) ([3]float64, error) {
	return ToEuler(seq, QuaternionToDcm(q))
}
