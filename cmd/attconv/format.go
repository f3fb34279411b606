package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/knei-knurow/attmath"
)

// parseNumbers parses exactly n numbers from args. Each argument may hold
// several comma separated numbers.
func parseNumbers(args []string, n int) ([]float64, error) {
	var out []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid number %q", field)
			}
			out = append(out, v)
		}
	}
	if len(out) != n {
		return nil, errors.Errorf("expected %d numbers, got %d", n, len(out))
	}
	return out, nil
}

func (o *rootOpts) parseDcm(args []string, tol float64) (attmath.Dcm, error) {
	v, err := parseNumbers(args, 9)
	if err != nil {
		return attmath.Dcm{}, err
	}
	m := attmath.MatrixFromArray([3][3]float64{
		{v[0], v[1], v[2]},
		{v[3], v[4], v[5]},
		{v[6], v[7], v[8]},
	})
	if tol <= 0 {
		return attmath.NewDcm(m), nil
	}
	return attmath.NewDcmChecked(m, tol)
}

func (o *rootOpts) parseQuaternion(args []string) (attmath.Quaternion, error) {
	v, err := parseNumbers(args, 4)
	if err != nil {
		return attmath.Quaternion{}, err
	}
	return attmath.NewQuaternion(v[0], v[1], v[2], v[3]), nil
}

// parseAngles parses 3 angles and converts them to radians if needed.
func (o *rootOpts) parseAngles(args []string) ([3]float64, error) {
	v, err := parseNumbers(args, 3)
	if err != nil {
		return [3]float64{}, err
	}
	angles := [3]float64{v[0], v[1], v[2]}
	if o.cfg.Degrees {
		angles = attmath.Radians(angles)
	}
	return angles, nil
}

func (o *rootOpts) format(v float64) string {
	return strconv.FormatFloat(v, 'f', o.cfg.Precision, 64)
}

func (o *rootOpts) printRow(w io.Writer, values ...float64) error {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = o.format(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, " "))
	return err
}

func (o *rootOpts) printQuaternion(w io.Writer, q attmath.Quaternion) error {
	return o.printRow(w, q.Q1, q.Q2, q.Q3, q.Q4)
}

func (o *rootOpts) printDcm(w io.Writer, d attmath.Dcm) error {
	a := d.Array()
	for _, row := range a {
		if err := o.printRow(w, row[:]...); err != nil {
			return err
		}
	}
	return nil
}

func (o *rootOpts) printAngles(w io.Writer, angles [3]float64) error {
	if o.cfg.Degrees {
		angles = attmath.Degrees(angles)
	}
	return o.printRow(w, angles[:]...)
}
