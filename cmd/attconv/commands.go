package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/knei-knurow/attmath"
	"github.com/knei-knurow/attmath/internal/config"
)

const defaultDcmTolerance = 1e-6

func newDcm2QuatCommand(opts *rootOpts) *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "dcm2quat M11 M12 M13 M21 M22 M23 M31 M32 M33",
		Short: "Convert a DCM to a quaternion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.parseDcm(args, tol)
			if err != nil {
				return err
			}
			q := d.ToQuaternion()
			klog.V(2).InfoS("Converted DCM to quaternion", "dcm", d, "quaternion", q)
			return opts.printQuaternion(cmd.OutOrStdout(), q)
		},
	}
	cmd.Flags().Float64Var(&tol, "tolerance", defaultDcmTolerance, "Orthonormality tolerance of the input, 0 disables the check")
	return cmd
}

func newQuat2DcmCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "quat2dcm Q1 Q2 Q3 Q4",
		Short: "Convert a quaternion (normalised first) to a DCM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.parseQuaternion(args)
			if err != nil {
				return err
			}
			d := q.ToDcm()
			klog.V(2).InfoS("Converted quaternion to DCM", "quaternion", q, "dcm", d)
			return opts.printDcm(cmd.OutOrStdout(), d)
		},
	}
}

func newDcm2EulerCommand(opts *rootOpts) *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "dcm2euler M11 M12 M13 M21 M22 M23 M31 M32 M33",
		Short: "Extract the Euler angles of the selected sequence from a DCM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.parseDcm(args, tol)
			if err != nil {
				return err
			}
			angles, err := d.ToEuler(opts.seq)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Converted DCM to Euler angles", "sequence", opts.seq, "dcm", d, "angles", angles)
			return opts.printAngles(cmd.OutOrStdout(), angles)
		},
	}
	cmd.Flags().Float64Var(&tol, "tolerance", defaultDcmTolerance, "Orthonormality tolerance of the input, 0 disables the check")
	return cmd
}

func newEuler2DcmCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "euler2dcm A1 A2 A3",
		Short: "Build the DCM of Euler angles of the selected sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angles, err := opts.parseAngles(args)
			if err != nil {
				return err
			}
			d, err := attmath.EulerToDcm(opts.seq, angles)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Converted Euler angles to DCM", "sequence", opts.seq, "angles", angles, "dcm", d)
			return opts.printDcm(cmd.OutOrStdout(), d)
		},
	}
}

func newEuler2QuatCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "euler2quat A1 A2 A3",
		Short: "Convert Euler angles of the selected sequence to a quaternion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angles, err := opts.parseAngles(args)
			if err != nil {
				return err
			}
			q, err := attmath.EulerToQuaternion(opts.seq, angles)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Converted Euler angles to quaternion", "sequence", opts.seq, "angles", angles, "quaternion", q)
			return opts.printQuaternion(cmd.OutOrStdout(), q)
		},
	}
}

func newQuat2EulerCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "quat2euler Q1 Q2 Q3 Q4",
		Short: "Convert a quaternion to Euler angles of the selected sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := opts.parseQuaternion(args)
			if err != nil {
				return err
			}
			angles, err := attmath.QuaternionToEuler(opts.seq, q)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("Converted quaternion to Euler angles", "sequence", opts.seq, "quaternion", q, "angles", angles)
			return opts.printAngles(cmd.OutOrStdout(), angles)
		},
	}
}

func newRotCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "rot AXIS ANGLE",
		Short: "Build the DCM of a single axis rotation (AXIS is x, y, z or 1, 2, 3)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseNumbers(args[1:], 1)
			if err != nil {
				return err
			}
			angle := v[0]
			if opts.cfg.Degrees {
				angle *= attmath.Deg2Rad
			}

			var d attmath.Dcm
			switch strings.ToLower(args[0]) {
			case "x", "1":
				d = attmath.RotationX(angle, opts.rmod)
			case "y", "2":
				d = attmath.RotationY(angle, opts.rmod)
			case "z", "3":
				d = attmath.RotationZ(angle, opts.rmod)
			default:
				return errors.Errorf("invalid axis %q", args[0])
			}
			klog.V(2).InfoS("Built single axis rotation", "axis", args[0], "angle", angle, "mode", opts.rmod, "dcm", d)
			return opts.printDcm(cmd.OutOrStdout(), d)
		},
	}
}

func newRandomCommand(opts *rootOpts) *cobra.Command {
	var euler bool

	cmd := &cobra.Command{
		Use:   "random [COUNT]",
		Short: "Print uniformly distributed random rotation quaternions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return errors.Errorf("invalid count %q", args[0])
				}
				count = n
			}

			g := attmath.NewGaussian(opts.cfg.Seed, 0, 1)
			for i := 0; i < count; i++ {
				q := attmath.RandomQuaternion(g)
				if !euler {
					if err := opts.printQuaternion(cmd.OutOrStdout(), q); err != nil {
						return err
					}
					continue
				}
				angles, err := attmath.QuaternionToEuler(opts.seq, q)
				if err != nil {
					return err
				}
				if err := opts.printAngles(cmd.OutOrStdout(), angles); err != nil {
					return err
				}
			}
			klog.V(2).InfoS("Generated random rotations", "count", count, "seed", opts.cfg.Seed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&euler, "euler", false, "Print Euler angles of the selected sequence instead of quaternions")
	return cmd
}

func newConfigCommand(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage config files",
	}
	cmd.AddCommand(newConfigWriteCommand(opts))
	return cmd
}

func newConfigWriteCommand(opts *rootOpts) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "write PATH",
		Short: "Write the effective settings (config file and flags applied) as a YAML config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if defaults {
				cfg = config.Default()
			}
			if err := cfg.Write(args[0]); err != nil {
				return err
			}
			klog.V(2).InfoS("Wrote config", "path", args[0], "defaults", defaults)
			return nil
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Write the built-in defaults instead")
	return cmd
}
