package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/knei-knurow/attmath"
	"github.com/knei-knurow/attmath/internal/config"
)

type rootOpts struct {
	configPath string
	sequence   string
	degrees    bool
	precision  int
	mode       string
	seed       uint64

	// Resolved settings, valid once PersistentPreRunE has run
	cfg  config.Config
	seq  attmath.EulerSequence
	rmod attmath.RotationMode
}

func newRootCommand() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "attconv",
		Short: "Convert between attitude representations",
		Long: `Convert between direction cosine matrices, quaternions and Euler angles.

Quaternions are written q1 q2 q3 q4 with q4 the scalar part. DCMs are
written as 9 numbers in row-major order. Euler angles are written in
rotation order of the selected sequence.

Numbers may be given as separate arguments or comma separated. Put -- before
the first argument if it is negative.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.Flags())
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&opts.sequence, "seq", "", "Euler sequence (R321, 321 or zyx style, default R321)")
	fs.BoolVar(&opts.degrees, "degrees", true, "Read and print angles in degrees")
	fs.IntVar(&opts.precision, "precision", 15, "Number of decimals printed")
	fs.StringVar(&opts.mode, "mode", "", "Rotation mode of single axis rotations: coordinate or vector (default coordinate)")
	fs.Uint64Var(&opts.seed, "seed", 1, "Seed of the random rotation generator")

	cmd.AddCommand(
		newDcm2QuatCommand(opts),
		newQuat2DcmCommand(opts),
		newDcm2EulerCommand(opts),
		newEuler2DcmCommand(opts),
		newEuler2QuatCommand(opts),
		newQuat2EulerCommand(opts),
		newRotCommand(opts),
		newRandomCommand(opts),
		newConfigCommand(opts),
	)
	return cmd
}

// resolve builds the effective configuration from the defaults, the config
// file and the flags that were set explicitly, in increasing priority.
func (o *rootOpts) resolve(fs *pflag.FlagSet) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
		klog.V(2).InfoS("Loaded config", "path", o.configPath)
	}

	flags := config.Flags{Sequence: o.sequence, Mode: o.mode}
	if fs.Changed("degrees") {
		flags.Degrees = &o.degrees
	}
	if fs.Changed("precision") {
		flags.Precision = &o.precision
	}
	if fs.Changed("seed") {
		flags.Seed = &o.seed
	}
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validate guarantees both parse
	o.cfg = cfg
	o.seq, _ = cfg.EulerSequence()
	o.rmod, _ = cfg.RotationMode()

	klog.V(2).InfoS("Resolved config", "sequence", o.seq, "degrees", cfg.Degrees, "precision", cfg.Precision, "mode", o.rmod, "seed", cfg.Seed)
	return nil
}
