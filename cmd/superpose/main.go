// Package main provides the superpose CLI: minimal RMSD between two
// XYZ structure files, with optional reordering, reflection search and
// transformed-structure output.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/torvik/superpose/align"
	"github.com/torvik/superpose/reorder"
	"github.com/torvik/superpose/rotate"
	"github.com/torvik/superpose/xyz"
)

// fileConfig holds YAML-file defaults. Flags given explicitly on the
// command line take precedence over these; these take precedence over
// the built-in defaults.
type fileConfig struct {
	Rotation                 string `yaml:"rotation"`
	Reorder                  bool   `yaml:"reorder"`
	ReorderMethod            string `yaml:"reorder-method"`
	UseReflections           bool   `yaml:"use-reflections"`
	UseReflectionsKeepStereo bool   `yaml:"use-reflections-keep-stereo"`
	Workers                  int    `yaml:"workers"`
}

type cliOptions struct {
	rotation      string
	reorder       bool
	reorderMethod string
	reflections   bool
	keepStereo    bool
	print         bool
	configPath    string
	workers       int
}

func newRootCmd() *cobra.Command {
	var o cliOptions

	cmd := &cobra.Command{
		Use:   "superpose FILE_A FILE_B",
		Short: "Minimal RMSD between two XYZ structures",
		Long: `superpose computes the minimal root-mean-square deviation between two
labeled structures in XYZ format (plain or gzipped), optimally rotating
and optionally reordering the second structure onto the first.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigFile(cmd, &o); err != nil {
				return err
			}
			return run(cmd, o, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&o.rotation, "rotation", "kabsch", "rotation method: kabsch, quaternion or none")
	cmd.Flags().BoolVar(&o.reorder, "reorder", false, "align atom order (can be expensive for large structures)")
	cmd.Flags().StringVar(&o.reorderMethod, "reorder-method", "hungarian", "reorder method: hungarian, inertia-hungarian, brute, distance or qml")
	cmd.Flags().BoolVar(&o.reflections, "use-reflections", false, "search axis swaps and reflections of the second structure")
	cmd.Flags().BoolVar(&o.keepStereo, "use-reflections-keep-stereo", false, "search only stereochemistry-preserving transforms")
	cmd.Flags().BoolVar(&o.print, "print", false, "print the superposed second structure as XYZ instead of the RMSD")
	cmd.Flags().StringVar(&o.configPath, "config", "", "YAML file with default option values")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "parallel workers for the reflection search (0 = sequential)")

	return cmd
}

// applyConfigFile loads --config and fills in every option the user
// did not set on the command line.
func applyConfigFile(cmd *cobra.Command, o *cliOptions) error {
	if o.configPath == "" {
		return nil
	}
	raw, err := os.ReadFile(o.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("config: %s: %w", o.configPath, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("rotation") && fc.Rotation != "" {
		o.rotation = fc.Rotation
	}
	if !flags.Changed("reorder") {
		o.reorder = o.reorder || fc.Reorder
	}
	if !flags.Changed("reorder-method") && fc.ReorderMethod != "" {
		o.reorderMethod = fc.ReorderMethod
	}
	if !flags.Changed("use-reflections") {
		o.reflections = o.reflections || fc.UseReflections
	}
	if !flags.Changed("use-reflections-keep-stereo") {
		o.keepStereo = o.keepStereo || fc.UseReflectionsKeepStereo
	}
	if !flags.Changed("workers") && fc.Workers != 0 {
		o.workers = fc.Workers
	}
	return nil
}

func run(cmd *cobra.Command, o cliOptions, pathA, pathB string) error {
	rotation, err := rotate.ParseMethod(o.rotation)
	if err != nil {
		return err
	}
	reorderMethod, err := reorder.ParseMethod(o.reorderMethod)
	if err != nil {
		return err
	}

	p, err := xyz.ReadFile(pathA)
	if err != nil {
		return err
	}
	q, err := xyz.ReadFile(pathB)
	if err != nil {
		return err
	}

	res, err := align.Compute(p, q, align.Options{
		Rotation:                 rotation,
		Reorder:                  o.reorder,
		ReorderMethod:            reorderMethod,
		UseReflections:           o.reflections,
		UseReflectionsKeepStereo: o.keepStereo,
		WantTransformed:          o.print,
		Workers:                  o.workers,
	})
	if err != nil {
		if errors.Is(err, align.ErrUnordered) {
			return fmt.Errorf("%w\n\nuse --reorder to align the atoms (can be expensive for large structures)", err)
		}
		return err
	}

	if o.print {
		return xyz.Write(cmd.OutOrStdout(), *res.Transformed, pathB+" - modified")
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.RMSD)
	return nil
}

// exitCode maps error classes to shell exit statuses: 2 for option or
// input-file problems the user can correct in the invocation, 1 for
// everything else.
func exitCode(err error) int {
	switch {
	case errors.Is(err, rotate.ErrUnsupportedMethod),
		errors.Is(err, reorder.ErrUnsupportedMethod),
		errors.Is(err, xyz.ErrBadHeader),
		errors.Is(err, xyz.ErrBadAtomLine),
		errors.Is(err, xyz.ErrUnknownElement),
		errors.Is(err, xyz.ErrTruncated):
		return 2
	default:
		return 1
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}
