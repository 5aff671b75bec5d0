package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// uniformCmd represents the uniform command
var uniformCmd = &cobra.Command{
	Use:   "uniform",
	Short: "Print uniform random numbers",
	Long: `Print uniform random numbers between --low and --high, For example:
  mrgrand uniform -n 3 --seed-key=5 --low=100 --high=200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSamples(cmd, false)
	},
}

// normalCmd represents the normal command
var normalCmd = &cobra.Command{
	Use:   "normal",
	Short: "Print normal random numbers",
	Long: `Print normal random numbers with --mean and --stddev, For example:
  mrgrand normal -n 4 --seed-key=5 --mean=10 --stddev=2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSamples(cmd, true)
	},
}

func runSamples(cmd *cobra.Command, normal bool) error {
	if count < 0 {
		return errors.Errorf("count %d is negative", count)
	}
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	values := make([]float64, count)
	if normal {
		gen.NormalAt(values)
	} else {
		gen.UniformAt(values)
	}

	out := cmd.OutOrStdout()
	return writeValues(out, values, precision, isTerminal(out))
}

func init() {
	rootCmd.AddCommand(uniformCmd)
	rootCmd.AddCommand(normalCmd)

	addSampleFlags(uniformCmd)
	addSampleFlags(normalCmd)
}
