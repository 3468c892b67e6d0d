package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/util"
)

// NewCurveCommand creates the curve command.
func NewCurveCommand(rootOpts *RootOptions) *cobra.Command {
	var samples, lut int

	cmd := &cobra.Command{
		Use:   "curve <easing>",
		Short: "Print an easing curve",
		Long: `Samples an easing at evenly spaced progress ratios and prints one
"progress value" pair per line.

Example:
  ledtween curve in-out-quad
  ledtween curve "steps(4, jump-none)" --samples 9
  ledtween curve out-sine --lut 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := easing.Parse(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid easing", err)
			}
			if lut > 0 {
				return writeLut(cmd.OutOrStdout(), e, lut)
			}
			return writeCurve(cmd.OutOrStdout(), e, samples)
		},
	}

	cmd.Flags().IntVarP(&samples, "samples", "n", 11, "number of samples")
	cmd.Flags().IntVar(&lut, "lut", 0, "print a rise-and-fall gain table of this length instead")

	return cmd
}

func writeCurve(w io.Writer, e easing.Easing, samples int) error {
	if samples < 2 {
		return NewExitError(ExitCommandError, fmt.Sprintf("need at least 2 samples, got %d", samples))
	}
	if _, err := fmt.Fprintf(w, "# %s\n", e); err != nil {
		return err
	}
	values := util.SampleEasing(e, samples)
	for i, v := range values {
		progress := float64(i) / float64(samples-1)
		if _, err := fmt.Fprintf(w, "%.2f %.4f\n", progress, v); err != nil {
			return err
		}
	}
	return nil
}

func writeLut(w io.Writer, e easing.Easing, length int) error {
	if _, err := fmt.Fprintf(w, "# lut %s\n", e); err != nil {
		return err
	}
	for i, v := range util.GenerateLut(length, e) {
		if _, err := fmt.Fprintf(w, "%d %.4f\n", i, v); err != nil {
			return err
		}
	}
	return nil
}
