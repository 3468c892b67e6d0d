package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	Step     float64
	MaxSteps int
	Pixels   []int
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Step the configured scene offline and print pixel colours",
		Long: `Plays the configured scene without a broker, advancing it by a fixed
step and printing the hex colour of the selected pixels after every step.
Tracing ends when the scene completes or after --max-steps steps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := stream.LoadConfig(rootOpts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			return runTrace(cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Step, "step", 0, "seconds per step (default one frame)")
	cmd.Flags().IntVar(&opts.MaxSteps, "max-steps", 1000, "maximum number of steps")
	cmd.Flags().IntSliceVarP(&opts.Pixels, "pixel", "p", []int{0}, "pixels to print")

	return cmd
}

func runTrace(w io.Writer, cfg stream.Config, opts *TraceOptions) error {
	step := opts.Step
	if step == 0 {
		step = 1 / cfg.Stream.FrameRate
	}
	if !(step > 0) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid step %v", opts.Step))
	}
	for _, p := range opts.Pixels {
		if p < 0 || p >= cfg.Stream.Pixels {
			return NewExitError(ExitCommandError, fmt.Sprintf("pixel %d out of range", p))
		}
	}

	scene, err := stream.BuildScene(cfg.Scene, cfg.Stream.Pixels, tween.WithLogger(slog.Default()))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build scene", err)
	}

	printFrame(w, 0, scene.CalculateFrame(), opts.Pixels)
	for i := 1; i <= opts.MaxSteps; i++ {
		scene.Update(step)
		printFrame(w, float64(i)*step, scene.CalculateFrame(), opts.Pixels)

		select {
		case <-scene.Done():
			slog.Debug("scene complete", "steps", i)
			return nil
		default:
		}
	}
	scene.Sequence().Stop(false)
	return nil
}

func printFrame(w io.Writer, t float64, f *stream.Frame, pixels []int) {
	fmt.Fprintf(w, "%.3f %s\n", t, strings.Join(f.Hex(pixels...), " "))
}
