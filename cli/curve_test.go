package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveGolden(t *testing.T) {
	tests := []struct {
		name   string
		easing string
	}{
		{"curve_linear", "linear"},
		{"curve_in_quad", "in-quad"},
		{"curve_steps_jump_end", "steps(4)"},
		{"curve_steps_jump_none", "steps(4, jump-none)"},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCommand()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"curve", tt.easing, "--samples", "5"})

			require.NoError(t, cmd.Execute())
			g.Assert(t, tt.name, out.Bytes())
		})
	}
}

func TestCurveErrors(t *testing.T) {
	t.Run("unknown easing", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"curve", "wobbly"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("too few samples", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"curve", "linear", "-n", "1"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})
}

func TestCurveLut(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"curve", "linear", "--lut", "5"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "# lut linear\n0 0.0000\n1 0.5000\n2 1.0000\n3 0.5000\n4 0.0000\n", out.String())
}
