package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/footballteam/internal/config"
	"github.com/katalvlaran/footballteam/roster"
	"github.com/katalvlaran/footballteam/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree with stdin and args, returning what was
// written to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newApp().command()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_Solve(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty roster", "0\n", "0\n\n"},
		{"single", "1\n5\n", "5\n1\n"},
		{"all equal", "3\n4 4 4\n", "12\n1 2 3\n"},
		{"ascending", "5\n1 2 3 4 5\n", "14\n2 3 4 5\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := run(t, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
			assert.Empty(t, errOut, "default run keeps stderr quiet")
		})
	}
}

func TestRootCommand_MalformedInput(t *testing.T) {
	out, _, err := run(t, "3\n1 2\n")
	assert.ErrorIs(t, err, roster.ErrShortInput)
	assert.Empty(t, out)

	_, _, err = run(t, "two\n1 2\n")
	assert.ErrorIs(t, err, roster.ErrBadCount)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, _, err := run(t, "0\n", "extra")
	assert.Error(t, err)
}

func TestRootCommand_StatsJSON(t *testing.T) {
	out, errOut, err := run(t, "5\n1 2 3 4 5\n", "--stats", "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, "14\n2 3 4 5\n", out, "stats never touch stdout")
	assert.Contains(t, errOut, `"msg":"team summary"`)
	assert.Contains(t, errOut, `"mean":3.5`)
	assert.Contains(t, errOut, `"size":4`)
}

func TestRootCommand_StatsOnEmptyRoster(t *testing.T) {
	out, errOut, err := run(t, "0\n", "--stats")
	require.NoError(t, err)
	assert.Equal(t, "0\n\n", out)
	assert.Contains(t, errOut, "no team summary")
}

func TestRootCommand_DebugFromEnv(t *testing.T) {
	t.Setenv("FOOTBALLTEAM_LOG_LEVEL", "debug")

	_, errOut, err := run(t, "2\n1 1\n")
	require.NoError(t, err)
	assert.Contains(t, errOut, "roster loaded")
	assert.Contains(t, errOut, "team selected")
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "0\n", "--log-level", "loud")
	var verrs config.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestRootCommand_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("4\n8 1 5 6\n"), 0o644))

	stdout, _, err := run(t, "", "--input", in, "--output", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "19\n1 3 4\n", string(got))

	_, _, err = run(t, "", "--input", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footballteam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  stats: true\n"), 0o644))

	out, errOut, err := run(t, "3\n4 4 4\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "12\n1 2 3\n", out)
	assert.Contains(t, errOut, "team summary")
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := run(t, "", "generate", "--count", "3", "--min", "7", "--max", "7")
	require.NoError(t, err)
	assert.Equal(t, "3\n7 7 7\n", out)

	_, _, err = run(t, "", "generate", "--min", "5", "--max", "1")
	var verrs config.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

// TestGenerateThenSolve pipes a generated roster back into the solver.
func TestGenerateThenSolve(t *testing.T) {
	generated, _, err := run(t, "", "generate", "-n", "60", "--seed", "17", "--min", "1", "--max", "100")
	require.NoError(t, err)

	players, err := roster.Read(strings.NewReader(generated))
	require.NoError(t, err)
	require.Len(t, players, 60)

	var want bytes.Buffer
	require.NoError(t, roster.Write(&want, team.SelectMaximalTeam(players)))

	out, _, err := run(t, generated)
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)
}

func TestVerifyCommand(t *testing.T) {
	out, errOut, err := run(t, "5\n1 2 3 4 5\n", "verify")
	require.NoError(t, err)
	assert.Equal(t, "14\n2 3 4 5\n", out)
	assert.Contains(t, errOut, "totals agree")

	out, _, err = run(t, "2\n-5 -3\n", "verify")
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Empty(t, out)
}

func TestOpenInput_Dash(t *testing.T) {
	fallback := strings.NewReader("x")
	r, closeFn, err := openInput("-", fallback)
	require.NoError(t, err)
	assert.Same(t, io.Reader(fallback), r)
	assert.NoError(t, closeFn())
}
