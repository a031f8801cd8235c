package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", home)

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writePoolConfigFixture(home, content string) error {
	configDir := filepath.Join(home, ".config", "dilemma")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, "pool.toml"), []byte(content), 0o644)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestSimulatePrintsFullLadder(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "simulate", "--steps", "500", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, stdout, "strategies: 13")
	assert.Contains(t, stdout, "matches: 500")
	for _, name := range []string{"Defector", "Collaborator", "Random 50%", "RandomFixed 90%", "TitForTat", "TitForTatS", "Mean", "Pavlov", "Grim"} {
		assert.Contains(t, stdout, name)
	}
}

func TestSimulateIsDeterministicForSeed(t *testing.T) {
	home := t.TempDir()

	first, _, err := executeCLI(t, home, "simulate", "--steps", "300", "--seed", "42")
	require.NoError(t, err)
	second, _, err := executeCLI(t, home, "simulate", "--steps", "300", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulateZeroStepsKeepsStartingRatings(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "simulate", "--steps", "0", "--starting-pts", "950")
	require.NoError(t, err)

	assert.Contains(t, stdout, "matches: 0")
	assert.Contains(t, stdout, "950")
}

func TestSimulateReadsPoolConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writePoolConfigFixture(home, `version = 1

[pool]
starting_pts = 888
`))

	stdout, _, err := executeCLI(t, home, "simulate", "--steps", "0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "888")
}

func TestSimulateFlagsOverrideConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writePoolConfigFixture(home, `[pool]
starting_pts = 888
`))

	stdout, _, err := executeCLI(t, home, "simulate", "--steps", "0", "--starting-pts", "700")
	require.NoError(t, err)
	assert.Contains(t, stdout, "700")
	assert.NotContains(t, stdout, "888")
}

func TestSimulateRejectsMalformedWeights(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "simulate", "--weights", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be in the format")
}

func TestSimulateRejectsDegenerateWeights(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "simulate", "--weights", "2,3-3,1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no advantage")
}

func TestSimulateRejectsInvertedTurnRange(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "simulate", "--min-turns", "200", "--max-turns", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below min turns")
}

func TestPlayDefectorExploitsCollaborator(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "play", "defector", "collaborator", "--turns", "50")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Defector vs Collaborator over 50 turns: +1.000")
}

func TestPlayTitForTatMirrorIsEven(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "play", "titfortat", "titfortat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "+0.000")
}

func TestPlayAcceptsParameterizedStrategies(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "play", "randomfixed:1", "grim", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RandomFixed 100% vs Grim")
}

func TestPlayRejectsUnknownStrategy(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "play", "joss", "grim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestPlayRequiresTwoStrategies(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "play", "grim")
	require.Error(t, err)
}

func TestFightRejectsZeroRefresh(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "fight", "--refresh", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1 second")
}
