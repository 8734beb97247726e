package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := bytes.Buffer{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBoards(t *testing.T) {
	out, err := run(t, "boards")
	require.NoError(t, err)
	assert.Contains(t, out, "uno (16MHz)")
	assert.Contains(t, out, "mega2560 (16MHz)")
	assert.Contains(t, out, "rpi")

	out, err = run(t, "boards", "uno")
	require.NoError(t, err)
	assert.Contains(t, out, "PORTD.5")
	assert.Contains(t, out, "PORTB.5")

	_, err = run(t, "boards", "zx81")
	assert.Error(t, err)
}

func TestTiming(t *testing.T) {
	out, err := run(t, "timing", "--board", "uno")
	require.NoError(t, err)
	assert.Contains(t, out, "clock:  16MHz")
	assert.Contains(t, out, "cycles:")
}

func TestShowSim(t *testing.T) {
	out, err := run(t, "show", "--board", "uno", "--pin", "5", "--pixels", "3", "--set", "0=ff0000", "--set", "2=#0000ff")
	require.NoError(t, err)
	assert.Equal(t, "ff0000 000000 0000ff\n", out)
}

func TestShowFillShift(t *testing.T) {
	out, err := run(t, "show", "--pin", "5", "--pixels", "3", "--set", "0=010203", "--frames", "3", "--shift")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"010203 000000 000000",
		"000000 010203 000000",
		"000000 000000 010203",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestShowOff(t *testing.T) {
	out, err := run(t, "show", "--pin", "5", "--pixels", "2", "--fill", "ffffff", "--off")
	require.NoError(t, err)
	assert.Equal(t, "000000 000000\n", out)
}

func TestShowErrors(t *testing.T) {
	_, err := run(t, "show", "--fill", "red")
	assert.Error(t, err)
	_, err = run(t, "show", "--set", "1:ff0000")
	assert.Error(t, err)
	_, err = run(t, "show", "--board", "uno", "--pin", "99")
	assert.Error(t, err, "pin not on board")
}

func TestShowConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.toml")
	require.NoError(t, os.WriteFile(path, []byte("platform = \"sim\"\nboard = \"mega2560\"\npin = 13\npixels = 1\n"), 0o644))
	out, err := run(t, "show", "--config", path, "--fill", "00ff00")
	require.NoError(t, err)
	assert.Equal(t, "00ff00\n", out)
}

func TestShowDebug(t *testing.T) {
	out, err := run(t, "show", "--pin", "5", "--pixels", "1", "--debug")
	require.NoError(t, err)
	assert.Contains(t, out, "Derived delay constants")
	assert.Contains(t, out, "000000\n")
}
