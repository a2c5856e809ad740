package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberlink/builder"
	"github.com/katalvlaran/numberlink/location"
	"github.com/katalvlaran/numberlink/shape"
)

func TestParseLocationAcceptsPlainPair(t *testing.T) {
	loc, err := parseLocation("2,3")
	require.NoError(t, err)
	assert.Equal(t, location.New(2, 3), loc)
}

func TestParseLocationRejectsMissingComma(t *testing.T) {
	_, err := parseLocation("23")
	assert.Error(t, err)
}

func TestParseDirectionIsCaseInsensitive(t *testing.T) {
	d, err := parseDirection("Up")
	require.NoError(t, err)
	assert.Equal(t, shape.Up, d)
}

func TestParseDirectionRejectsUnknown(t *testing.T) {
	_, err := parseDirection("sideways")
	assert.Error(t, err)
}

func TestApplyPuzzleBuildsTerminiWallAndHole(t *testing.T) {
	puzzle := strings.Join([]string{
		"# comment lines and blanks are ignored",
		"",
		"termini A 0,0 2,0",
		"wall 1,1 2,1",
		"hole 1,1",
	}, "\n")

	dims, err := location.NewDimension(3, 2)
	require.NoError(t, err)
	b := builder.NewSquare(dims)
	require.NoError(t, applyPuzzle(b, strings.NewReader(puzzle)))
	assert.Empty(t, b.IsValid())
}

func TestApplyPuzzleRejectsUnknownDirective(t *testing.T) {
	dims, err := location.NewDimension(3, 2)
	require.NoError(t, err)
	b := builder.NewSquare(dims)
	err = applyPuzzle(b, strings.NewReader("teleport 0,0"))
	assert.Error(t, err)
}

func TestRunEndToEndSolvesStraightLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte("termini A 0,0 2,0\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-w", "3", "-h", "1", "-file", path}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "AaA\n", stdout.String())
}
