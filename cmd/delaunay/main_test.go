package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateCSVSquare(t *testing.T) {
	in := "x,y\n0,0\n1,0\n0,1\n1,1\n"
	var out bytes.Buffer
	require.NoError(t, triangulateCSV(strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
}

func TestTriangulateCSVPropagatesParseError(t *testing.T) {
	var out bytes.Buffer
	err := triangulateCSV(strings.NewReader("x,y\nabc,0\n"), &out)
	assert.Error(t, err)
}

func TestTriangulateCSVPropagatesInsufficientPoints(t *testing.T) {
	var out bytes.Buffer
	err := triangulateCSV(strings.NewReader("x,y\n0,0\n"), &out)
	assert.Error(t, err)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	assert.NotNil(t, cmd.Flags().Lookup("verbose"))
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}
