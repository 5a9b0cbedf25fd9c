package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out, &errOut))
	assert.Equal(t, "strided "+version+"\n", out.String())
}

func TestRun_Layout(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"layout", "-shape", "4,3,2", "-index", "1:3, None, ..., 0"}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "shape: [4, 3, 2], stride: [6, 2, 1], offset: 0")
	assert.Contains(t, out.String(), "indexed by [1:3, None, ..., 0]:")
	assert.Contains(t, out.String(), "shape: [2, 1, 3], stride: [6, 2, 2], offset: 6")
}

func TestRun_LayoutColMajorReshape(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"layout", "-shape", "2,3", "-order", "F", "-reshape", "-1"}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "stride: [1, 2]")
	assert.Contains(t, out.String(), "reshaped without copy:")
	assert.Contains(t, out.String(), "shape: [6], stride: [1], offset: 0")
}

func TestRun_LayoutReshapeCopy(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"layout", "-shape", "4,6", "-index", ":, :3", "-reshape", "12"}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "reshape needs a copy into:")
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Error(t, run([]string{"bogus"}, &out, &errOut))
	assert.Error(t, run([]string{"layout", "-shape", "4,x"}, &out, &errOut))
	assert.Error(t, run([]string{"layout", "-shape", "4", "-order", "Z"}, &out, &errOut))
	assert.Error(t, run([]string{"layout", "-shape", "4", "-index", "5"}, &out, &errOut))
	assert.Error(t, run([]string{"layout", "-shape", "-4"}, &out, &errOut))
}
