package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	version, goVersion := buildVersions()

	output := out.String()
	assert.Contains(t, output, "myspec version "+version+"\n")
	assert.Contains(t, output, "go version "+goVersion+"\n")
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestBuildVersions(t *testing.T) {
	version, goVersion := buildVersions()

	assert.NotEmpty(t, version)
	assert.NotEmpty(t, goVersion)
}
