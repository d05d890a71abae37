package scanner

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_String(t *testing.T) {
	c := Command{Name: "java", Args: []string{"-jar", "/tmp/my dir/dash.jar", "yarn.lock", ""}}
	assert.Equal(t, `java -jar "/tmp/my dir/dash.jar" yarn.lock ""`, c.String())
}

func TestStatus_String(t *testing.T) {
	c := Command{Name: "java", Args: []string{"-jar", "x.jar"}}

	assert.Equal(t, "java -jar x.jar exited with code 3", Status{Command: c, Code: 3}.String())
	assert.Equal(t, "java -jar x.jar was killed by signal killed", Status{Command: c, Code: -1, Signal: "killed"}.String())
	assert.True(t, Status{Command: c}.Success())
	assert.False(t, Status{Command: c, Code: -1, Signal: "killed"}.Success())
}

func TestExecRunner_LaunchFailure(t *testing.T) {
	c := Command{Name: "dashcheck-no-such-binary", Args: []string{"--flag"}}

	_, err := ExecRunner{}.Run(c)

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Contains(t, err.Error(), "dashcheck-no-such-binary --flag")
}

func TestExecRunner_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}

	var out bytes.Buffer
	status, err := ExecRunner{}.Run(Command{Name: "sh", Args: []string{"-c", "echo hi; exit 3"}, Stdout: &out})

	require.NoError(t, err)
	assert.Equal(t, 3, status.Code)
	assert.Empty(t, status.Signal)
	assert.Equal(t, "hi\n", out.String())
}

func TestExecRunner_Signal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}

	status, err := ExecRunner{}.Run(Command{Name: "sh", Args: []string{"-c", "kill -9 $$"}})

	require.NoError(t, err)
	assert.Equal(t, -1, status.Code)
	assert.Equal(t, "killed", status.Signal)
}

func TestFakeRunner(t *testing.T) {
	f := &FakeRunner{}
	status, err := f.Run(Command{Name: "true"})

	require.NoError(t, err)
	assert.True(t, status.Success())
	require.Len(t, f.Commands, 1)
	assert.Equal(t, "true", f.Commands[0].Name)
}
