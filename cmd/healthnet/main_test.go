package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(fs afero.Fs, script string, vars map[string]string) (environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return environment{
		fs:     fs,
		stdin:  strings.NewReader(script),
		stdout: &stdout,
		stderr: &stderr,
		lookup: func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		},
	}, &stdout, &stderr
}

func TestRun_CreatesFilesAndExits(t *testing.T) {
	fs := afero.NewMemMapFs()
	env, stdout, stderr := testEnv(fs, "0\n", map[string]string{"HEALTHNET_DATA_DIR": "/data"})

	require.NoError(t, run([]string{"-env", ""}, env))
	assert.Contains(t, stdout.String(), "Exiting program...")
	assert.Contains(t, stderr.String(), "network loaded")
	assert.Contains(t, stderr.String(), "run=")

	for _, name := range []string{"/data/health_centers.csv", "/data/connections.csv"} {
		ok, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestRun_Demo(t *testing.T) {
	fs := afero.NewMemMapFs()
	env, stdout, _ := testEnv(fs, "16\n0\n", map[string]string{"HEALTHNET_DATA_DIR": "/data"})

	require.NoError(t, run([]string{"-env", "", "-demo", "-seed", "7"}, env))
	assert.Contains(t, stdout.String(), "Connected components: 1")

	data, err := afero.ReadFile(fs, "/data/health_centers.csv")
	require.NoError(t, err)
	assert.Equal(t, 13, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "Health Center 12")
}

func TestRun_ConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/healthnet.yaml", []byte(
		"data_dir: /srv\ncenters_file: hc.csv\nlog:\n  level: debug\n  format: json\n"), 0o644))
	env, _, stderr := testEnv(fs, "", nil)

	require.NoError(t, run([]string{"-env", "", "-config", "/etc/healthnet.yaml"}, env))
	assert.Contains(t, stderr.String(), `"msg":"network loaded"`)
	ok, err := afero.Exists(fs, "/srv/hc.csv")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRun_BadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("log:\n  level: loud\n"), 0o644))
	env, _, _ := testEnv(fs, "", nil)

	assert.Error(t, run([]string{"-env", "", "-config", "/bad.yaml"}, env))
	assert.Error(t, run([]string{"-nope"}, env))
}
