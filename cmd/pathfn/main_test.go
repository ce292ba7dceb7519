package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainCmd_help(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: testWriter(t),
		Stderr: testWriter(t),
	}).Run([]string{"-h"})
	assert.Zero(t, exitCode, "-h should have zero status code")
}

func TestMainCmd_version(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &buff,
		Stderr: testWriter(t),
	}).Run([]string{"-version"})
	assert.Zero(t, exitCode, "-version should have zero status code")

	assert.Contains(t, buff.String(), "pathfn")
	assert.Contains(t, buff.String(), _version)
}

func TestMainCmd_unknownFlag(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: testWriter(t),
		Stderr: testWriter(t),
	}).Run([]string{"--this-flag-does-not-exist"})
	assert.Equal(t, exitUsage, exitCode)
}

func TestMainCmd_noCommand(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: testWriter(t),
		Stderr: testWriter(t),
	}).Run(nil)
	assert.Equal(t, exitUsage, exitCode)
}

func TestMainCmd_basename(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &buff,
		Stderr: testWriter(t),
	}).Run([]string{"basename", "a/b/c", "file.txt", "a/b/"})
	assert.Equal(t, exitMatch, exitCode)
	assert.Equal(t, "c\nfile.txt\n\n", buff.String())
}

func TestMainCmd_under(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc     string
		dir      string
		path     string
		want     string
		wantCode int
	}{
		{
			desc:     "under",
			dir:      "/a",
			path:     "/a/b",
			want:     "true\n",
			wantCode: exitMatch,
		},
		{
			desc:     "same path",
			dir:      "/a",
			path:     "/a",
			want:     "false\n",
			wantCode: exitNoMatch,
		},
		{
			desc:     "sibling prefix",
			dir:      "/a",
			path:     "/ab/c",
			want:     "false\n",
			wantCode: exitNoMatch,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			exitCode := (&mainCmd{
				Stdout: &buff,
				Stderr: testWriter(t),
			}).Run([]string{"under", tt.dir, tt.path})
			assert.Equal(t, tt.wantCode, exitCode)
			assert.Equal(t, tt.want, buff.String())
		})
	}
}

func TestMainCmd_debugToFile(t *testing.T) {
	t.Parallel()

	logfile := filepath.Join(t.TempDir(), "debug.log")
	exitCode := (&mainCmd{
		Stdout: testWriter(t),
		Stderr: testWriter(t),
	}).Run([]string{"-debug=" + logfile, "under", "/a", "/a/b"})
	assert.Equal(t, exitMatch, exitCode)

	got, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(got), `isUnderDir("/a", "/a/b") = 1`)
}

func TestMainCmd_debugEnv(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("PATHFN_DEBUG", logfile)

	exitCode := (&mainCmd{
		Stdout: testWriter(t),
		Stderr: testWriter(t),
	}).Run([]string{"basename", "a/b/c"})
	assert.Equal(t, exitMatch, exitCode)

	got, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(got), `basename("a/b/c") = "c"`)
}

// testWriter builds an io.Writer that logs to the given testing.TB.
func testWriter(t testing.TB) *testLogWriter {
	return &testLogWriter{t}
}

type testLogWriter struct{ t testing.TB }

func (w *testLogWriter) Write(b []byte) (int, error) {
	w.t.Logf("%s", bytes.TrimSuffix(b, []byte("\n")))
	return len(b), nil
}
