package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, ctx context.Context, environ map[string]string, args ...string) result {
	t.Helper()
	if environ == nil {
		environ = map[string]string{}
	}
	var stdout, stderr bytes.Buffer
	code := run(ctx, append([]string{"/usr/bin/fsmdemo"}, args...), environ, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	res := runWith(t, context.Background(), nil, "-d", "0")
	assert.Equal(t, exitSuccess, res.code)
	assert.Equal(t, "a called\nb called\nc called\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestRun_FSMVerbose(t *testing.T) {
	t.Parallel()

	res := runWith(t, context.Background(), nil, "-V", "-d", "0")
	require.Equal(t, exitSuccess, res.code)

	out := res.stdout
	for _, pair := range [][2]string{{"INIT", "A"}, {"A", "B"}, {"B", "C"}} {
		assert.Equal(t, 1, strings.Count(out, "fsm will change from "+pair[0]+" to "+pair[1]+"\n"))
		assert.Equal(t, 1, strings.Count(out, "fsm did change from "+pair[0]+" to "+pair[1]+"\n"))
	}
	assert.NotContains(t, out, "can't change")
	assert.Equal(t, 3, strings.Count(out, " called\n"))
}

func TestRun_NameFromEnvironment(t *testing.T) {
	t.Parallel()

	res := runWith(t, context.Background(), map[string]string{"FSMDEMO_NAME": "demo"}, "-V", "-d", "0")
	require.Equal(t, exitSuccess, res.code)
	assert.Contains(t, res.stdout, "demo will change from INIT to A")
}

func TestRun_Verbose(t *testing.T) {
	t.Parallel()

	res := runWith(t, context.Background(), nil, "-v", "-d", "0")
	require.Equal(t, exitSuccess, res.code)
	assert.Equal(t, "a called\nb called\nc called\n", res.stdout)
	assert.Contains(t, res.stderr, "msg=transition")
	assert.Contains(t, res.stderr, "run_id=")
	assert.Contains(t, res.stderr, `msg="run complete"`)
	assert.NotContains(t, res.stderr, "Usage:")
}

func TestRun_JSONLogs(t *testing.T) {
	t.Parallel()

	res := runWith(t, context.Background(), map[string]string{"FSMDEMO_LOG_FORMAT": "json"}, "-v", "-d", "0")
	require.Equal(t, exitSuccess, res.code)
	assert.Contains(t, res.stderr, `"msg":"transition"`)
}

func TestRun_DelayUnit(t *testing.T) {
	t.Parallel()

	start := time.Now()
	res := runWith(t, context.Background(), map[string]string{"FSMDEMO_DELAY_UNIT": "2ms"}, "-d", "3")
	require.Equal(t, exitSuccess, res.code)
	assert.GreaterOrEqual(t, time.Since(start), 18*time.Millisecond)
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"help", []string{"-h"}, ""},
		{"help with delay", []string{"-d", "1", "-h"}, ""},
		{"help with bad delay", []string{"-h", "-d", "abc"}, ""},
		{"missing delay", nil, "The delay is required."},
		{"only verbose", []string{"-v", "-V"}, "The delay is required."},
		{"negative delay", []string{"-d", "-1"}, "The delay must be a non-negative integer."},
		{"non-numeric delay", []string{"-d", "abc"}, "The delay must be a non-negative integer."},
		{"empty delay", []string{"-d", ""}, "Option '-d' requires a non-empty value."},
		{"duplicate delay", []string{"-d", "1", "-d", "1"}, "Option '-d' specified more than once."},
		{"duplicate different values", []string{"-d", "1", "-d", "abc"}, "Option '-d' specified more than once."},
		{"positional", []string{"-d", "1", "extra"}, "Unexpected argument: extra"},
		{"positionals", []string{"one", "-d", "1", "two"}, "Unexpected arguments: one two"},
		{"missing value", []string{"-d"}, "flag needs an argument"},
		{"unknown option", []string{"-x", "-d", "1"}, "unknown shorthand flag: 'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runWith(t, context.Background(), nil, tt.args...)
			assert.Equal(t, exitFailure, res.code)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, "Usage: fsmdemo [-h] [-v] [-V] -d <delay>")
			assert.Contains(t, res.stderr, "-d, --delay delay")
			if tt.msg == "" {
				assert.True(t, strings.HasPrefix(res.stderr, "Usage:"), res.stderr)
				return
			}
			firstLine, _, _ := strings.Cut(res.stderr, "\n")
			assert.Contains(t, firstLine, tt.msg)
		})
	}
}

func TestRun_ZeroDelayIsValid(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-d", "0"}, {"-d0"}, {"--delay", "0"}, {"-vd", "0"}} {
		res := runWith(t, context.Background(), nil, args...)
		assert.Equal(t, exitSuccess, res.code, "args %v: %s", args, res.stderr)
	}
}

func TestRun_ConfigError(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]string{
		"log format": {"FSMDEMO_LOG_FORMAT": "xml"},
		"delay unit": {"FSMDEMO_DELAY_UNIT": "later"},
	}

	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := runWith(t, context.Background(), environ, "-d", "0")
			assert.Equal(t, exitFailure, res.code)
			assert.Empty(t, res.stdout)
			assert.NotContains(t, res.stderr, "Usage:")
			assert.Equal(t, 1, strings.Count(res.stderr, "\n"), res.stderr)
		})
	}
}

func TestRun_Interrupted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runWith(t, ctx, nil, "-d", "0")
	assert.Equal(t, exitFailure, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "context canceled")
	assert.NotContains(t, res.stderr, "Usage:")
}

func TestRun_InterruptedDuringPause(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res := runWith(t, ctx, nil, "-d", "60")
	assert.Equal(t, exitFailure, res.code)
	assert.Equal(t, "a called\n", res.stdout)
	assert.Contains(t, res.stderr, "handler for INIT->2 failed")
}
