// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/qlath/internal/report"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsSpectra(t *testing.T) {
	t.Setenv("VQSD_REPORT_PATH", "")
	path := filepath.Join(t.TempDir(), "run.msgpack")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-iterations", "12", "-seed", "3", "-report", path, "-log-level", "error"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "iter: 0 loss: ")
	require.Contains(t, out, "iter: 10 loss: ")
	require.NotContains(t, out, "iter: 20")
	require.Contains(t, out, "The estimated spectrum is: [")
	require.Contains(t, out, "The target spectrum is: [0.5 0.3 0.1 0.1]")
	require.Empty(t, strings.TrimSpace(stderr.String()))

	r, err := report.Load(path)
	require.NoError(t, err)
	require.Equal(t, 12, r.Iterations)
	require.Equal(t, int64(3), r.Seed)
	require.Len(t, r.Losses, 12)
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"-nope"}, &stdout, &stderr))
	require.Error(t, run([]string{"-lr", "0"}, &stdout, &stderr))
	require.NotPanics(t, func() {
		require.Error(t, run([]string{"-lr", "+Inf", "-iterations", "1"}, &stdout, &stderr))
	})
}
