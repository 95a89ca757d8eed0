package main

import (
	"bytes"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramRejectsInvalidQuery(t *testing.T) {
	var out, errOut bytes.Buffer
	code := program([]string{"!!!!!!!!!!"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "./0-9A-Za-z")
	// Validation runs before the splash; no worker pool, no banner.
	assert.Empty(t, out.String())
}

func TestProgramRejectsOverlongQuery(t *testing.T) {
	var out, errOut bytes.Buffer
	code := program([]string{"abcdefghijk"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "longer than 10")
	assert.Empty(t, out.String())
}

func TestProgramHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	code := program([]string{"-h"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "usage:")
	assert.Empty(t, out.String())
}

func TestRunStopsOnToken(t *testing.T) {
	var buf bytes.Buffer
	rep := newReporter(&buf)
	stop := &atomic.Bool{}
	time.AfterFunc(100*time.Millisecond, func() { stop.Store(true) })

	cfg := config{mode: modeSensitive, query: "qqqqqqqqq", workers: 2}
	code := run(cfg, rep, stop)
	assert.Equal(t, 0, code)

	got := buf.String()
	assert.Contains(t, got, "Utilizing 2 threads.")
	assert.Contains(t, got, strings.Repeat("-", 64))
	assert.Equal(t, 1, strings.Count(got, "Final average rate:"),
		"summary must print exactly once")
}

func TestRunBenchmarkMode(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the benchmark display ticker")
	}
	var buf bytes.Buffer
	rep := newReporter(&buf)
	stop := &atomic.Bool{}
	time.AfterFunc(100*time.Millisecond, func() { stop.Store(true) })

	cfg := config{mode: modeBench, workers: 1}
	code := run(cfg, rep, stop)
	assert.Equal(t, 0, code)

	got := buf.String()
	assert.Contains(t, got, "Running in benchmark mode, send break to stop.")
	assert.NotContains(t, got, "TRIP:")
	assert.Equal(t, 1, strings.Count(got, "Final average rate:"))
}

func TestSearchFindsVerifiedMatch(t *testing.T) {
	// Single-character queries hit often; hash until one lands and check
	// the reported line against the pipeline's own output.
	var buf bytes.Buffer
	stop := &atomic.Bool{}
	tr := newTripper(0xBEEF, newMatcher("a", false), newReporter(&buf), newFreqCounter(), stop)

	var password [passwordLength]byte
	for i := 0; i < 1_000_000 && buf.Len() == 0; i++ {
		tr.step(password[:])
	}
	require.NotZero(t, buf.Len(), "no match within the iteration budget")

	line := strings.SplitN(buf.String(), "\n", 2)[0]
	require.Regexp(t, `^TRIP: '![./0-9A-Za-z]{10}' -> PASS: '.{8}' @ `, line)

	trip := line[len("TRIP: '!") : len("TRIP: '!")+tripcodeLength]
	assert.Contains(t, trip, "a")
}

func Benchmark(b *testing.B) {
	stop := &atomic.Bool{}
	tr := newTripper(1, newMatcher("aaaaaaaaaa", false), newReporter(io.Discard), newFreqCounter(), stop)

	b.Run("BenchmarkTripper_Step", func(b *testing.B) {
		var password [passwordLength]byte
		for i := 0; i < b.N; i++ {
			tr.step(password[:])
		}
	})
}
