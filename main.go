package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

const (
	appName    = "tripforge"
	appVersion = "1.0.0"
	appDesc    = "tripcode bruteforcer for Futaba-style imageboards"
	appAuthor  = "Copyright (C) 2026 puhitaku <https://github.com/puhitaku>"
	appLicense = "MIT License"
)

func main() {
	os.Exit(program(os.Args[1:], os.Stdout, os.Stderr))
}

func program(args []string, out, errOut io.Writer) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if cfg.help {
		printHelp(errOut)
		return 1
	}

	rep := newReporter(out)
	stop := &atomic.Bool{}
	watchInterrupt(rep, stop)
	return run(cfg, rep, stop)
}

// run owns the whole search: splash, worker pool, and the final summary.
// It returns once every worker has observed the stop token.
func run(cfg config, rep *reporter, stop *atomic.Bool) int {
	printSplash(rep.out, cfg)

	freq := newFreqCounter()

	var match *matcher
	if cfg.mode != modeBench {
		match = newMatcher(cfg.query, cfg.mode == modeAgnostic)
	}

	seeds := newSeeder(uint32(time.Now().Unix())).seeds(cfg.workers)

	eg := errgroup.Group{}
	for i := 0; i < cfg.workers; i++ {
		t := newTripper(seeds[i], match, rep, freq, stop)
		eg.Go(t.Go)
	}

	var barDone chan struct{}
	if cfg.mode == modeBench {
		barDone = make(chan struct{})
		go benchmarkBar(freq, stop, barDone)
	}

	_ = eg.Wait() // trippers only ever return nil
	if barDone != nil {
		<-barDone
	}
	rep.summary(freq.fetch())
	return 0
}

func printSplash(out io.Writer, cfg config) {
	fmt.Fprintln(out, color.New(color.Bold).Sprintf("%s %s", appName, appVersion))
	fmt.Fprintf(out, "%s\nReleased under the %s.\n", appAuthor, appLicense)
	if cfg.workers > 1 {
		fmt.Fprintf(out, "Utilizing %d threads.\n", cfg.workers)
	} else {
		fmt.Fprintln(out, "Utilizing 1 thread.")
	}
	if cfg.mode == modeBench {
		fmt.Fprintln(out, "Running in benchmark mode, send break to stop.")
	} else {
		fmt.Fprintln(out, strings.Repeat("-", 64))
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintf(out, "%s - %s\n\n", appName, appDesc)
	fmt.Fprintf(out, "usage:\n\t%s [OPTION] \"SEARCHSTR\"\n\n", appName)
	fmt.Fprintln(out, "help:")
	fmt.Fprintln(out, "\t(None)\t No query. Hashes random tripcodes for throughput only.")
	fmt.Fprintln(out, "\t-i\t Case agnostic search.")
	fmt.Fprintln(out, "\t-n N\t Number of parallel workers (default: all cores).")
	fmt.Fprintln(out, "\t-h\t Display this help screen.")
}

// watchInterrupt flips the stop token when SIGINT arrives. That is the
// only transition; workers notice it at the top of their next iteration.
func watchInterrupt(rep *reporter, stop *atomic.Bool) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		rep.ack()
		stop.Store(true)
	}()
}

// benchmarkBar paints a spinner with the lifetime hash count and a
// hashes-per-second readout, refreshed once per second, while benchmark
// mode runs.
func benchmarkBar(freq *freqCounter, stop *atomic.Bool, done chan<- struct{}) {
	defer close(done)
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
	)
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	var last uint64
	for !stop.Load() {
		<-tick.C
		cur := freq.lifetime()
		_ = bar.Add(int(cur - last))
		last = cur
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
}
