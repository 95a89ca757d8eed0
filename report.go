package main

import (
	"fmt"
	"io"
	"sync"
)

const kiloTrip = 1000.0

var ratePrefixes = [...]byte{0, 'k', 'm', 'g', 't'}

// condenseRate scales a raw trips-per-second figure down by thousands until
// it fits under the next magnitude, returning the scaled value and its
// prefix ('k', 'm', 'g', 't'; zero for none).
func condenseRate(rate uint64) (float64, byte) {
	v := float64(rate)
	i := 0
	for i+1 < len(ratePrefixes) && v >= kiloTrip {
		v /= kiloTrip
		i++
	}
	return v, ratePrefixes[i]
}

func formatRate(rate uint64) string {
	v, prefix := condenseRate(rate)
	if prefix == 0 {
		return fmt.Sprintf("%d Trip/s", rate)
	}
	return fmt.Sprintf("%.2f %cTrip/s", v, prefix)
}

// reporter serializes everything written to the shared output stream. A
// match report is atomic as a unit; reports from different workers may
// interleave in any order.
type reporter struct {
	mu  sync.Mutex
	out io.Writer
}

func newReporter(out io.Writer) *reporter {
	return &reporter{out: out}
}

func (r *reporter) match(trip, password string, rate uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "TRIP: '!%s' -> PASS: '%.8s' @ %s\n", trip, password, formatRate(rate))
}

func (r *reporter) summary(rate uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "Final average rate: %s\n", formatRate(rate))
}

// ack is printed from the signal handler; routing it through the lock
// keeps it from shearing a match line.
func (r *reporter) ack() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, "***Received SIGINT***")
}
