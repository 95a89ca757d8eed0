package main

import (
	"sync"
	"time"
)

// freqCounter tracks hashing throughput. Every worker calls count once per
// iteration; at each wall-clock second boundary the finished second's tally
// is blended into a smoothed average. All fields sit behind one mutex --
// the loop body is dominated by DES, not by this lock.
type freqCounter struct {
	mu       sync.Mutex
	tally    uint64
	average  float64
	lastTick int64
	total    uint64
	now      func() time.Time
}

func newFreqCounter() *freqCounter {
	f := &freqCounter{now: time.Now}
	f.lastTick = f.now().Unix()
	return f
}

// count records one finished iteration. Crossing a second boundary blends
// average = average/2 + tally/2; the very first boundary seeds the average
// with the full tally so the estimate doesn't start at half speed.
func (f *freqCounter) count() {
	f.mu.Lock()
	sec := f.now().Unix()
	if sec != f.lastTick {
		if f.average == 0 {
			f.average = float64(f.tally)
		} else {
			f.average = f.average/2 + float64(f.tally)/2
		}
		f.tally = 1
	} else {
		f.tally++
	}
	f.lastTick = sec
	f.total++
	f.mu.Unlock()
}

// fetch returns the smoothed trips-per-second estimate, falling back to the
// in-progress tally while the first second is still running.
func (f *freqCounter) fetch() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.average != 0 {
		return uint64(f.average)
	}
	return f.tally
}

// lifetime returns the total number of iterations counted so far.
func (f *freqCounter) lifetime() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}
