package main

import (
	"strings"
	"sync/atomic"

	crypt "github.com/nyarla/go-crypt"
)

const (
	passwordLength = 8
	saltLength     = 4
	tripcodeLength = 10
	digestOffset   = 3
)

// alphabet is the single-byte-safe subset of Shift-JIS: the printable ASCII
// range minus '#' (triggers secure tripcodes on 4chan) and '\' and '~'
// (no single-byte Shift-JIS equivalent). 92 symbols.
const alphabet = " !\"$%&'()*+,-./0123456789:;<=>?" +
	"@ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_`abcdefghijklmnopqrstuvwxyz{|}"

// nextPassword fills buf from the worker's generator stream. The modulo
// bias against the tail of the alphabet is a known approximation and is
// not corrected.
func nextPassword(seed *uint32, buf []byte) {
	for i := range buf {
		buf[i] = alphabet[qrand(seed)%uint32(len(alphabet))]
	}
}

const (
	punctFrom = ":;<=>?@[\\]^_`"
	punctTo   = "ABCDEFGabcdef"
)

// deriveSalt builds the 4-character DES salt: the password's 2nd and 3rd
// characters with "H." appended, clamped into '.'..'z', then punctuation
// rewritten into the crypt alphabet. Clamping must run first; the rewrite
// assumes an already-bounded range.
func deriveSalt(password []byte) [saltLength]byte {
	salt := [saltLength]byte{password[1], password[2], 'H', '.'}
	clampRange(salt[:])
	shiftPunctuation(salt[:])
	return salt
}

func clampRange(salt []byte) {
	for i, c := range salt {
		if c < '.' || c > 'z' {
			salt[i] = '.'
		}
	}
}

func shiftPunctuation(salt []byte) {
	for i, c := range salt {
		if j := strings.IndexByte(punctFrom, c); j >= 0 {
			salt[i] = punctTo[j]
		}
	}
}

// extractTrip keeps the significant tail of the 13-character crypt digest:
// bytes 3 through 12.
func extractTrip(digest string) string {
	return digest[digestOffset : digestOffset+tripcodeLength]
}

// tripper is one worker: it owns its seed exclusively and runs the
// generate-hash-test loop against the shared matcher, reporter, and
// frequency counter.
type tripper struct {
	seed  uint32
	match *matcher // nil in benchmark mode
	rep   *reporter
	freq  *freqCounter
	stop  *atomic.Bool
}

func newTripper(seed uint32, match *matcher, rep *reporter, freq *freqCounter, stop *atomic.Bool) *tripper {
	return &tripper{
		seed:  seed,
		match: match,
		rep:   rep,
		freq:  freq,
		stop:  stop,
	}
}

// Go loops until the stop token flips. The token is checked once per
// iteration, so shutdown latency is bounded by a single hash.
func (t *tripper) Go() error {
	var password [passwordLength]byte
	for !t.stop.Load() {
		t.step(password[:])
	}
	return nil
}

// step executes one full iteration: build, derive, hash, extract, test,
// count.
func (t *tripper) step(password []byte) {
	nextPassword(&t.seed, password)
	salt := deriveSalt(password)
	digest := crypt.Crypt(string(password), string(salt[:2]))
	trip := extractTrip(digest)
	if t.match != nil && t.match.match(trip) {
		t.rep.match(trip, string(password), t.freq.fetch())
	}
	t.freq.count()
}
