package main

import (
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type mode int

const (
	modeBench mode = iota
	modeSensitive
	modeAgnostic
)

const (
	queryMaxLength = 10
	tenthChars     = ".26AEIMQUYcgkosw"
)

var (
	errNoQuery      = errors.New("You didn't provide a query string.")
	errQueryLength  = errors.New("Tripcodes cannot be longer than 10 characters.")
	errQueryInvalid = errors.New("Tripcodes can only contain the characters ./0-9A-Za-z")
	errQueryTenth   = errors.New("10th character can only be one of these characters: '.26AEIMQUYcgkosw'")
)

type config struct {
	mode    mode
	query   string
	workers int
	help    bool
}

func parseArgs(args []string) (config, error) {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	help := fs.BoolP("help", "h", false, "display this help screen")
	agnostic := fs.BoolP("ignore-case", "i", false, "case agnostic search")
	workers := fs.IntP("threads", "n", runtime.NumCPU(), "number of parallel workers")

	if err := fs.Parse(args); err != nil {
		return config{}, errors.Wrap(err, "invalid arguments")
	}

	cfg := config{workers: *workers, help: *help}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.help {
		return cfg, nil
	}

	if fs.NArg() == 0 {
		if *agnostic {
			return cfg, errNoQuery
		}
		cfg.mode = modeBench
		return cfg, nil
	}

	if *agnostic {
		cfg.mode = modeAgnostic
	} else {
		cfg.mode = modeSensitive
	}
	cfg.query = fs.Arg(0)
	if err := validateQuery(cfg.query); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validateQuery enforces what a tripcode can physically contain: at most 10
// characters of the crypt alphabet, and a 10th character drawn from the 16
// values the final base64 sextet can take.
func validateQuery(query string) error {
	if query == "" {
		return errNoQuery
	}
	if len(query) > queryMaxLength {
		return errQueryLength
	}
	for i := 0; i < len(query); i++ {
		if !isTripChar(query[i]) {
			return errQueryInvalid
		}
	}
	if len(query) == queryMaxLength && !strings.Contains(tenthChars, query[queryMaxLength-1:]) {
		return errQueryTenth
	}
	return nil
}

func isTripChar(c byte) bool {
	return (c >= '.' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
