package main

import (
	"fmt"
	"os"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/log"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

// config holds the flags shared by every subcommand.
type config struct {
	Strategy           string
	TolerateTruncation bool
	LogFile            string
	Verbose            bool
}

func (cfg *config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.Strategy, "strategy", huffman.MergeDeque.String(),
		"how subtrees are merged: 'deque' or 'heap'")
	fs.BoolVar(&cfg.TolerateTruncation, "tolerate-truncation", false,
		"drop an incomplete trailing code instead of failing")
	fs.StringVar(&cfg.LogFile, "log", "",
		"file to write logs to (default stderr)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"log more output")
}

// Build turns the flags into library options.  The returned function
// releases the log file, if any, and must be called once the command is
// done.
func (cfg *config) Build(cmd *mainCmd) (opts []huffman.Option, closeFn func() error, err error) {
	strategy, err := huffman.ParseMergeStrategy(cfg.Strategy)
	if err != nil {
		return nil, nil, err
	}

	policy := huffman.TruncationError
	if cfg.TolerateTruncation {
		policy = huffman.TruncationTolerate
	}

	closeFn = func() error { return nil }
	logw := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log %q: %v", file, err)
		}
		logw = f
		closeFn = f.Close
	}

	logger := log.New(logw)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	opts = []huffman.Option{
		huffman.WithMergeStrategy(strategy),
		huffman.WithTruncationPolicy(policy),
		huffman.WithLogger(logger.WithName(_name).Logger),
	}
	return opts, closeFn, nil
}

// withOptions runs fn with the options built from cfg, then releases them.
func (cfg *config) withOptions(cmd *mainCmd, fn func([]huffman.Option) error) (err error) {
	opts, closeFn, err := cfg.Build(cmd)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Invoke(closeFn))
	return fn(opts)
}
