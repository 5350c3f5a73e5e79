// Command wordfreq counts word frequencies in its input files (or stdin) and
// prints the most frequent ones.
//
// Settings come from CONFIG_* environment variables (see shared/config) and
// can be overridden with flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/chainhash/shared/config"
	"github.com/on-the-ground/chainhash/shared/hashtable"
	"github.com/on-the-ground/chainhash/shared/log"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "wordfreq:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	fs.IntVar(&cfg.Top, "top", cfg.Top, "number of words to print")
	fs.IntVar(&cfg.InitialBuckets, "buckets", cfg.InitialBuckets, "initial hash table buckets")
	fs.StringVar(&cfg.Hash, "hash", cfg.Hash, "word hash: fnv or xxhash")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	minCount := fs.Int("min", 1, "drop words seen fewer times than this")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hash, err := hashFunc(cfg.Hash)
	if err != nil {
		return err
	}
	if cfg.InitialBuckets <= 0 {
		return fmt.Errorf("buckets must be positive, got %d", cfg.InitialBuckets)
	}
	if cfg.Top <= 0 {
		return fmt.Errorf("top must be positive, got %d", cfg.Top)
	}

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync(logger)

	counter := NewCounter(cfg.InitialBuckets, hash, logger)
	defer counter.Close()

	if err := countInputs(counter, fs.Args(), stdin); err != nil {
		return err
	}

	pruned := counter.Prune(*minCount)
	logger.Info("words counted",
		zap.Int("distinct", counter.Distinct()),
		zap.Int("pruned", pruned),
		zap.Int("collisions", counter.Collisions()),
	)

	for _, wc := range counter.Top(cfg.Top) {
		if _, err := fmt.Fprintf(stdout, "%7d %s\n", wc.Count, wc.Word); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func countInputs(counter *Counter, paths []string, stdin io.Reader) error {
	if len(paths) == 0 {
		return counter.CountWords(stdin)
	}
	for _, path := range paths {
		if err := countFile(counter, path); err != nil {
			return err
		}
	}
	return nil
}

func countFile(counter *Counter, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := counter.CountWords(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func hashFunc(name string) (hashtable.HashFunc, error) {
	switch name {
	case "fnv":
		return hashtable.FNVHash64, nil
	case "xxhash":
		return hashtable.XXHash64, nil
	default:
		return nil, fmt.Errorf("unknown hash %q", name)
	}
}
