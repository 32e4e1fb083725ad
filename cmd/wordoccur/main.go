// Command wordoccur prints how many times each word occurs in a text file,
// most frequent first.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/CyphrRiot/wordoccur"
)

const usage = `usage: %s [options] FILE

Count word occurrences inside of the given text file.

options:
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	formatters = map[string]wordoccur.Formatter{
		"colon": wordoccur.ColonFormatter,
		"json":  wordoccur.JSONFormatter,
	}
	tokenizers = map[string]wordoccur.Tokenizer{
		"words":  wordoccur.Words,
		"fields": wordoccur.Fields,
	}
)

type config struct {
	path     string
	format   wordoccur.Formatter
	split    wordoccur.Tokenizer
	workers  int
	progress bool
	verbose  bool
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	errLog := log.New(stderr, "", 0)

	cfg, err := parseArgs(args, stderr)
	if err == flag.ErrHelp {
		return exitOK
	}
	if err != nil {
		errLog.Printf("error: %s", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m, err := countFile(context.Background(), cfg, stderr, logger)
	if err != nil {
		errLog.Printf("error: %s", err)
		return exitError
	}
	logger.Debug("counted", "path", cfg.path, "distinct", len(m), "total", wordoccur.Total(m))

	if err := wordoccur.Report(stdout, m, cfg.format); err != nil {
		errLog.Printf("error: %s", err)
		return exitError
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	name := "wordoccur"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usage, name)
		fs.PrintDefaults()
	}

	var (
		cfg    config
		format string
		split  string
	)
	fs.StringVar(&format, "format", "colon", "output format: colon or json")
	fs.StringVar(&split, "split", "words", "tokenizer: words or fields")
	fs.IntVar(&cfg.workers, "workers", defaultWorkers(), "number of counting workers, 0 for one per CPU (env WORDOCCUR_WORKERS)")
	fs.BoolVar(&cfg.progress, "progress", false, "show a progress bar on stderr")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var ok bool
	if cfg.format, ok = formatters[format]; !ok {
		fs.Usage()
		return nil, errors.Errorf("unknown format %q", format)
	}
	if cfg.split, ok = tokenizers[split]; !ok {
		fs.Usage()
		return nil, errors.Errorf("unknown tokenizer %q", split)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		if fs.NArg() == 0 {
			return nil, errors.New("the following arguments are required: file")
		}
		return nil, errors.New("wrong number of arguments")
	}
	cfg.path = fs.Arg(0)
	return &cfg, nil
}

// defaultWorkers reads WORDOCCUR_WORKERS, falling back to a single worker.
func defaultWorkers() int {
	n, err := strconv.Atoi(os.Getenv("WORDOCCUR_WORKERS"))
	if err != nil {
		return 1
	}
	return n
}

func countFile(ctx context.Context, cfg *config, stderr io.Writer, logger *slog.Logger) (wordoccur.Occurrences, error) {
	f, err := os.Open(cfg.path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open file")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", cfg.path)
	}
	if fi.IsDir() {
		return nil, errors.Errorf("%s is a directory", cfg.path)
	}
	logger.Debug("reading", "path", cfg.path, "size", fi.Size(), "workers", cfg.workers)

	var r io.Reader = f
	if cfg.progress {
		bar := pb.New64(fi.Size()).SetWriter(stderr)
		bar.Set(pb.Bytes, true)
		bar.Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	m, err := wordoccur.CountReaderParallel(ctx, r, cfg.split, cfg.workers)
	if err != nil {
		return nil, errors.Wrapf(err, "count %s", cfg.path)
	}
	return m, nil
}
