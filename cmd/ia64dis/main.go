// Package main provides the entry point for ia64dis.
// ia64dis disassembles IA-64 ELF files and raw bundle images.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/schollz/progressbar/v3"

	"github.com/sarchlab/ia64dis/config"
	"github.com/sarchlab/ia64dis/fetch"
	"github.com/sarchlab/ia64dis/insts"
	"github.com/sarchlab/ia64dis/listing"
	"github.com/sarchlab/ia64dis/loader"
)

var (
	configPath = flag.String("config", "", "Path to a YAML or JSON configuration file")
	raw        = flag.Bool("raw", false, "Treat the input as raw bundles instead of ELF")
	base       = flag.Uint64("base", 0, "Load address of a raw image")
	trace      = flag.Bool("trace", false, "Follow control flow from the entry point instead of sweeping")
	entry      = flag.Uint64("entry", 0, "Trace entry address (default: the program entry point)")
	limit      = flag.Int("limit", 0, "Maximum bundles to trace (0 = unlimited)")
	strict     = flag.Bool("strict", false, "Report reserved encodings as errors")
	color      = flag.Bool("color", false, "Colorize output")
	showBytes  = flag.Bool("bytes", false, "Print raw bundle bytes")
	workers    = flag.Int("workers", 0, "Number of decoding goroutines (default: from config)")
	progress   = flag.Bool("progress", false, "Show a progress bar while sweeping")
	dump       = flag.Bool("dump", false, "Dump decoded bundles as Go values")
	stats      = flag.Bool("stats", false, "Print fetch cache statistics after a trace")
	verbose    = flag.Bool("v", false, "Verbose output")
)

// dumper prints values field by field without calling String methods.
var dumper = spew.ConfigState{Indent: " ", DisableMethods: true}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: ia64dis [options] <program.elf>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies flags given on
// the command line on top of it.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Decoder.Strict = *strict
		case "color":
			cfg.Listing.Color = *color
		case "bytes":
			cfg.Listing.ShowBytes = *showBytes
		case "workers":
			cfg.Listing.Workers = *workers
		}
	})
	return cfg, cfg.Validate()
}

func loadProgram(path string) (*loader.Program, error) {
	if *raw {
		return loader.LoadRaw(path, *base)
	}
	return loader.Load(path)
}

func run(ctx context.Context, logger *slog.Logger, path string, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prog, err := loadProgram(path)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	logger.Debug("loaded program",
		"path", path, "entry", fmt.Sprintf("%#x", prog.EntryPoint),
		"segments", len(prog.Segments), "symbols", len(prog.Symbols()))

	dec := insts.NewDecoder(insts.WithLogger(logger), insts.WithStrict(cfg.Decoder.Strict))

	if *trace {
		return runTrace(ctx, logger, cfg, prog, dec, out)
	}
	return runSweep(ctx, cfg, prog, dec, out)
}

// runSweep disassembles every code segment.
func runSweep(
	ctx context.Context,
	cfg *config.Config,
	prog *loader.Program,
	dec *insts.Decoder,
	out io.Writer,
) error {
	code := prog.CodeSegments()
	if len(code) == 0 {
		return fmt.Errorf("no executable segments")
	}

	for i, seg := range code {
		opts := listing.Options{
			Workers:      cfg.Listing.Workers,
			ChunkBundles: cfg.Listing.ChunkBundles,
			Symbols:      prog.Symbols(),
		}
		if *progress {
			n := (len(seg.Data) + insts.BundleSize - 1) / insts.BundleSize
			bar := progressbar.Default(int64(n), fmt.Sprintf("segment %#x", seg.VirtAddr))
			opts.Progress = func(done int) { _ = bar.Set(done) }
		}

		l, err := listing.Sweep(ctx, dec, seg, opts)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		if *dump {
			dumper.Fdump(out, l.Entries)
			continue
		}
		err = listing.Write(out, l, listing.WriteOptions{
			ShowBytes:  cfg.Listing.ShowBytes,
			ShowLabels: cfg.Listing.ShowLabels,
			Color:      cfg.Listing.Color,
		})
		if err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}

// runTrace follows control flow from the entry through the fetch cache.
func runTrace(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	prog *loader.Program,
	dec *insts.Decoder,
	out io.Writer,
) error {
	start := prog.EntryPoint
	if *entry != 0 {
		start = *entry
	}

	var seg *loader.Segment
	code := prog.CodeSegments()
	for i := range code {
		if code[i].Contains(start) {
			seg = &code[i]
			break
		}
	}
	if seg == nil {
		return fmt.Errorf("entry %#x is not in an executable segment", start)
	}

	cache, err := fetch.New(cfg.Cache, fetch.NewProgramImage(prog), dec)
	if err != nil {
		return err
	}

	res, err := listing.Trace(ctx, cache, start, listing.TraceOptions{
		Limit: *limit,
		Lo:    seg.VirtAddr &^ (insts.BundleSize - 1),
		Hi:    seg.End(),
	})
	if err != nil {
		return err
	}

	for _, addr := range res.Addrs {
		b, err := cache.Bundle(addr)
		if err != nil {
			continue
		}
		if *dump {
			dumper.Fdump(out, b)
			continue
		}
		fmt.Fprintf(out, "%016x: %s\n", addr, b.String())
	}
	for _, f := range res.Faults {
		fmt.Fprintf(out, "%016x: <%v>\n", f.Addr, f.Err)
	}
	for _, addr := range res.Exits {
		fmt.Fprintf(out, "exit: %016x\n", addr)
	}
	if res.Truncated {
		logger.Warn("trace stopped at bundle limit", "limit", *limit)
	}

	if *stats {
		s := cache.Stats()
		fmt.Fprintf(out, "\nFetch cache:\n")
		fmt.Fprintf(out, "  Lookups:       %d\n", s.Lookups)
		fmt.Fprintf(out, "  Hits:          %d (%.1f%%)\n", s.Hits, 100*s.HitRate())
		fmt.Fprintf(out, "  Misses:        %d\n", s.Misses)
		fmt.Fprintf(out, "  Evictions:     %d\n", s.Evictions)
		fmt.Fprintf(out, "  Decode errors: %d\n", s.DecodeErrors)
	}
	return nil
}
