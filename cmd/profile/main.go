// Package main provides a profiling wrapper for the bundle decoder to
// identify performance bottlenecks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sarchlab/ia64dis/insts"
	"github.com/sarchlab/ia64dis/listing"
	"github.com/sarchlab/ia64dis/loader"
)

var (
	raw        = flag.Bool("raw", false, "Treat the input as raw bundles instead of ELF")
	sweep      = flag.Bool("sweep", false, "Profile the parallel listing sweep instead of the decoder loop")
	workers    = flag.Int("workers", 0, "Sweep goroutines (0 = number of CPUs)")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to file")
	memProfile = flag.String("memprofile", "", "write memory profile to file")
	duration   = flag.Duration("duration", 30*time.Second, "max duration to run (for profiling)")
	passes     = flag.Int("passes", 100, "number of passes over the code segments")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: profile [options] <program.elf>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Start CPU profiling if requested
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	programPath := flag.Arg(0)

	var (
		prog *loader.Program
		err  error
	)
	if *raw {
		prog, err = loader.LoadRaw(programPath, 0)
	} else {
		prog, err = loader.Load(programPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	code := prog.CodeSegments()
	fmt.Printf("Loaded: %s\n", programPath)
	fmt.Printf("Code segments: %d\n", len(code))

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()

	var bundles, failures uint64
	if *sweep {
		bundles, failures = runSweepProfile(ctx, code)
	} else {
		bundles, failures = runDecodeProfile(ctx, code)
	}

	elapsed := time.Since(start)

	// Write memory profile if requested
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating memory profile: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing memory profile: %v\n", err)
		}
	}

	fmt.Printf("\nProfiling Results:\n")
	fmt.Printf("Bundles decoded: %d\n", bundles)
	fmt.Printf("Decode failures: %d\n", failures)
	fmt.Printf("Elapsed time: %v\n", elapsed)
	if bundles > 0 {
		fmt.Printf("Bundles/second: %.0f\n", float64(bundles)/elapsed.Seconds())
	}
	if ctx.Err() != nil {
		fmt.Printf("\nTimeout reached after %v - stopped early\n", *duration)
	}
}

// runDecodeProfile decodes every bundle of every segment in a loop on one
// goroutine, reusing a single Bundle.
func runDecodeProfile(ctx context.Context, code []loader.Segment) (uint64, uint64) {
	dec := insts.NewDecoder()
	var (
		b                 insts.Bundle
		bundles, failures uint64
	)
	for pass := 0; pass < *passes && ctx.Err() == nil; pass++ {
		for _, seg := range code {
			for off := 0; off+insts.BundleSize <= len(seg.Data); off += insts.BundleSize {
				if err := dec.DecodeInto(seg.Data[off:], &b); err != nil {
					failures++
				}
				bundles++
			}
		}
	}
	return bundles, failures
}

// runSweepProfile runs the parallel listing sweep over every segment.
func runSweepProfile(ctx context.Context, code []loader.Segment) (uint64, uint64) {
	dec := insts.NewDecoder()
	var bundles, failures uint64
	for pass := 0; pass < *passes && ctx.Err() == nil; pass++ {
		for _, seg := range code {
			l, err := listing.Sweep(ctx, dec, seg, listing.Options{Workers: *workers})
			if err != nil {
				return bundles, failures
			}
			bundles += uint64(len(l.Entries))
			failures += uint64(len(l.Errors()))
		}
	}
	return bundles, failures
}
