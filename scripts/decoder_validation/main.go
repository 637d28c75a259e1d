// Validate decoder optimization - measures allocations and throughput of
// DecodeInto
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sarchlab/ia64dis/insts"
)

func main() {
	decoder := insts.NewDecoder()

	// Bundles covering the main decode paths
	bundles := [][]byte{
		// [MMI] addl r15=0x0,r1;; ld8.acq r16=[r15],0x8; mov r14=r1;;
		{0x0b, 0x78, 0x00, 0x02, 0x00, 0x24, 0x00, 0x41, 0x3c, 0x70, 0x29, 0xc0, 0x01, 0x08, 0x00, 0x84},
		// [MIB] ld8 r1=[r15]; mov b6=r16; br.few b6;;
		{0x11, 0x08, 0x00, 0x1e, 0x18, 0x10, 0x60, 0x80, 0x04, 0x80, 0x03, 0x00, 0x60, 0x00, 0x80, 0x00},
		// [MLX] nop.m 0x0; brl.sptk.few $+0x0;;
		{0x05, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc0},
		// [MII] nop.m 0x0; nop.i 0x0; nop.i 0x0
		{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00},
	}

	var out insts.Bundle

	// Warm up
	for i := 0; i < 1000; i++ {
		for _, b := range bundles {
			if err := decoder.DecodeInto(b, &out); err != nil {
				fmt.Fprintf(os.Stderr, "decode % x: %v\n", b, err)
				os.Exit(1)
			}
		}
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	for i := 0; i < iterations; i++ {
		for _, b := range bundles {
			_ = decoder.DecodeInto(b, &out)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(bundles)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	if allocations == 0 {
		fmt.Printf("\nSUCCESS: zero allocations\n")
	} else if float64(allocations)/float64(totalDecodes) < 0.1 {
		fmt.Printf("\nGOOD: low allocation rate (< 0.1 per decode)\n")
	} else {
		fmt.Printf("\nWARNING: high allocation rate\n")
		os.Exit(1)
	}
}
