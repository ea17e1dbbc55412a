package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Every worker advances its game with this fixed step, so a run is
// reproducible for a given seed regardless of wall-clock speed.
const frameStep = 1.0 / 60

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", runtime.GOMAXPROCS(0), "The number of games played concurrently.")
	seed := flag.Uint64("seed", 1, "Base seed; worker i plays with seed+i.")
	autoscroll := flag.Duration("autoscroll", loop.DefaultConfig().AutoscrollInterval, "Simulated time between automatic drops.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *games < 1 {
		log.Fatalf("-games must be at least 1, got %d", *games)
	}

	log.Println("Starting blockfall stress test...")

	report := &Report{
		Duration:       *duration,
		Workers:        *games,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		Stats:          tetris.NewStats(),
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d workers for %s...\n", *games, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	results := make([]*WorkerResult, *games)
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := newWorker(*seed+uint64(i), *autoscroll)
			if err != nil {
				log.Printf("worker %d: %v", i, err)
				return
			}
			results[i] = w.run(ctx)
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	for _, res := range results {
		if res != nil {
			report.Add(res)
		}
	}
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
