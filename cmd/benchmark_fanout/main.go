package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellparty/signal"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting fan-out benchmark, please wait...")
	defer log.Print("Finished fan-out benchmark")

	cfgs := []fanoutConfig{
		{
			name:      "single observer",
			observers: 1,
			writes:    1_000_000,
		},
		{
			name:      "chat room",
			observers: 50,
			writes:    100_000,
		},
		{
			name:      "dashboard",
			observers: 500,
			writes:    10_000,
		},
		{
			name:      "firehose",
			observers: 5_000,
			writes:    1_000,
		},
		{
			name:      "batched dashboard",
			observers: 500,
			writes:    10_000,
			batchSize: 100,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "observers", "writes", "batch", "time", "notifyRate", "notifications",
	})

	testRepeats := 5
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		best := time.Hour
		var total int64
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			counter := new(int64)
			duration := runFanout(cfg, counter)

			expected := int64(cfg.observers) * int64(cfg.writes)
			if *counter != expected {
				log.Fatalf("%s: got %d notifications, expected %d", cfg.name, *counter, expected)
			}
			if duration < best {
				best = duration
				total = *counter
			}
		}

		notifyRate := float64(total) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.observers)),
			humanize.Comma(int64(cfg.writes)),
			fmt.Sprint(cfg.batchSize),
			fmt.Sprint(best),
			humanize.Comma(int64(notifyRate)),
			humanize.Comma(total),
		})
	}
	table.Render() // Send output
}

type fanoutConfig struct {
	name      string // friendly name for the scenario, should be unique
	observers int    // observers registered before the writes begin
	writes    int    // total writes to the source signal
	batchSize int    // writes per batch, 0 writes unbatched
}

// Drive one scenario: register the observers, hammer the source, count every
// notification delivered.
func runFanout(cfg fanoutConfig, counter *int64) time.Duration {
	src := signal.New(0)
	for i := 0; i < cfg.observers; i++ {
		src.OnChange(func(next, prev int) {
			*counter++
		})
	}

	start := time.Now()
	if cfg.batchSize <= 0 {
		for i := 0; i < cfg.writes; i++ {
			src.SetValue(i)
		}
	} else {
		for i := 0; i < cfg.writes; i += cfg.batchSize {
			end := i + cfg.batchSize
			if end > cfg.writes {
				end = cfg.writes
			}
			src.Batch(func() {
				for j := i; j < end; j++ {
					src.SetValue(j)
				}
			})
		}
	}
	return time.Since(start)
}
