package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/cellparty/lazy"
	"github.com/delaneyj/cellparty/signal"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkSignalWrites(true)
	benchmarkMappedReads(true)
	benchmarkCells(true)
}

var (
	observerCounts = []int{1, 10, 100, 1_000}
	batchSizes     = []int{10, 100}
	chainDepths    = []int{1, 10, 100}
	cellCounts     = []int{1, 10, 100, 1_000}
	iters          = 100
)

var sink int

func benchmarkSignalWrites(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Signal Writes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, k := range observerCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		src := signal.New(0)
		for i := 0; i < k; i++ {
			src.OnChange(func(next, prev int) {
				sink += next - prev
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			src.SetValue(src.Value() + 1)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("write fan-out: %d", k),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	for _, k := range observerCounts {
		for _, n := range batchSizes {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := signal.New(0)
			for i := 0; i < k; i++ {
				src.OnChange(func(next, prev int) {
					sink += next - prev
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Batch(func() {
					for j := 0; j < n; j++ {
						src.SetValue(src.Value() + 1)
					}
				})
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("batched write x%d fan-out: %d", n, k),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkMappedReads(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Mapped Views")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, depth := range chainDepths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		src := signal.New(1)
		var last signal.Source[int] = src
		for i := 0; i < depth; i++ {
			last = signal.Map(last, func(v int) int { return v + 1 })
		}

		for i := 0; i < iters; i++ {
			src.SetValue(i)
			start := time.Now()
			sink += last.Value()
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("mapped read depth: %d", depth),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkCells(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Deferred Cells")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	{
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 0; i < iters; i++ {
			cell := lazy.New(func() int { return 42 })
			start := time.Now()
			sink += cell.Get()
			tach.AddTime(time.Since(start))
		}
		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{"cold get", calc.Time.Avg, calc.Time.Min, calc.Time.P75, calc.Time.P99, calc.Time.Max},
		})
	}

	{
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		cell := lazy.New(func() int { return 42 })
		cell.Force()
		for i := 0; i < iters; i++ {
			start := time.Now()
			sink += cell.Get()
			tach.AddTime(time.Since(start))
		}
		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{"hot get", calc.Time.Avg, calc.Time.Min, calc.Time.P75, calc.Time.P99, calc.Time.Max},
		})
	}

	for _, n := range cellCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 0; i < iters; i++ {
			reg := lazy.NewRegistry()
			for j := 0; j < n; j++ {
				lazy.Declare(reg, fmt.Sprintf("cell%d", j), func() int { return j })
			}
			start := time.Now()
			if err := reg.ForceAll(); err != nil {
				log.Fatal(err)
			}
			tach.AddTime(time.Since(start))
		}
		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("registry force-all: %d", n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
