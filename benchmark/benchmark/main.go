// Package benchmark internal benchmarks
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/consensys/kzg10"
	"github.com/consensys/kzg10/logger"
)

const benchCount = 10

var sizes = []int{1 << 4, 1 << 6, 1 << 8, 1 << 10, 1 << 12}

// /!\ internal use /!\
// running it with "chart" renders kzg10_bench.html next to the CSV output
// else will output average scheme timings per key size, in csv format
func main() {
	logger.Disable()

	mode := "time"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	results := make([]benchData, 0, len(sizes))
	for _, t := range sizes {
		results = append(results, run(t))
		runtime.GC()
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write(benchData{}.headers()); err != nil {
		panic(err)
	}
	for _, r := range results {
		if err := w.Write(r.values()); err != nil {
			panic(err)
		}
	}
	w.Flush()

	if mode == "chart" {
		if err := renderChart("kzg10_bench.html", results); err != nil {
			panic(err)
		}
		fmt.Println("chart written to kzg10_bench.html")
	}
}

func run(t int) benchData {
	setupStart := time.Now()
	ck, err := kzg10.Setup(t)
	if err != nil {
		panic(err)
	}
	bData := benchData{Size: t, Setup: time.Since(setupStart)}

	p := make([]fr.Element, t)
	for i := range p {
		if _, err := p[i].SetRandom(); err != nil {
			panic(err)
		}
	}
	var point fr.Element
	if _, err := point.SetRandom(); err != nil {
		panic(err)
	}

	start := time.Now()
	var digest kzg10.Digest
	for i := 0; i < benchCount; i++ {
		digest, err = kzg10.Commit(ck, p, t)
		if err != nil {
			panic(err)
		}
	}
	bData.Commit = time.Since(start) / benchCount

	start = time.Now()
	var witness kzg10.Witness
	for i := 0; i < benchCount; i++ {
		witness, err = kzg10.Open(ck, p, point, t)
		if err != nil {
			panic(err)
		}
	}
	bData.Open = time.Since(start) / benchCount

	start = time.Now()
	for i := 0; i < benchCount; i++ {
		ok, err := kzg10.VerifyEval(ck, digest, witness)
		if err != nil {
			panic(err)
		}
		if !ok {
			panic("honest witness rejected")
		}
	}
	bData.Verify = time.Since(start) / benchCount

	return bData
}

type benchData struct {
	Size   int
	Setup  time.Duration
	Commit time.Duration
	Open   time.Duration
	Verify time.Duration
}

func (bData benchData) headers() []string {
	return []string{"size", "setup(ms)", "commit(ms)", "open(ms)", "verify(ms)"}
}

func (bData benchData) values() []string {
	return []string{
		strconv.Itoa(bData.Size),
		ms(bData.Setup),
		ms(bData.Commit),
		ms(bData.Open),
		ms(bData.Verify),
	}
}

func ms(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000.0, 'f', 3, 64)
}

func renderChart(path string, results []benchData) error {
	xLabels := make([]string, len(results))
	series := map[string][]opts.LineData{
		"setup":  make([]opts.LineData, len(results)),
		"commit": make([]opts.LineData, len(results)),
		"open":   make([]opts.LineData, len(results)),
		"verify": make([]opts.LineData, len(results)),
	}
	for i, r := range results {
		xLabels[i] = strconv.Itoa(r.Size)
		series["setup"][i] = opts.LineData{Value: float64(r.Setup.Microseconds()) / 1000.0}
		series["commit"][i] = opts.LineData{Value: float64(r.Commit.Microseconds()) / 1000.0}
		series["open"][i] = opts.LineData{Value: float64(r.Open.Microseconds()) / 1000.0}
		series["verify"][i] = opts.LineData{Value: float64(r.Verify.Microseconds()) / 1000.0}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "kzg10 bn254",
			Subtitle: fmt.Sprintf("avg of %d runs, %d cpus", benchCount, runtime.NumCPU()),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "kzg10 bench", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels)
	for _, name := range []string{"setup", "commit", "open", "verify"} {
		line.AddSeries(name, series[name])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
