// Command lsfsbench sweeps every named lsfs security level, measures
// keygen/sign/verify wall-clock cost, and renders an interactive scatter
// chart of signature size vs. signing time.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lsfs/entropy"
	"lsfs/lsfs"
	"lsfs/params"
)

type levelResult struct {
	level        params.Level
	keygenMS     float64
	signMS       float64
	verifyMS     float64
	sigBytes     int
	pkBytes      int
	skBytes      int
}

func main() {
	outPath := flag.String("out", "lsfsbench.html", "output HTML path")
	msgLen := flag.Int("msglen", 1000, "benchmark message length in bytes")
	flag.Parse()

	message := make([]byte, *msgLen)
	for i := range message {
		message[i] = byte(i)
	}

	results := make([]levelResult, 0, len(params.All))
	for _, level := range params.All {
		r, err := benchmarkLevel(level, message)
		if err != nil {
			fmt.Fprintf(os.Stderr, "level %s: %v\n", level, err)
			os.Exit(1)
		}
		results = append(results, r)
		fmt.Printf("%-6s keygen=%.2fms sign=%.2fms verify=%.2fms sig=%dB pk=%dB sk=%dB\n",
			level, r.keygenMS, r.signMS, r.verifyMS, r.sigBytes, r.pkBytes, r.skBytes)
	}

	if err := renderChart(*outPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

func benchmarkLevel(level params.Level, message []byte) (levelResult, error) {
	t0 := time.Now()
	sk, pk, err := lsfs.GenerateKey(level, entropy.System)
	keygenMS := time.Since(t0).Seconds() * 1000
	if err != nil {
		return levelResult{}, fmt.Errorf("keygen: %w", err)
	}

	t1 := time.Now()
	sig, err := lsfs.Sign(sk, message)
	signMS := time.Since(t1).Seconds() * 1000
	if err != nil {
		return levelResult{}, fmt.Errorf("sign: %w", err)
	}

	signed := append(append([]byte(nil), message...), sig...)
	t2 := time.Now()
	if _, err := lsfs.Open(pk, signed); err != nil {
		return levelResult{}, fmt.Errorf("verify: %w", err)
	}
	verifyMS := time.Since(t2).Seconds() * 1000

	return levelResult{
		level: level, keygenMS: keygenMS, signMS: signMS, verifyMS: verifyMS,
		sigBytes: len(sig), pkBytes: len(pk.Bytes()), skBytes: len(sk.Bytes()),
	}, nil
}

func renderChart(outPath string, results []levelResult) error {
	page := components.NewPage().SetPageTitle("lsfs: signature size vs. signing time")

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "lsfs: signature size vs. signing time"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Signature size (KB)",
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Signing time (ms)",
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			},
		}),
	)

	items := make([]opts.ScatterData, 0, len(results))
	for _, r := range results {
		items = append(items, opts.ScatterData{
			Value: []interface{}{
				float64(r.sigBytes) / 1024.0,
				r.signMS,
				r.level.String(),
				r.keygenMS,
				r.verifyMS,
				r.pkBytes,
				r.skBytes,
			},
			Name: r.level.String(),
		})
	}
	sc.AddSeries("security levels", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 14}),
	)
	page.AddCharts(sc)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
