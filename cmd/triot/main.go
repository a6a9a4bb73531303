package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/ttabwol-git/triot"
	"github.com/ttabwol-git/triot/internal/config"
	"github.com/ttabwol-git/triot/internal/gen"
)

func main() {
	var (
		length       = flag.Int("n", 0, "input length override (0 picks a random length)")
		showProgress = flag.Bool("progress", false, "render a progress bar while the batch runs")
		showTable    = flag.Bool("table", false, "print an index/input/output summary table")
	)
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("no .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}

	log := newLogger(cfg)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var data []int64
	if *length > 0 {
		data = gen.IntsN(r, *length)
	} else {
		data = gen.Ints(r)
	}

	opts := []triot.Option{
		triot.WithMaxWorkers(cfg.MaxWorkers),
		triot.WithItemDelay(cfg.ItemDelay),
	}

	var bar *progressbar.ProgressBar
	if *showProgress {
		bar = progressbar.NewOptions(len(data),
			progressbar.OptionSetDescription("processing"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
		)
		opts = append(opts, triot.WithOnItemDone(func(int) { _ = bar.Add(1) }))
	}

	processor, err := triot.NewProcessor(log, data, opts...)
	if err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	output := processor.RunProcess(context.Background())
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	green := color.New(color.FgGreen)
	fmt.Printf("%s %v\n", green.Sprint("Output:"), output)

	if len(output) == 0 {
		os.Exit(1)
	}

	if *showTable {
		renderTable(data, output)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

func renderTable(input, output []int64) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Index", "Input", "Output")
	for i := range input {
		_ = table.Append(
			strconv.Itoa(i),
			strconv.FormatInt(input[i], 10),
			strconv.FormatInt(output[i], 10),
		)
	}
	if err := table.Render(); err != nil {
		logrus.Errorf("rendering summary table: %v", err)
	}
}
