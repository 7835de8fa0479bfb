// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command sigmaxbench runs the MPSC ring queue benchmark harness and
// appends its results to a structured result file.
package main

import (
	"fmt"
	"os"
	"slices"
	"time"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/kristoftunner/sigmax/internal/bench"
	"github.com/kristoftunner/sigmax/internal/cpuinfo"
	"github.com/kristoftunner/sigmax/internal/record"
	"github.com/kristoftunner/sigmax/internal/sink"
)

// allowedQueueSizes is the CLI's accepted -q/--queue-size values.
var allowedQueueSizes = []int{32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 10240}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	flags := pflag.NewFlagSet("sigmaxbench", pflag.ContinueOnError)
	queueSize := flags.IntP("queue-size", "q", 1024, "queue capacity in elements")
	producerCounts := flags.IntSliceP("producer-count", "p", []int{1}, "producer thread count, or a comma-separated sweep")
	resultsPath := flags.StringP("results-path", "r", "sigmaxbench-results.json", "path to the result file")
	duration := flags.DurationP("duration", "d", time.Second, "measurement window per run")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		log.Error().Err(err).Msg("parsing flags")
		return 1
	}

	if !slices.Contains(allowedQueueSizes, *queueSize) {
		log.Error().Int("queue-size", *queueSize).Ints("allowed", allowedQueueSizes).Msg("invalid queue size")
		return 1
	}
	for _, p := range *producerCounts {
		if p < 1 {
			log.Error().Int("producer-count", p).Msg("producer count must be >= 1")
			return 1
		}
	}

	info := cpuinfo.Probe()
	log.Info().
		Str("vendor", info.Vendor).
		Str("uarch", info.Uarch).
		Int("coresPerSocket", info.CoresPerSocket).
		Msg("cpu topology probed")

	elementSize := int(unsafe.Sizeof(record.OrderEvent{}))

	for _, producerCount := range *producerCounts {
		log.Info().
			Int("queueSize", *queueSize).
			Int("producerCount", producerCount).
			Dur("duration", *duration).
			Msg("starting run")

		result := bench.Run(bench.Params{
			Capacity:      *queueSize,
			ProducerCount: producerCount,
			Duration:      *duration,
		})

		log.Info().
			Uint64("totalPops", result.TotalPopAttempts).
			Uint64("successfulPops", result.SuccessfulPops).
			Uint64("pushCount", result.PushCount).
			Uint64("popCount", result.PopCount).
			Msg("run complete")

		run := sink.Run{
			ProducerCount:  producerCount,
			QueueSize:      *queueSize * elementSize,
			TotalPops:      result.TotalPopAttempts,
			SuccessfulPops: result.SuccessfulPops,
		}
		if err := sink.Append(*resultsPath, run, info); err != nil {
			log.Error().Err(err).Str("path", *resultsPath).Msg("writing result file")
			return 1
		}
	}

	fmt.Fprintf(os.Stderr, "wrote results to %s\n", *resultsPath)
	return 0
}
