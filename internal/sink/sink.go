// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sink appends benchmark run records to a structured, append-safe
// result file.
package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kristoftunner/sigmax/internal/cpuinfo"
)

// Run is one benchmark run's parameters and aggregate counters.
type Run struct {
	ProducerCount  int    `json:"producerCount"`
	QueueSize      int    `json:"queueSize"` // bytes: elements * element size
	TotalPops      uint64 `json:"totalPops"`
	SuccessfulPops uint64 `json:"successfulPops"`
}

// document is the result file's on-disk shape.
type document struct {
	BenchmarkResults []Run        `json:"benchmarkResults"`
	CPUInfo          cpuinfo.Info `json:"cpuInfo"`
}

// Append loads path (if it exists), appends run, refreshes the cpuInfo
// block with info, and writes the document back. A missing file is treated
// as an empty document, not an error.
func Append(path string, run Run, info cpuinfo.Info) error {
	doc, err := load(path)
	if err != nil {
		return fmt.Errorf("sink: load %s: %w", path, err)
	}

	doc.BenchmarkResults = append(doc.BenchmarkResults, run)
	doc.CPUInfo = info

	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("sink: marshal %s: %w", path, err)
	}
	buf = append(buf, '\n')

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("sink: write %s: %w", path, err)
	}
	return nil
}

func load(path string) (document, error) {
	var doc document

	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, err
	}
	if len(buf) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(buf, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}
