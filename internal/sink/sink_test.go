// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sink_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kristoftunner/sigmax/internal/cpuinfo"
	"github.com/kristoftunner/sigmax/internal/sink"
)

func TestAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	run := sink.Run{ProducerCount: 4, QueueSize: 1024, TotalPops: 100, SuccessfulPops: 90}
	info := cpuinfo.Info{Vendor: "GenuineIntel", CoresPerSocket: 8}

	if err := sink.Append(path, run, info); err != nil {
		t.Fatalf("Append: %v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var doc struct {
		BenchmarkResults []sink.Run   `json:"benchmarkResults"`
		CPUInfo          cpuinfo.Info `json:"cpuInfo"`
	}
	if err := json.Unmarshal(buf, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(doc.BenchmarkResults) != 1 {
		t.Fatalf("BenchmarkResults: got %d entries, want 1", len(doc.BenchmarkResults))
	}
	if doc.BenchmarkResults[0] != run {
		t.Fatalf("BenchmarkResults[0]: got %+v, want %+v", doc.BenchmarkResults[0], run)
	}
	if doc.CPUInfo.Vendor != "GenuineIntel" {
		t.Fatalf("CPUInfo.Vendor: got %q, want %q", doc.CPUInfo.Vendor, "GenuineIntel")
	}
}

func TestAppendPreservesPriorRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	info := cpuinfo.Info{Vendor: "AuthenticAMD"}

	first := sink.Run{ProducerCount: 1, QueueSize: 32, TotalPops: 10, SuccessfulPops: 10}
	second := sink.Run{ProducerCount: 2, QueueSize: 64, TotalPops: 20, SuccessfulPops: 18}

	if err := sink.Append(path, first, info); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	if err := sink.Append(path, second, info); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var doc struct {
		BenchmarkResults []sink.Run `json:"benchmarkResults"`
	}
	if err := json.Unmarshal(buf, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(doc.BenchmarkResults) != 2 {
		t.Fatalf("BenchmarkResults: got %d entries, want 2", len(doc.BenchmarkResults))
	}
	if doc.BenchmarkResults[0] != first || doc.BenchmarkResults[1] != second {
		t.Fatalf("BenchmarkResults out of order or mismatched: %+v", doc.BenchmarkResults)
	}
}
