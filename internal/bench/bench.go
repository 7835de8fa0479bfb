// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench implements the N-producer/one-consumer benchmark harness
// that exercises the queue under sustained contention.
package bench

import (
	"sync"
	"time"

	"code.hybscloud.com/atomix"

	"github.com/kristoftunner/sigmax"
	"github.com/kristoftunner/sigmax/internal/record"
)

// Params configures one benchmark run.
type Params struct {
	Capacity      int
	ProducerCount int
	Duration      time.Duration
}

// Result is what one run observed: consumer-side attempt/success tallies
// plus the queue's own telemetry, collected after every worker has joined.
type Result struct {
	Params
	TotalPopAttempts uint64
	SuccessfulPops   uint64
	PushCount        uint64
	PopCount         uint64
}

// Run executes one benchmark per Params: constructs a fresh queue, spawns
// ProducerCount producers and one consumer behind a shared start gate, lets
// them run for Duration, then joins and aggregates counters.
//
// Producers tight-loop Push with a per-producer monotonic sequence number,
// ignoring ErrFull. The consumer tight-loops Pop, tallying every attempt and
// every success, until the stop flag is observed.
func Run(p Params) Result {
	q := sigmax.New[record.OrderEvent](p.Capacity)

	var stop atomix.Bool
	startGate := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(p.ProducerCount)
	for range p.ProducerCount {
		go func() {
			defer wg.Done()
			<-startGate
			var seq uint64
			for !stop.LoadAcquire() {
				ev := record.NewOrderEvent("XBTUSD", record.SideBuy, 100_0000, 1, seq, 0)
				_ = q.Push(ev) // ErrFull is ignored by design
				seq++
			}
		}()
	}

	var totalAttempts, successfulPops uint64
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-startGate
		for !stop.LoadAcquire() {
			totalAttempts++
			if _, err := q.Pop(); err == nil {
				successfulPops++
			}
		}
	}()

	close(startGate)
	time.Sleep(p.Duration)
	stop.StoreRelease(true)
	wg.Wait()

	return Result{
		Params:           p,
		TotalPopAttempts: totalAttempts,
		SuccessfulPops:   successfulPops,
		PushCount:        q.PushCount(),
		PopCount:         q.PopCount(),
	}
}
