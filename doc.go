// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sigmax provides a bounded, lock-free, multi-producer/
// single-consumer ring queue for low-latency inter-thread hand-off of
// fixed-layout messages, plus the benchmark harness that exercises it.
//
// # Quick Start
//
//	q := sigmax.New[Event](1024)
//
//	// Producer (any number of goroutines)
//	if err := q.Push(ev); err != nil {
//	    // sigmax.IsFull(err): queue full, caller's choice to retry or drop
//	}
//
//	// Consumer (exactly one goroutine)
//	ev, err := q.Pop()
//	if err != nil {
//	    // sigmax.IsEmpty(err): nothing published yet
//	}
//
// # Protocol
//
// Each cell carries a payload slot and an atomic sequence number; the
// sequence number is the sole synchronizer. Producers race to advance head
// via compare-and-swap; once a producer owns logical position pos, it
// writes the payload and then releases it by storing sequence = pos+1,
// which is what makes the slot visible to the consumer. The single consumer
// advances tail the same way, reads the payload, and re-arms the slot for
// its next lap by storing sequence = pos+capacity.
//
// Push returns ErrFull when the producer's candidate cell is still occupied
// from a previous lap (the queue is full from that producer's point of
// view); it never blocks and never overwrites an unread slot. Pop
// returns ErrEmpty when nothing has been published yet at the current tail;
// it never blocks and never returns a value that was not pushed.
//
// # Ordering
//
// Pop delivers elements in the order of the logical positions their Push
// claimed on head, across all producers; an element whose producer has
// claimed a position but not yet released the cell's sequence holds back
// the elements behind it (Pop reports ErrEmpty until it is published). A
// single producer's successive
// Push calls are observed in program order, because a later Push's CAS on
// head cannot succeed at a position smaller than an earlier one's.
//
// # Telemetry
//
// PushCount and PopCount are best-effort monotonic counters, incremented
// with relaxed ordering after each successful operation. They are accurate
// once all producers and the consumer have quiesced; reads taken mid-run
// may be stale.
//
// # Thread Safety
//
// Multiple goroutines may call Push concurrently. Exactly one goroutine may
// call Pop; calling Pop from more than one goroutine concurrently is
// undefined behavior (data corruption, lost wakeups) — this queue does not
// implement multi-consumer fan-out.
//
// # Capacity
//
// Capacity is fixed at construction and used exactly as given (see [New]).
// It is never rounded up to a power of two: when it already is one, index
// arithmetic uses a bit mask; otherwise it falls back to a plain modulus.
// Minimum capacity is 2; New panics below that.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channel, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic acquire/release memory ordering on
// separate variables. This queue's correctness rests on exactly that kind
// of ordering (the payload store/load is a plain, non-atomic access made
// visible only through the sequence gate), so -race may report false
// positives on concurrent tests. Tests that are incompatible with race
// detection skip themselves at run time when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomics with explicit memory ordering,
// and [code.hybscloud.com/spin] for spin-wait backoff between CAS retries.
package sigmax
