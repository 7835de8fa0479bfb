// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sigmax

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Queue is a bounded, lock-free, multi-producer/single-consumer ring queue.
//
// Producers use CAS to claim a logical position in head; the single
// consumer uses CAS to claim a logical position in tail. Per-cell sequence
// numbers are the sole synchronizer between a producer's payload write and
// the consumer's payload read — there is no lock and no separate "occupied"
// flag.
//
// Memory: capacity cells (one sequence word + one T + padShort per cell).
type Queue[T any] struct {
	_        pad
	head     atomix.Uint64 // next logical position a producer may claim
	_        pad
	tail     atomix.Uint64 // next logical position the consumer may claim
	_        pad
	pushes   atomix.Uint64 // telemetry: successful Push count
	_        pad
	pops     atomix.Uint64 // telemetry: successful Pop count
	_        pad
	buffer   []cell[T]
	capacity uint64
	mask     uint64 // capacity-1 when capacity is a power of two, else unused
	pow2     bool
}

type cell[T any] struct {
	sequence atomix.Uint64
	data     T
	_        padShort
}

// New creates a queue of the given capacity.
//
// Capacity is used exactly as given — it is never rounded up. When capacity
// is a power of two, index arithmetic uses a bit mask; otherwise it falls
// back to a plain modulus (needed for the benchmark CLI's 10240). Panics if
// capacity < 2.
func New[T any](capacity int) *Queue[T] {
	if capacity < 2 {
		panic("sigmax: capacity must be >= 2")
	}

	n := uint64(capacity)
	q := &Queue[T]{
		buffer:   make([]cell[T], n),
		capacity: n,
		pow2:     n&(n-1) == 0,
	}
	if q.pow2 {
		q.mask = n - 1
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].sequence.StoreRelaxed(i)
	}

	return q
}

// Cap returns the queue's capacity in elements.
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}

// index maps a logical position to a physical slot.
func (q *Queue[T]) index(pos uint64) uint64 {
	if q.pow2 {
		return pos & q.mask
	}
	return pos % q.capacity
}

// Push adds value at the current logical head (multiple producers safe).
//
// Returns nil on commit. Returns ErrFull iff, at the instant the calling
// goroutine observed its candidate cell, that cell had not yet been
// consumed for the previous lap. Never blocks, never overwrites an unread
// slot, never drops a previously committed element.
func (q *Queue[T]) Push(value T) error {
	sw := spin.Wait{}
	pos := q.head.LoadAcquire()
	for {
		c := &q.buffer[q.index(pos)]
		seq := c.sequence.LoadAcquire()
		diff := int64(seq - pos)

		switch {
		case diff == 0:
			if q.head.CompareAndSwapAcqRel(pos, pos+1) {
				c.data = value
				c.sequence.StoreRelease(pos + 1)
				q.incPushes()
				return nil
			}
			pos = q.head.LoadAcquire()
		case diff < 0:
			return ErrFull
		default:
			pos = q.head.LoadAcquire()
		}
		sw.Once()
	}
}

// Pop removes and returns the element at the current logical tail (single
// consumer only).
//
// Returns (value, nil) on commit. Returns (zero-value, ErrEmpty) iff no
// element has been fully published at the current tail. Never blocks.
// Delivers elements in FIFO order of the logical positions their producers
// claimed on head; an element is returned only once its producer's release
// store of sequence has published it.
func (q *Queue[T]) Pop() (T, error) {
	sw := spin.Wait{}
	pos := q.tail.LoadAcquire()
	for {
		c := &q.buffer[q.index(pos)]
		seq := c.sequence.LoadAcquire()
		diff := int64(seq - (pos + 1))

		switch {
		case diff == 0:
			if q.tail.CompareAndSwapAcqRel(pos, pos+1) {
				value := c.data
				var zero T
				c.data = zero
				c.sequence.StoreRelease(pos + q.capacity)
				q.incPops()
				return value, nil
			}
			pos = q.tail.LoadAcquire()
		case diff < 0:
			var zero T
			return zero, ErrEmpty
		default:
			pos = q.tail.LoadAcquire()
		}
		sw.Once()
	}
}
