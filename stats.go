// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sigmax

// PushCount returns the number of Push calls that have returned nil so far.
// Best-effort: readers outside a quiescent point (all producers and the
// consumer stopped) may observe a stale value.
func (q *Queue[T]) PushCount() uint64 {
	return q.pushes.LoadRelaxed()
}

// PopCount returns the number of Pop calls that have returned nil so far.
// Best-effort, same caveat as PushCount.
func (q *Queue[T]) PopCount() uint64 {
	return q.pops.LoadRelaxed()
}

// incPushes increments the push counter with relaxed ordering: the count is
// observational telemetry, never used to gate a payload access, so no
// ordering stronger than relaxed is required.
func (q *Queue[T]) incPushes() {
	for {
		old := q.pushes.LoadRelaxed()
		if q.pushes.CompareAndSwapRelaxed(old, old+1) {
			return
		}
	}
}

func (q *Queue[T]) incPops() {
	for {
		old := q.pops.LoadRelaxed()
		if q.pops.CompareAndSwapRelaxed(old, old+1) {
			return
		}
	}
}
