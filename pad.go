// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sigmax

// pad is cache line padding, used to keep head, tail, and the telemetry
// counters on separate cache lines from each other and from the cell array,
// preventing false sharing under contention.
type pad [64]byte

// padShort adds a cache line minus the 8-byte sequence word to each cell,
// so the sequence words of adjacent cells are at least a cache line apart.
// Cells are not aligned to cache-line boundaries, so the payload of one cell
// can share a line with the sequence word of the next.
type padShort [64 - 8]byte
