// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package sigmax

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrency tests that trigger false positives
// under -race: the race detector cannot observe the happens-before edges
// established by the sequence-number protocol's acquire/release atomics.
const RaceEnabled = true
